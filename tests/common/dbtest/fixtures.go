//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lounge-billing/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SeedTenantConfig writes a stored configuration directly, bypassing the cache.
func SeedTenantConfig(t *testing.T, db DBLike, tenantID uuid.UUID, p *pricing.PricingConfig, b pricing.BonusConfig) {
	t.Helper()

	var pricingDoc, bonusDoc []byte
	var err error
	if p != nil {
		pricingDoc, err = json.Marshal(p)
		require.NoError(t, err)
	}
	if b != nil {
		bonusDoc, err = json.Marshal(b)
		require.NoError(t, err)
	}

	_, err = db.Exec(context.Background(), `
		INSERT INTO tenant_pricing_configs (tenant_id, pricing, bonus, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (tenant_id) DO UPDATE SET pricing = EXCLUDED.pricing, bonus = EXCLUDED.bonus, updated_at = now()`,
		tenantID, pricingDoc, bonusDoc)
	require.NoError(t, err)
}

func CountInvoices(t *testing.T, db DBLike, tenantID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM invoices WHERE tenant_id = $1", tenantID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// ExpireIdempotencyKey moves a key's expiry into the past.
func ExpireIdempotencyKey(t *testing.T, db DBLike, key, tenantID uuid.UUID) {
	t.Helper()
	tag, err := db.Exec(context.Background(),
		"UPDATE idempotency_keys SET expires_at = $3 WHERE key = $1 AND tenant_id = $2",
		key, tenantID, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected())
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
