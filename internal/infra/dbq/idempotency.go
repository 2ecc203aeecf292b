package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const tryInsertIdempotencyKey = `
INSERT INTO idempotency_keys (key, tenant_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, tenant_id) DO NOTHING
`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	TenantID    uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

// TryInsertIdempotencyKey reports whether this call created the key.
func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (bool, error) {
	tag, err := db.Exec(ctx, tryInsertIdempotencyKey, arg.Key, arg.TenantID, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

const getIdempotencyKey = `
SELECT key, tenant_id, endpoint, request_hash, status, result_invoice_id, expires_at, created_at, updated_at
FROM idempotency_keys
WHERE key = $1 AND tenant_id = $2
`

type GetIdempotencyKeyParams struct {
	Key      uuid.UUID
	TenantID uuid.UUID
}

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKey, error) {
	row := db.QueryRow(ctx, getIdempotencyKey, arg.Key, arg.TenantID)
	var i IdempotencyKey
	err := row.Scan(
		&i.Key,
		&i.TenantID,
		&i.Endpoint,
		&i.RequestHash,
		&i.Status,
		&i.ResultInvoiceID,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const completeIdempotencyKey = `
UPDATE idempotency_keys
SET status = 'completed', result_invoice_id = $3, updated_at = now()
WHERE key = $1 AND tenant_id = $2
`

type CompleteIdempotencyKeyParams struct {
	Key             uuid.UUID
	TenantID        uuid.UUID
	ResultInvoiceID pgtype.UUID
}

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, arg CompleteIdempotencyKeyParams) error {
	_, err := db.Exec(ctx, completeIdempotencyKey, arg.Key, arg.TenantID, arg.ResultInvoiceID)
	return err
}

const claimExpiredIdempotencyKey = `
UPDATE idempotency_keys
SET request_hash = $3, status = 'processing', result_invoice_id = NULL, expires_at = $4, updated_at = now()
WHERE key = $1 AND tenant_id = $2 AND expires_at < now()
`

type ClaimExpiredIdempotencyKeyParams struct {
	Key         uuid.UUID
	TenantID    uuid.UUID
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) ClaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ClaimExpiredIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, claimExpiredIdempotencyKey, arg.Key, arg.TenantID, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseIdempotencyKey = `
DELETE FROM idempotency_keys
WHERE key = $1 AND tenant_id = $2 AND status = 'processing'
`

type ReleaseIdempotencyKeyParams struct {
	Key      uuid.UUID
	TenantID uuid.UUID
}

func (q *Queries) ReleaseIdempotencyKey(ctx context.Context, db DBTX, arg ReleaseIdempotencyKeyParams) error {
	_, err := db.Exec(ctx, releaseIdempotencyKey, arg.Key, arg.TenantID)
	return err
}
