package readstore

import (
	"context"

	"lounge-billing/internal/infra"
	"lounge-billing/internal/infra/dbq"
	"lounge-billing/internal/pkg/pgconv"
	"lounge-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db dbq.DBTX, arg dbq.GetIdempotencyKeyParams) (dbq.IdempotencyKey, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get returns the record even when it has expired; callers decide whether to
// reclaim it.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx dbq.DBTX, key, tenantID uuid.UUID) (*shared.IdempotencyRecord, error) {
	params := dbq.GetIdempotencyKeyParams{
		Key:      key,
		TenantID: tenantID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:             row.Key,
		TenantID:        row.TenantID,
		Status:          row.Status,
		RequestHash:     row.RequestHash,
		ResultInvoiceID: pgconv.UUIDPtrFromPgtype(row.ResultInvoiceID),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
