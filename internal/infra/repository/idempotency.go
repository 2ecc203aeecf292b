package repository

import (
	"context"
	"time"

	"lounge-billing/internal/infra"
	"lounge-billing/internal/infra/dbq"
	"lounge-billing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db dbq.DBTX, arg dbq.TryInsertIdempotencyKeyParams) (bool, error)
	CompleteIdempotencyKey(ctx context.Context, db dbq.DBTX, arg dbq.CompleteIdempotencyKeyParams) error
	ClaimExpiredIdempotencyKey(ctx context.Context, db dbq.DBTX, arg dbq.ClaimExpiredIdempotencyKeyParams) (int64, error)
	ReleaseIdempotencyKey(ctx context.Context, db dbq.DBTX, arg dbq.ReleaseIdempotencyKeyParams) error
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

// TryInsert reports whether the key was newly created in processing state.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx dbq.DBTX, key, tenantID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := dbq.TryInsertIdempotencyKeyParams{
		Key:         key,
		TenantID:    tenantID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	created, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return created, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, tx dbq.DBTX, key, tenantID, invoiceID uuid.UUID) error {
	params := dbq.CompleteIdempotencyKeyParams{
		Key:             key,
		TenantID:        tenantID,
		ResultInvoiceID: pgconv.UUIDToPgtype(invoiceID),
	}

	if err := r.queries.CompleteIdempotencyKey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

// ClaimExpired takes over a key whose previous owner let it expire.
func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx dbq.DBTX, key, tenantID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	params := dbq.ClaimExpiredIdempotencyKeyParams{
		Key:         key,
		TenantID:    tenantID,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return n, nil
}

func (r *IdempotencyRepository) Release(ctx context.Context, tx dbq.DBTX, key, tenantID uuid.UUID) error {
	params := dbq.ReleaseIdempotencyKeyParams{Key: key, TenantID: tenantID}
	if err := r.queries.ReleaseIdempotencyKey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}
