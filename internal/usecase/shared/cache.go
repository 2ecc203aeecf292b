package shared

import (
	"context"

	"github.com/google/uuid"
)

// ConfigCache holds effective tenant configurations. Entries only move
// forward: SetIfNewer keeps whichever configuration has the later UpdatedAt,
// so a reader that loaded a row before a write committed cannot overwrite
// the writer's entry.
type ConfigCache interface {
	Get(ctx context.Context, tenantID uuid.UUID) (*TenantConfig, bool, error)
	SetIfNewer(ctx context.Context, tenantID uuid.UUID, cfg *TenantConfig) (bool, error)
	Invalidate(ctx context.Context, tenantID uuid.UUID) error
}
