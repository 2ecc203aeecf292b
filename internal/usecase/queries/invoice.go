package queries

import (
	"context"
	"time"

	"lounge-billing/internal/infra"
	"lounge-billing/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid cursor")

type InvoiceReadStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*InvoiceView, error)
	FindByTenant(ctx context.Context, tenantID uuid.UUID, beforeBilledAt time.Time, beforeID uuid.UUID, limit int32) ([]*InvoiceView, error)
}

type InvoiceQueries interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*InvoiceView, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, cursor *Cursor, limit int) ([]*InvoiceView, *Cursor, error)
}

type invoiceQueriesImpl struct {
	store    InvoiceReadStore
	maxLimit int
}

func NewInvoiceQueries(store InvoiceReadStore, maxLimit int) InvoiceQueries {
	return &invoiceQueriesImpl{store: store, maxLimit: maxLimit}
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*InvoiceView, error) {
	view, err := q.store.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvoiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ListByTenant returns newest invoices first. The returned cursor is nil on
// the last page.
func (q *invoiceQueriesImpl) ListByTenant(ctx context.Context, tenantID uuid.UUID, cursor *Cursor, limit int) ([]*InvoiceView, *Cursor, error) {
	limit = ValidateLimit(limit, q.maxLimit)

	var (
		beforeAt time.Time
		beforeID uuid.UUID
	)
	if cursor != nil && cursor.After != "" {
		t, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Mark(errs.Wrap(err, "decode cursor"), ErrInvalidCursor)
		}
		beforeAt, beforeID = t, id
	}

	// one extra row tells whether another page exists
	// #nosec G115 -- limit is capped by ValidateLimit
	views, err := q.store.FindByTenant(ctx, tenantID, beforeAt, beforeID, int32(limit+1))
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if len(views) <= limit {
		return views, nil, nil
	}
	views = views[:limit]
	last := views[len(views)-1]
	return views, &Cursor{After: EncodeAfterCursor(last.BilledAt, last.ID)}, nil
}
