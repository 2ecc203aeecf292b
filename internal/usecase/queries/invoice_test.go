//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lounge-billing/internal/infra"
	"lounge-billing/internal/pkg/errs"
	"lounge-billing/internal/usecase/queries"
	queriesmock "lounge-billing/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func viewsAt(start time.Time, n int) []*queries.InvoiceView {
	out := make([]*queries.InvoiceView, n)
	for i := range n {
		out[i] = &queries.InvoiceView{ID: uuid.New(), BilledAt: start.Add(-time.Duration(i) * time.Minute)}
	}
	return out
}

func TestInvoiceQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()

	t.Run("not found maps to ErrInvoiceNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInvoiceReadStore(ctrl)
		store.EXPECT().FindByID(ctx, tenantID, id).
			Return(nil, infra.WrapRepoErr("invoice not found", errors.New("no rows"), infra.KindNotFound))

		_, err := queries.NewInvoiceQueries(store, 0).GetByID(ctx, tenantID, id)
		assert.True(t, errs.Is(err, errs.ErrInvoiceNotFound), "got %v", err)
	})

	t.Run("other failures are database errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInvoiceReadStore(ctrl)
		store.EXPECT().FindByID(ctx, tenantID, id).
			Return(nil, infra.WrapRepoErr("failed", errors.New("conn reset")))

		_, err := queries.NewInvoiceQueries(store, 0).GetByID(ctx, tenantID, id)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed), "got %v", err)
	})
}

func TestInvoiceQueries_ListByTenant(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	start := time.Date(2025, 1, 4, 18, 0, 0, 0, time.UTC)

	t.Run("extra row produces a cursor pointing at the last returned item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInvoiceReadStore(ctrl)
		rows := viewsAt(start, 3)
		store.EXPECT().FindByTenant(ctx, tenantID, time.Time{}, uuid.Nil, int32(3)).Return(rows, nil)

		views, next, err := queries.NewInvoiceQueries(store, 0).ListByTenant(ctx, tenantID, nil, 2)
		require.NoError(t, err)
		require.Len(t, views, 2)
		require.NotNil(t, next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].BilledAt.Equal(at))
	})

	t.Run("short page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInvoiceReadStore(ctrl)
		store.EXPECT().FindByTenant(ctx, tenantID, gomock.Any(), gomock.Any(), int32(3)).Return(viewsAt(start, 2), nil)

		views, next, err := queries.NewInvoiceQueries(store, 0).ListByTenant(ctx, tenantID, nil, 2)
		require.NoError(t, err)
		assert.Len(t, views, 2)
		assert.Nil(t, next)
	})

	t.Run("cursor is decoded into keyset bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInvoiceReadStore(ctrl)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(start, lastID)}
		store.EXPECT().FindByTenant(ctx, tenantID, gomock.Any(), lastID, int32(queries.DefaultListLimit+1)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, before time.Time, _ uuid.UUID, _ int32) ([]*queries.InvoiceView, error) {
				assert.True(t, start.Equal(before))
				return nil, nil
			})

		views, next, err := queries.NewInvoiceQueries(store, 0).ListByTenant(ctx, tenantID, cursor, 0)
		require.NoError(t, err)
		assert.Empty(t, views)
		assert.Nil(t, next)
	})

	t.Run("configured maximum caps the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInvoiceReadStore(ctrl)
		store.EXPECT().FindByTenant(ctx, tenantID, gomock.Any(), gomock.Any(), int32(11)).Return(nil, nil)

		_, _, err := queries.NewInvoiceQueries(store, 10).ListByTenant(ctx, tenantID, nil, 500)
		require.NoError(t, err)
	})

	t.Run("malformed cursor is rejected before the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInvoiceReadStore(ctrl)

		_, _, err := queries.NewInvoiceQueries(store, 0).ListByTenant(ctx, tenantID, &queries.Cursor{After: "garbage"}, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor), "got %v", err)
	})

	t.Run("store failure is a database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInvoiceReadStore(ctrl)
		store.EXPECT().FindByTenant(ctx, tenantID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, _, err := queries.NewInvoiceQueries(store, 0).ListByTenant(ctx, tenantID, nil, 10)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed), "got %v", err)
	})
}
