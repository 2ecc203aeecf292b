//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"lounge-billing/internal/infra"
	"lounge-billing/internal/infra/dbq"
	"lounge-billing/internal/infra/readstore"
	readstoremock "lounge-billing/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationReadStore_ListByTopic(t *testing.T) {
	ctx := context.Background()
	params := dbq.ListNotificationJobsByTopicParams{Topic: "invoice_created", Limit: 5}

	t.Run("success: rows mapped to views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockNotificationReadQueries(ctrl)
		now := time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC)
		jobID := uuid.New()
		mockQueries.EXPECT().ListNotificationJobsByTopic(ctx, gomock.Any(), params).Return([]dbq.NotificationJob{{
			ID:        jobID,
			Kind:      "invoice_delivery",
			Topic:     "invoice_created",
			Payload:   []byte(`{"type":"invoice_created"}`),
			RunAt:     pgtype.Timestamptz{Time: now, Valid: true},
			Status:    "queued",
			LastError: pgtype.Text{String: "smtp timeout", Valid: true},
			CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		}}, nil)

		jobs, err := readstore.NewNotificationReadStore(mockQueries, nil).ListByTopic(ctx, "invoice_created", 5)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, jobID, jobs[0].ID)
		assert.Equal(t, "invoice_delivery", jobs[0].Kind)
		assert.JSONEq(t, `{"type":"invoice_created"}`, string(jobs[0].Payload))
		require.NotNil(t, jobs[0].LastError)
		assert.Equal(t, "smtp timeout", *jobs[0].LastError)
		assert.True(t, now.Equal(jobs[0].RunAt))
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockNotificationReadQueries(ctrl)
		mockQueries.EXPECT().ListNotificationJobsByTopic(ctx, gomock.Any(), params).Return(nil, errDBConnectionLost)

		_, err := readstore.NewNotificationReadStore(mockQueries, nil).ListByTopic(ctx, "invoice_created", 5)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
