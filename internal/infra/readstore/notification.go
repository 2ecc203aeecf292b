package readstore

import (
	"context"

	"lounge-billing/internal/infra"
	"lounge-billing/internal/infra/dbq"
	"lounge-billing/internal/pkg/pgconv"
	"lounge-billing/internal/usecase/queries"
)

type NotificationReadQueries interface {
	ListNotificationJobsByTopic(ctx context.Context, db dbq.DBTX, arg dbq.ListNotificationJobsByTopicParams) ([]dbq.NotificationJob, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      dbq.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db dbq.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) ListByTopic(ctx context.Context, topic string, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.ListNotificationJobsByTopic(ctx, s.db, dbq.ListNotificationJobsByTopicParams{Topic: topic, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}

	jobs := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		jobs[i] = &queries.NotificationJobView{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Attempts:  row.Attempts,
			Status:    row.Status,
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return jobs, nil
}
