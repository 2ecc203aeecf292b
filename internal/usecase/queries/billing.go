package queries

import (
	"context"
	"time"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/pkg/clock"
	"lounge-billing/internal/pkg/metrics"
	"lounge-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type BillingQueries interface {
	// Preview computes a line without persisting it. A nil billingInstant means now.
	Preview(ctx context.Context, tenantID uuid.UUID, in billing.Input, billingInstant *time.Time) (*billing.Line, error)
}

type billingQueriesImpl struct {
	loader     *shared.ConfigLoader
	calculator billing.LineCalculator
	metrics    *metrics.BillingMetrics
	clock      clock.Clock
}

func NewBillingQueries(loader *shared.ConfigLoader, calculator billing.LineCalculator, m *metrics.BillingMetrics, clk clock.Clock) BillingQueries {
	return &billingQueriesImpl{
		loader:     loader,
		calculator: calculator,
		metrics:    m,
		clock:      clk,
	}
}

func (q *billingQueriesImpl) Preview(ctx context.Context, tenantID uuid.UUID, in billing.Input, billingInstant *time.Time) (*billing.Line, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := q.loader.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	instant := q.clock.Now()
	if billingInstant != nil {
		instant = *billingInstant
	}

	line, err := q.calculator.ComputeInvoiceLine(in, snapshot, instant)
	if err != nil {
		return nil, err
	}
	shared.RecordLine(q.metrics, tenantID, line, metrics.ModePreview)
	return line, nil
}
