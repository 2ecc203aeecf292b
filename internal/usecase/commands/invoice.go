package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/domain/staff"
	"lounge-billing/internal/infra"
	"lounge-billing/internal/pkg/clock"
	"lounge-billing/internal/pkg/errs"
	"lounge-billing/internal/pkg/metrics"
	"lounge-billing/internal/usecase/queries"
	"lounge-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	invoiceEndpoint = "POST /api/invoices"
	idempotencyTTL  = 24 * time.Hour

	jobKindInvoiceDelivery = "invoice_delivery"
	topicInvoiceCreated    = "invoice_created"
)

type CreateInvoiceRequest struct {
	Input        billing.Input
	StationLabel *string
}

type CreateInvoiceResult struct {
	Invoice    *queries.InvoiceView
	IsReplayed bool
}

type InvoiceCommands interface {
	CreateInvoice(ctx context.Context, principal staff.Principal, req CreateInvoiceRequest, idempotencyKey uuid.UUID) (*CreateInvoiceResult, error)
}

type invoiceUseCaseImpl struct {
	uow        shared.UnitOfWork
	loader     *shared.ConfigLoader
	calculator billing.LineCalculator
	invoices   queries.InvoiceQueries
	metrics    *metrics.BillingMetrics
	clock      clock.Clock
}

func NewInvoiceUseCase(
	uow shared.UnitOfWork,
	loader *shared.ConfigLoader,
	calculator billing.LineCalculator,
	invoices queries.InvoiceQueries,
	m *metrics.BillingMetrics,
	clk clock.Clock,
) InvoiceCommands {
	return &invoiceUseCaseImpl{
		uow:        uow,
		loader:     loader,
		calculator: calculator,
		invoices:   invoices,
		metrics:    m,
		clock:      clk,
	}
}

func (uc *invoiceUseCaseImpl) CreateInvoice(
	ctx context.Context,
	principal staff.Principal,
	req CreateInvoiceRequest,
	idempotencyKey uuid.UUID,
) (*CreateInvoiceResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}
	if err := req.Input.Validate(); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	requestHash := calculateRequestHash(req)

	existing, err := uc.reserveKey(ctx, principal.TenantID, idempotencyKey, requestHash, now)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &CreateInvoiceResult{Invoice: existing, IsReplayed: true}, nil
	}

	view, err := uc.createNewInvoice(ctx, principal, req, idempotencyKey, now)
	if err != nil {
		uc.releaseKey(ctx, principal.TenantID, idempotencyKey)
		return nil, err
	}
	return &CreateInvoiceResult{Invoice: view}, nil
}

// reserveKey returns (nil, nil) when this call owns the key, or the invoice of
// an earlier completed request with the same payload.
func (uc *invoiceUseCaseImpl) reserveKey(
	ctx context.Context,
	tenantID, key uuid.UUID,
	requestHash string,
	now time.Time,
) (*queries.InvoiceView, error) {
	var created bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		created, err = tx.Idempotency().TryInsert(ctx, tx.DB(), key, tenantID, invoiceEndpoint, requestHash, now.Add(idempotencyTTL))
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if created {
		return nil, nil
	}

	record, err := uc.uow.CommandReads().IdempotencyByKey(ctx, key, tenantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Released by a failed attempt between our insert and read.
			return nil, errs.ErrIdempotencyInProgress
		}
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if record.ExpiredAt(now) {
		return nil, uc.claimExpired(ctx, tenantID, key, requestHash, now)
	}

	if record.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyMismatch
	}

	switch record.Status {
	case shared.IdempotencyStatusCompleted:
		if record.ResultInvoiceID == nil {
			return nil, errs.Mark(errs.New("completed request missing result invoice ID"), errs.ErrIdempotencyCheckFailed)
		}
		return uc.invoices.GetByID(ctx, tenantID, *record.ResultInvoiceID)
	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency key status %q", record.Status), errs.ErrIdempotencyCheckFailed)
	}
}

func (uc *invoiceUseCaseImpl) claimExpired(ctx context.Context, tenantID, key uuid.UUID, requestHash string, now time.Time) error {
	var claimed int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, tenantID, requestHash, now.Add(idempotencyTTL))
		return err
	})
	if err != nil {
		return errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if claimed == 0 {
		return errs.ErrIdempotencyInProgress
	}
	return nil
}

func (uc *invoiceUseCaseImpl) createNewInvoice(
	ctx context.Context,
	principal staff.Principal,
	req CreateInvoiceRequest,
	idempotencyKey uuid.UUID,
	billedAt time.Time,
) (*queries.InvoiceView, error) {
	snapshot, err := uc.loader.Snapshot(ctx, principal.TenantID)
	if err != nil {
		return nil, err
	}

	line, err := uc.calculator.ComputeInvoiceLine(req.Input, snapshot, billedAt)
	if err != nil {
		return nil, err
	}
	shared.RecordLine(uc.metrics, principal.TenantID, line, metrics.ModeInvoice)

	record := &shared.InvoiceRecord{
		ID:                   uuid.New(),
		TenantID:             principal.TenantID,
		StationLabel:         req.StationLabel,
		ExtraControllerUnits: req.Input.ExtraControllerUnits,
		Snacks:               req.Input.Snacks,
		Line:                 line,
		BilledAt:             billedAt,
	}
	if principal.StaffID != uuid.Nil {
		staffID := principal.StaffID
		record.StaffID = &staffID
	}

	payload, err := json.Marshal(map[string]any{
		"invoice_id": record.ID,
		"tenant_id":  record.TenantID,
		"total_cost": line.TotalCost.String(),
		"type":       topicInvoiceCreated,
	})
	if err != nil {
		return nil, errs.Wrap(err, "encode invoice notification")
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Invoices().Create(ctx, tx.DB(), record); err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), jobKindInvoiceDelivery, topicInvoiceCreated, payload, billedAt); err != nil {
			return err
		}
		return tx.Idempotency().MarkCompleted(ctx, tx.DB(), idempotencyKey, principal.TenantID, record.ID)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Read-after-write through the query side
	view, err := uc.invoices.GetByID(ctx, principal.TenantID, record.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *invoiceUseCaseImpl) releaseKey(ctx context.Context, tenantID, key uuid.UUID) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, tenantID)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key",
			"tenant_id", tenantID.String(),
			"key", key.String(),
			"error", err.Error())
	}
}

type hashedSnack struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

type hashedRequest struct {
	GameType             string        `json:"gameType"`
	ElapsedSeconds       int64         `json:"elapsedSeconds"`
	ExtraControllerUnits int64         `json:"extraControllerUnits"`
	Snacks               []hashedSnack `json:"snacks"`
	StationLabel         string        `json:"stationLabel"`
}

// Amounts are hashed at full precision with trailing zeros dropped, so "30" and
// "30.00" are the same request while "0.004" and "0.001" are not.
func calculateRequestHash(req CreateInvoiceRequest) string {
	h := hashedRequest{
		GameType:             req.Input.GameType.String(),
		ElapsedSeconds:       req.Input.ElapsedSeconds,
		ExtraControllerUnits: req.Input.ExtraControllerUnits,
		Snacks:               make([]hashedSnack, 0, len(req.Input.Snacks)),
	}
	if req.StationLabel != nil {
		h.StationLabel = *req.StationLabel
	}
	for _, s := range req.Input.Snacks {
		h.Snacks = append(h.Snacks, hashedSnack{
			Name:      s.Name,
			UnitPrice: s.UnitPrice.Decimal().String(),
			Quantity:  s.Quantity,
		})
	}

	data, _ := json.Marshal(h)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
