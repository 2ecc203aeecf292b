package repository

import (
	"context"

	"lounge-billing/internal/infra"
	"lounge-billing/internal/infra/dbq"
	"lounge-billing/internal/infra/repository/converter"
	"lounge-billing/internal/usecase/shared"
)

type InvoiceWriteQueries interface {
	CreateInvoice(ctx context.Context, db dbq.DBTX, arg dbq.CreateInvoiceParams) error
}

type InvoiceRepository struct {
	queries InvoiceWriteQueries
}

func NewInvoiceRepository(queries InvoiceWriteQueries) *InvoiceRepository {
	return &InvoiceRepository{queries: queries}
}

func (r *InvoiceRepository) Create(ctx context.Context, tx dbq.DBTX, inv *shared.InvoiceRecord) error {
	params, err := converter.InvoiceToInfra(inv)
	if err != nil {
		return infra.WrapRepoErr("failed to convert invoice", err, infra.KindCorruptData)
	}

	if err := r.queries.CreateInvoice(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create invoice", err)
	}
	return nil
}
