package components

import (
	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/pkg/clock"
	"lounge-billing/internal/pkg/config"
	"lounge-billing/internal/usecase"
	"lounge-billing/internal/usecase/commands"
	"lounge-billing/internal/usecase/queries"
	"lounge-billing/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		billing.NewDefaultCalculator,
		fx.As(new(billing.LineCalculator)),
	),
	shared.NewConfigLoader,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPricingUseCase,
		commands.NewInvoiceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewBillingQueries,
		func(store queries.InvoiceReadStore, cfg config.Config) queries.InvoiceQueries {
			return queries.NewInvoiceQueries(store, int(cfg.Billing.InvoiceListMax))
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
