package components

import (
	"lounge-billing/internal/handler"
	"lounge-billing/internal/handler/api"
	"lounge-billing/internal/handler/middleware"
	"lounge-billing/internal/pkg/config"
	"lounge-billing/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewBillingHandler,
		api.NewInvoiceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(NewRouter),
)

type routerParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware
	HTTPMetrics    *metrics.HTTPMetrics
	Registry       *prometheus.Registry
	Pricing        *api.PricingHandler
	Billing        *api.BillingHandler
	Invoice        *api.InvoiceHandler
}

func NewRouter(p routerParams) {
	handler.NewRouter(p.Engine, handler.RouterDeps{
		Config:         p.Config,
		Logger:         p.Logger,
		AuthMiddleware: p.AuthMiddleware,
		HTTPMetrics:    p.HTTPMetrics,
		Registry:       p.Registry,
		Handlers: handler.Handlers{
			Pricing: p.Pricing,
			Billing: p.Billing,
			Invoice: p.Invoice,
		},
	})
}
