package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lounge-billing/internal/domain/staff"
	"lounge-billing/internal/handler/api"
	"lounge-billing/internal/handler/middleware"
	"lounge-billing/internal/pkg/config"
	"lounge-billing/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Pricing *api.PricingHandler
	Billing *api.BillingHandler
	Invoice *api.InvoiceHandler
}

type RouterDeps struct {
	Config         config.Config
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware
	HTTPMetrics    *metrics.HTTPMetrics
	Registry       *prometheus.Registry
	Handlers       Handlers
}

func NewRouter(engine *gin.Engine, deps RouterDeps) {
	setupMiddleware(engine, deps)
	setupRoutes(engine, deps)
}

func setupMiddleware(engine *gin.Engine, deps RouterDeps) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(deps.Config.CORS))
	engine.Use(deps.Logger.LoggingMiddleware())
	engine.Use(middleware.HTTPMetrics(deps.HTTPMetrics))
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute())
}

func setupRoutes(engine *gin.Engine, deps RouterDeps) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := deps.AuthMiddleware
	adminOnly := []gin.HandlerFunc{auth.RequireRoleAtLeast(staff.RoleAdmin)}
	h := deps.Handlers

	apiGroup := engine.Group("/api")
	apiGroup.Use(auth.RequireAuth())
	{
		addRoutes(apiGroup.Group("/pricing"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Pricing.Get},
			{Method: http.MethodPut, Path: "", Handler: h.Pricing.Update, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/bonus", Handler: h.Pricing.GetBonus},
			{Method: http.MethodPut, Path: "/bonus", Handler: h.Pricing.UpdateBonus, Mw: adminOnly},
		})

		addRoutes(apiGroup.Group("/billing"), []route{
			{Method: http.MethodPost, Path: "/preview", Handler: h.Billing.Preview},
		})

		addRoutes(apiGroup.Group("/invoices"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Invoice.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Invoice.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Invoice.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
