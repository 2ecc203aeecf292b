package api

import (
	"net/http"

	"lounge-billing/internal/domain/pricing"
	resdto "lounge-billing/internal/handler/dto/response"
	"lounge-billing/internal/handler/middleware"
	"lounge-billing/internal/usecase/commands"
	"lounge-billing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	cmds commands.PricingCommands
	q    queries.PricingQueries
}

func NewPricingHandler(cmds commands.PricingCommands, q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{cmds: cmds, q: q}
}

// @Summary Get pricing configuration
// @Description Effective pricing for the caller's lounge; defaults when nothing is stored
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PricingResponse
// @Failure 401 {object} httperr.Response
// @Router /pricing [get]
func (h *PricingHandler) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		unauthorized(c)
		return
	}
	view, err := h.q.GetPricing(c.Request.Context(), principal.TenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingView(view))
}

// @Summary Replace pricing configuration
// @Description Validates and stores the pricing document; later billing uses it immediately
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body pricing.PricingConfig true "Pricing configuration"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /pricing [put]
func (h *PricingHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		unauthorized(c)
		return
	}
	var cfg pricing.PricingConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	saved, err := h.cmds.UpdatePricing(c.Request.Context(), principal.TenantID, cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PricingFromTenantConfig(saved))
}

// @Summary Get bonus configuration
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BonusResponse
// @Failure 401 {object} httperr.Response
// @Router /pricing/bonus [get]
func (h *PricingHandler) GetBonus(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		unauthorized(c)
		return
	}
	view, err := h.q.GetBonus(c.Request.Context(), principal.TenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBonusView(view))
}

// @Summary Replace bonus configuration
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body pricing.BonusConfig true "Bonus configuration"
// @Success 200 {object} resdto.BonusResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /pricing/bonus [put]
func (h *PricingHandler) UpdateBonus(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		unauthorized(c)
		return
	}
	var cfg pricing.BonusConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	saved, err := h.cmds.UpdateBonusConfig(c.Request.Context(), principal.TenantID, cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BonusFromTenantConfig(saved))
}
