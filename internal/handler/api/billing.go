package api

import (
	"net/http"

	reqdto "lounge-billing/internal/handler/dto/request"
	resdto "lounge-billing/internal/handler/dto/response"
	"lounge-billing/internal/handler/middleware"
	"lounge-billing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	q queries.BillingQueries
}

func NewBillingHandler(q queries.BillingQueries) *BillingHandler {
	return &BillingHandler{q: q}
}

// @Summary Preview a billing line
// @Description Computes a line without persisting it
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewRequest true "Billing input"
// @Success 200 {object} resdto.LineResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /billing/preview [post]
func (h *BillingHandler) Preview(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	line, err := h.q.Preview(c.Request.Context(), principal.TenantID, req.ToInput(), req.BillingInstant)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromLine(line)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
