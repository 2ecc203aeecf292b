package api

import (
	"net/http"
	"strconv"

	reqdto "lounge-billing/internal/handler/dto/request"
	resdto "lounge-billing/internal/handler/dto/response"
	"lounge-billing/internal/handler/middleware"
	"lounge-billing/internal/pkg/errs"
	"lounge-billing/internal/usecase/commands"
	"lounge-billing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

type InvoiceHandler struct {
	cmds commands.InvoiceCommands
	q    queries.InvoiceQueries
}

func NewInvoiceHandler(cmds commands.InvoiceCommands, q queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{cmds: cmds, q: q}
}

// @Summary Create invoice
// @Description Computes and stores one billing line; the same Idempotency-Key replays the stored invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "UUID for duplicate prevention"
// @Param request body reqdto.CreateInvoiceRequest true "Billing input"
// @Success 201 {object} resdto.InvoiceResponse
// @Success 200 {object} resdto.InvoiceResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		unauthorized(c)
		return
	}
	key, err := idempotencyKey(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req reqdto.CreateInvoiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		badRequest(c, bindErr, "Invalid request")
		return
	}

	result, err := h.cmds.CreateInvoice(c.Request.Context(), principal, req.ToCommand(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromInvoiceView(result.Invoice)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header(replayedHeader, "true")
	}
	c.JSON(status, res)
}

// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		unauthorized(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), principal.TenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromInvoiceView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List invoices
// @Description Newest first, keyset paginated
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.InvoiceListResponse
// @Failure 400 {object} httperr.Response
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		unauthorized(c)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, err, "Invalid limit")
			return
		}
		limit = n
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.ListByTenant(c.Request.Context(), principal.TenantID, cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromInvoiceList(views, next)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}
	key, err := uuid.Parse(raw)
	if err != nil || key == uuid.Nil {
		return uuid.Nil, errInvalidIdempotency
	}
	return key, nil
}
