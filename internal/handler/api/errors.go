package api

import (
	"errors"
	"log/slog"
	"net/http"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/handler/httperr"
	"lounge-billing/internal/handler/middleware"
	"lounge-billing/internal/pkg/errs"
	"lounge-billing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthenticated    = errors.New("principal missing from context")
	errInvalidIdempotency = errors.New("idempotency key must be a UUID")
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{billing.ErrInvalidInput, http.StatusBadRequest, "Invalid billing input"},
	{errs.ErrInvalidConfiguration, http.StatusBadRequest, "Invalid pricing configuration"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{errs.ErrIdempotencyKeyRequired, http.StatusBadRequest, "Idempotency-Key header is required"},
	{errInvalidIdempotency, http.StatusBadRequest, "Idempotency-Key must be a UUID"},
	{errs.ErrInvoiceNotFound, http.StatusNotFound, "Invoice not found"},
	{errs.ErrIdempotencyMismatch, http.StatusConflict, "Idempotency-Key was already used with a different request"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request with this Idempotency-Key is being processed"},
	{errs.ErrConfigCacheStale, http.StatusServiceUnavailable, "Configuration saved; retry shortly"},
	{errs.ErrStoredConfigUnusable, http.StatusInternalServerError, "Stored pricing configuration is unusable"},
}

func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, detailsFor(m.status, err))
			return
		}
	}
	slog.Error("Unhandled request error",
		"request_id", middleware.GetRequestID(c),
		"path", c.FullPath(),
		"error", err)
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// Only client errors expose detail; 5xx keeps internals out of the body.
func detailsFor(status int, err error) any {
	if status >= http.StatusInternalServerError {
		return nil
	}
	return err.Error()
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, err.Error())
}

func unauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}
