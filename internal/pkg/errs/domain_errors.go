package errs

import "errors"

// Cross-layer sentinels shared by usecases and handlers
var (
	// Tenant configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrConfigCacheStale     = errors.New("configuration saved but cache refresh failed")
	ErrStoredConfigUnusable = errors.New("stored configuration is unusable")

	// Invoice errors
	ErrInvoiceNotFound = errors.New("invoice not found")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyMismatch    = errors.New("idempotency key reused with different request")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
