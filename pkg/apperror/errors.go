package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a generic request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("VAL_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Job queue (JOB) ----

func ErrReportRejected() *AppError {
	return New("JOB_001", "Job is not being processed by the reporting worker", http.StatusConflict)
}

func ErrInvalidJobStatus(status string) *AppError {
	return New("JOB_002", fmt.Sprintf("Invalid terminal job status: %s", status), http.StatusBadRequest)
}

// ---- Webhook configs (CFG) ----

func ErrInvalidTargetURL() *AppError {
	return New("CFG_001", "Webhook target URL must be http or https", http.StatusBadRequest)
}

func ErrMissingProductLinkage() *AppError {
	return New("CFG_002", "Automation webhook configs require a product linkage", http.StatusBadRequest)
}

func ErrDuplicateWebhookConfig() *AppError {
	return New("CFG_003", "An enabled webhook config with the same scope, URL and method already exists", http.StatusConflict)
}

func ErrSchemaIncompatible(err error) *AppError {
	return Wrap("CFG_004", "Storage schema is missing required webhook config columns", http.StatusInternalServerError, err)
}

// ---- Ledger & reconciliation (SYNC) ----

func ErrNoLedgerCredentials() *AppError {
	return New("SYNC_001", "No ledger API credentials configured for any requested environment", http.StatusInternalServerError)
}

func ErrLedgerUnreachable(err error) *AppError {
	return Wrap("SYNC_002", "Unable to reach the external ledger in any environment", http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrRateLimitExceeded() *AppError {
	return New("AUTH_002", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}
