package apperror

import (
	"errors"
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

// Is matches any AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
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

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Signature (SEC) ----
// Timestamp and header failures share the invalid-signature message so the
// caller cannot tell them apart; the code still distinguishes them in logs.

func ErrMissingSignature() *AppError {
	return New("SEC_001", "Missing signature", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Invalid signature", http.StatusUnauthorized)
}

func ErrMalformedSignature(err error) *AppError {
	return Wrap("SEC_004", "Invalid signature", http.StatusUnauthorized, err)
}

func ErrWebhookDisabled() *AppError {
	return New("SEC_005", "Webhook receiver disabled", http.StatusForbidden)
}

// ---- Request (REQ) ----

func ErrInvalidPayload(err error) *AppError {
	return Wrap("REQ_001", "Invalid payload", http.StatusBadRequest, err)
}

func ErrMissingEventGroup() *AppError {
	return New("REQ_002", "Missing event_group", http.StatusBadRequest)
}

func ErrPayloadTooLarge() *AppError {
	return New("REQ_004", "Payload too large", http.StatusRequestEntityTooLarge)
}

// Validation returns a REQ_003 validation error.
func Validation(message string) *AppError {
	return New("REQ_003", message, http.StatusBadRequest)
}

// ---- Event model (EVT) ----

func ErrMissingRequiredField(field string) *AppError {
	return New("EVT_001", fmt.Sprintf("missing required field %s", field), http.StatusUnprocessableEntity)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Catalog sync (SYNC) ----

func ErrSyncCooldown() *AppError {
	return New("SYNC_001", "Full sync was triggered recently, try again later", http.StatusTooManyRequests)
}

func ErrSyncDisabled() *AppError {
	return New("SYNC_002", "Catalog sync disabled", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Configuration (CFG) ----

func ErrConfigurationMissing(field string) *AppError {
	return New("CFG_001", fmt.Sprintf("configuration missing: %s", field), http.StatusInternalServerError)
}

// ---- System & Infrastructure (SYS) ----

func ErrSinkUnavailable(err error) *AppError {
	return Wrap("SYS_001", "Karla API unavailable", http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_002 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}
