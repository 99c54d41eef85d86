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

func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrPCIFieldPresent(field string) *AppError {
	return New("VAL_002", fmt.Sprintf("request contains a disallowed cardholder-data field: %s", field), http.StatusBadRequest)
}

// ---- Not found (NF), tenant-blind: never reveals whether an ID exists
// outside the caller's own tenant scope (spec §7). ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "invalid or expired token", http.StatusUnauthorized)
}

func ErrTenantSuspended() *AppError {
	return New("AUTH_003", "tenant account is suspended", http.StatusForbidden)
}

// ---- Signature / webhook security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_001", "invalid webhook signature", http.StatusUnauthorized)
}

func ErrSignatureTimestampExpired() *AppError {
	return New("SEC_002", "webhook signature timestamp outside tolerance window", http.StatusForbidden)
}

func ErrSignatureReplayed() *AppError {
	return New("SEC_003", "webhook signature already consumed", http.StatusForbidden)
}

// ---- Conflict (CONF) ----

func ErrConflict(message string) *AppError {
	return New("CONF_001", message, http.StatusConflict)
}

func ErrDuplicateRequest() *AppError {
	return New("CONF_002", "duplicate request under this idempotency key", http.StatusConflict)
}

// ---- AR business rules (BIZ) — named per spec §7 so operators and
// clients can branch on a stable code rather than parsing messages. ----

func ErrInvoiceVoided() *AppError {
	return New("BIZ_INVOICE_VOIDED", "invoice has been voided", http.StatusUnprocessableEntity)
}

func ErrInvoicePaid() *AppError {
	return New("BIZ_INVOICE_PAID", "invoice is already paid in full", http.StatusUnprocessableEntity)
}

func ErrAmountMismatch() *AppError {
	return New("BIZ_AMOUNT_MISMATCH", "allocated amount exceeds invoice balance", http.StatusUnprocessableEntity)
}

func ErrCurrencyMismatch() *AppError {
	return New("BIZ_CURRENCY_MISMATCH", "payment currency does not match invoice currency", http.StatusUnprocessableEntity)
}

func ErrUnsupportedField(field string) *AppError {
	return New("BIZ_UNSUPPORTED_FIELD", fmt.Sprintf("field %s is not supported", field), http.StatusUnprocessableEntity)
}

func ErrNoDefaultPaymentMethod() *AppError {
	return New("BIZ_NO_DEFAULT_PAYMENT_METHOD", "customer has no usable default payment method", http.StatusUnprocessableEntity)
}

func ErrChargeNotSettled() *AppError {
	return New("BIZ_CHARGE_NOT_SETTLED", "charge has not settled and cannot be refunded or applied", http.StatusUnprocessableEntity)
}

func ErrUnbalancedJournalIntent() *AppError {
	return New("BIZ_UNBALANCED_JOURNAL", "journal intent debits and credits do not balance", http.StatusUnprocessableEntity)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Upstream processor (PROC) ----

func ErrProcessor(err error) *AppError {
	return Wrap("PROC_001", "processor request failed", http.StatusBadGateway, err)
}

func ErrProcessorUnavailable(err error) *AppError {
	return Wrap("PROC_002", "processor temporarily unavailable", http.StatusServiceUnavailable, err)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "lock acquisition timeout", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "internal server error", http.StatusInternalServerError, err)
}
