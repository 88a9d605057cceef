package errors

import (
	"errors"
	"net/http"
)

// AppError is the error type every service returns to the HTTP layer. Code is
// the stable machine-readable value clients switch on.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeDatabaseError     = "DATABASE_ERROR"
	ErrCodeDuplicateEntry    = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError   = "THIRD_PARTY_ERROR"
	ErrCodeInvalidCoupon     = "INVALID_COUPON"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeReadOnlySource    = "READ_ONLY_SOURCE"
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"
)

var statusByCode = map[string]int{
	ErrCodeValidation:        http.StatusBadRequest,
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeInvalidQuantity:   http.StatusBadRequest,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeReadOnlySource:    http.StatusMethodNotAllowed,
	ErrCodeDuplicateEntry:    http.StatusConflict,
	ErrCodeInsufficientStock: http.StatusConflict,
	ErrCodeInvalidCoupon:     http.StatusUnprocessableEntity,
	ErrCodeEmptyCart:         http.StatusUnprocessableEntity,
	ErrCodeTooManyRequests:   http.StatusTooManyRequests,
	ErrCodeThirdPartyError:   http.StatusBadGateway,
	ErrCodeDatabaseError:     http.StatusInternalServerError,
	ErrCodeInternal:          http.StatusInternalServerError,
}

// StatusFor maps a code to its HTTP status; unknown codes are 500.
func StatusFor(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func newAppError(code, message string) *AppError {
	return &AppError{Code: code, Message: message, StatusCode: StatusFor(code)}
}

func ValidationError(message string) *AppError { return newAppError(ErrCodeValidation, message) }

func BadRequestError(message string) *AppError { return newAppError(ErrCodeBadRequest, message) }

func NotFoundError(message string) *AppError { return newAppError(ErrCodeNotFound, message) }

func InternalError(message string) *AppError { return newAppError(ErrCodeInternal, message) }

func DatabaseError(message string) *AppError { return newAppError(ErrCodeDatabaseError, message) }

func DuplicateEntryError(message string) *AppError {
	return newAppError(ErrCodeDuplicateEntry, message)
}

// ThirdPartyError covers the remote catalog API and other upstreams.
func ThirdPartyError(message string) *AppError { return newAppError(ErrCodeThirdPartyError, message) }

func InvalidCouponError(message string) *AppError { return newAppError(ErrCodeInvalidCoupon, message) }

func InvalidQuantityError(message string) *AppError {
	return newAppError(ErrCodeInvalidQuantity, message)
}

func InsufficientStockError(message string) *AppError {
	return newAppError(ErrCodeInsufficientStock, message)
}

func EmptyCartError(message string) *AppError { return newAppError(ErrCodeEmptyCart, message) }

// ReadOnlySourceError is returned by admin writes when products come from a
// remote catalog.
func ReadOnlySourceError(message string) *AppError {
	return newAppError(ErrCodeReadOnlySource, message)
}

func TooManyRequestsError(message string) *AppError {
	return newAppError(ErrCodeTooManyRequests, message)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError, true
	}
	return nil, false
}
