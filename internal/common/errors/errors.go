package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies a class of application failure.
type ErrorCode string

const (
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidCode     ErrorCode = "INVALID_CODE"
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodePoolExhausted   ErrorCode = "POOL_EXHAUSTED"
	ErrCodeTooManyRequests ErrorCode = "TOO_MANY_REQUESTS"
	ErrCodeUpstream        ErrorCode = "UPSTREAM_ERROR"
	ErrCodeConfig          ErrorCode = "CONFIG_ERROR"
	ErrCodeStore           ErrorCode = "STORE_ERROR"
	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
)

// AppError is a typed application error. Message is safe to show to the
// client; Cause is only logged.
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
	Cause     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error code onto a response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidation, ErrCodeInvalidCode:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodePoolExhausted:
		return http.StatusConflict
	case ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	case ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (e *AppError) IsInternal() bool {
	return e.HTTPStatus() >= http.StatusInternalServerError
}

func (e *AppError) IsUnauthorized() bool {
	return e.Code == ErrCodeUnauthorized || e.Code == ErrCodeForbidden
}

func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// NewValidationError reports malformed or missing input.
func NewValidationError(field, message string) *AppError {
	return New(ErrCodeValidation, message).WithDetail("field", field)
}

func NewInvalidCodeError() *AppError {
	return New(ErrCodeInvalidCode, "invalid code")
}

func NewUnauthorizedError(reason string) *AppError {
	return New(ErrCodeUnauthorized, reason)
}

func NewForbiddenError(reason string) *AppError {
	return New(ErrCodeForbidden, reason)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

func NewPoolExhaustedError(country string) *AppError {
	return New(ErrCodePoolExhausted, "no available endpoint").WithDetail("country", country)
}

func NewRateLimitError(message string, retryAfter time.Duration) *AppError {
	return New(ErrCodeTooManyRequests, message).
		WithDetail("retry_after_seconds", CeilSeconds(retryAfter))
}

// CeilSeconds rounds d up to whole seconds so a pending wait never reads as 0.
func CeilSeconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64((d + time.Second - 1) / time.Second)
}

// NewUpstreamError reports a failed call to an external API, carrying its
// status and body so the client can surface them.
func NewUpstreamError(message string, status int, body string, cause error) *AppError {
	return Wrap(cause, ErrCodeUpstream, message).
		WithDetail("status", status).
		WithDetail("details", body)
}

func NewConfigError(message string) *AppError {
	return New(ErrCodeConfig, message)
}

func NewStoreError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeStore, "Internal server error").WithDetail("operation", operation)
}

// AsAppError unwraps err looking for an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil && stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
