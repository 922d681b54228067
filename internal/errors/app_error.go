package errors

import (
	"errors"
	"net/http"
)

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

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
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
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeInternal       = "INTERNAL_ERROR"
	ErrCodeConfiguration  = "CONFIGURATION_ERROR"
	ErrCodeBackend        = "BACKEND_ERROR"
	ErrCodeNotImplemented = "NOT_IMPLEMENTED"
)

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

// ConfigurationError marks a missing or inconsistent startup configuration
// value. Callers treat it as fatal; it is never surfaced to a browser.
func ConfigurationError(message string) *AppError {
	return NewAppError(ErrCodeConfiguration, message, http.StatusInternalServerError)
}

// BackendError covers network failures, non-2xx responses and malformed
// payloads from the commerce API.
func BackendError(message string) *AppError {
	return NewAppError(ErrCodeBackend, message, http.StatusBadGateway)
}

func NotImplementedError(message string) *AppError {
	return NewAppError(ErrCodeNotImplemented, message, http.StatusNotImplemented)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// IsNotFound reports whether err carries the NOT_FOUND code anywhere in its chain.
func IsNotFound(err error) bool {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code == ErrCodeNotFound
	}

	return false
}
