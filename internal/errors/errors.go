// Package errors provides custom error types for the spreadscan API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target carries the same code, so wrapped copies of a
// sentinel still match it with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized        = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials  = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrInvalidRefreshToken = &AppError{Code: "INVALID_REFRESH_TOKEN", Message: "Invalid or expired refresh token", StatusCode: http.StatusUnauthorized}
	ErrForbidden           = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// Pipeline ingestion errors.
var (
	ErrInvalidAPIKey         = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
	ErrPipelineNotConfigured = &AppError{Code: "PIPELINE_NOT_CONFIGURED", Message: "Pipeline endpoints are not configured", StatusCode: http.StatusServiceUnavailable}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Scanner engine errors.
var (
	ErrInvalidFilter  = &AppError{Code: "INVALID_FILTER", Message: "Filter configuration is invalid", StatusCode: http.StatusBadRequest}
	ErrInvalidMetric  = &AppError{Code: "INVALID_METRIC", Message: "Unsupported ranking metric", StatusCode: http.StatusBadRequest}
	ErrUndefinedRatio = &AppError{Code: "UNDEFINED_RATIO", Message: "Risk/reward ratio is undefined when max loss is zero", StatusCode: http.StatusUnprocessableEntity}
)

// Spread store errors.
var (
	ErrSpreadNotFound        = &AppError{Code: "SPREAD_NOT_FOUND", Message: "Spread not found", StatusCode: http.StatusNotFound}
	ErrDuplicateSpread       = &AppError{Code: "DUPLICATE_SPREAD", Message: "A spread with this ID already exists", StatusCode: http.StatusConflict}
	ErrInvalidSpread         = &AppError{Code: "INVALID_SPREAD", Message: "Spread record is invalid", StatusCode: http.StatusBadRequest}
	ErrInvalidSortKey        = &AppError{Code: "INVALID_SORT_KEY", Message: "Unsupported sort key", StatusCode: http.StatusBadRequest}
	ErrDataSourceUnavailable = &AppError{Code: "DATA_SOURCE_UNAVAILABLE", Message: "Spread data source is unavailable", StatusCode: http.StatusServiceUnavailable}
)

// Scan run and saved filter errors.
var (
	ErrScanNotFound    = &AppError{Code: "SCAN_NOT_FOUND", Message: "Scan run not found", StatusCode: http.StatusNotFound}
	ErrFilterNotFound  = &AppError{Code: "FILTER_NOT_FOUND", Message: "Saved filter not found", StatusCode: http.StatusNotFound}
	ErrDuplicateFilter = &AppError{Code: "DUPLICATE_FILTER", Message: "A saved filter with this name already exists", StatusCode: http.StatusConflict}
)
