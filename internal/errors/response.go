package errors

import (
	"fmt"
	"net/http"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
// Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	// Apply functional options
	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with field-specific error details
// fieldErrors is a map of field names to their error messages
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}

	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(ValidationGeneral),
			Message: GetErrorMessage(ValidationGeneral),
			Details: details,
			TraceID: traceID,
		},
	}
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - Validation errors, malformed requests
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationPrecision, TransactionInvalidAmount,
		TransferSameAccount, TransferInvalidAmount, AccountInvalidNumber,
		AccountInvalidName, InterestInvalidConfig:
		return http.StatusBadRequest

	// 404 Not Found - Resource not found
	case AccountNotFound:
		return http.StatusNotFound

	// 409 Conflict - Resource state conflict
	case AccountAlreadyExists, InterestRunInProgress, SystemConcurrentUpdate:
		return http.StatusConflict

	// 422 Unprocessable Entity - Semantic validation failures
	case AccountInactive, TransactionInsufficientFunds, TransactionValidationFailed,
		TransactionInvalidType, TransferInsufficientFunds, InterestBelowMinimum,
		InterestNothingToPay:
		return http.StatusUnprocessableEntity

	// 429 Too Many Requests - Rate limiting
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 503 Service Unavailable - Service temporarily unavailable
	case SystemServiceUnavailable, SystemStoreTimeout:
		return http.StatusServiceUnavailable

	// 500 Internal Server Error - System errors (default)
	case SystemInternalError, SystemDatabaseError, SystemConfigurationError,
		SystemUnexpectedError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// FromError builds the response for an error returned by a ledger operation.
// Internal details of persistence and untyped errors are not exposed.
func FromError(err error, traceID string) *ErrorResponse {
	le, ok := AsLedgerError(err)
	if !ok {
		return NewErrorResponse(SystemInternalError, traceID)
	}

	switch le.Kind {
	case KindPersistence, KindConfiguration, KindUnknown:
		return NewErrorResponse(le.Code, traceID)
	default:
		opts := []ErrorOption{}
		if le.Err != nil {
			opts = append(opts, WithDetails(le.Err.Error()))
		}
		return NewErrorResponse(le.Code, traceID, opts...)
	}
}

// GetHTTPStatus returns the HTTP status for the response code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	status := er.GetHTTPStatus()
	return status >= 500
}
