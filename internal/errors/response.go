package errors

import (
	stderrors "errors"
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

// NewValidationError creates a gate rejection response listing the failed checks
func NewValidationError(failedChecks []string, traceID string) *ErrorResponse {
	details := append([]string{}, failedChecks...)

	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(ValidationGateRejected),
			Message: GetErrorMessage(ValidationGateRejected),
			Details: details,
			TraceID: traceID,
		},
	}
}

// NewResponseFromError builds the response for a pipeline error. Unclassified
// errors are reported as SYSTEM_001 without exposing their message.
func NewResponseFromError(err error, traceID string) *ErrorResponse {
	var rejected *ValidationFailedError
	if stderrors.As(err, &rejected) {
		return NewValidationError(rejected.FailedChecks, traceID)
	}

	code := CodeOf(err)
	if code == SystemInternalError {
		return NewErrorResponse(code, traceID)
	}
	return NewErrorResponse(code, traceID, WithDetails(err.Error()))
}

// WrapSystemError wraps an internal error with a generic system error message.
// The internal error is returned separately for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(SystemInternalError),
			Message: GetErrorMessage(SystemInternalError),
			Details: []string{},
			TraceID: traceID,
		},
	}
	return response, err
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - unreadable input, malformed identifiers
	case InputUnreadable, InputMissingColumns, InputMalformedRow, InputNotFound,
		ValidationInvalidRunTS, RequestMalformed:
		return http.StatusBadRequest

	// 404 Not Found
	case ValidationReportMissing, RequestRouteNotFound:
		return http.StatusNotFound

	case RequestMethodNotAllowed:
		return http.StatusMethodNotAllowed

	// 422 Unprocessable Entity - the batch was read but rejected
	case ValidationGateRejected:
		return http.StatusUnprocessableEntity

	// 503 Service Unavailable - Service temporarily unavailable
	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatusForResponse returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	status := er.GetHTTPStatus()
	return status >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
