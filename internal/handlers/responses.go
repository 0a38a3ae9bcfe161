package handlers

import (
	"net/http"

	"finance-pipeline/internal/errors"

	"github.com/labstack/echo/v4"
)

// ERROR RESPONSES
//
// Handlers report failures through these helpers only:
//
// 1. SendError - for a known error code (4xx or 503)
//    - SendError(c, errors.ValidationInvalidRunTS, errors.WithDetails("..."))
//    - SendError(c, errors.ValidationReportMissing)
//
// 2. SendPipelineError - for an error returned by a pipeline run. The code and
//    status follow the error type: input errors are 400, gate rejections 422,
//    anything else 500.
//
// 3. SendSystemError - for unexpected errors that must not leak to clients

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendPipelineError maps a pipeline error onto its standardized response
func SendPipelineError(c echo.Context, err error) error {
	errorResponse := errors.NewResponseFromError(err, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
