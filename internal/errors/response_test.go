package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(InputNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("INPUT_004", response.Error.Code)
	s.Equal("Input file not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(SystemInternalError, s.traceID,
		WithMessage("custom"), WithDetails("a", "b"))

	s.Equal("custom", response.Error.Message)
	s.Equal([]string{"a", "b"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	checks := []string{"account_id_not_null", "invalid_currency_threshold_exceeded"}
	response := NewValidationError(checks, s.traceID)

	s.Equal(string(ValidationGateRejected), response.Error.Code)
	s.Equal(checks, response.Error.Details)
	s.Equal(http.StatusUnprocessableEntity, response.GetHTTPStatus())

	checks[0] = "mutated"
	s.Equal("account_id_not_null", response.Error.Details[0])
}

func (s *ResponseTestSuite) TestNewResponseFromError() {
	testCases := []struct {
		name       string
		err        error
		code       ErrorCode
		status     int
		hasDetails bool
	}{
		{
			name:       "input error",
			err:        NewInputError(InputMissingColumns, "in.csv", errors.New("missing required columns: amount")),
			code:       InputMissingColumns,
			status:     http.StatusBadRequest,
			hasDetails: true,
		},
		{
			name:       "wrapped rejection",
			err:        fmt.Errorf("run: %w", &ValidationFailedError{ReportPath: "r.json", FailedChecks: []string{"amount_parseable"}}),
			code:       ValidationGateRejected,
			status:     http.StatusUnprocessableEntity,
			hasDetails: true,
		},
		{
			name:       "tool error",
			err:        &ToolError{Step: "run", Err: errors.New("exit status 1")},
			code:       ToolStepFailed,
			status:     http.StatusInternalServerError,
			hasDetails: true,
		},
		{
			name:   "unclassified",
			err:    errors.New("pq: password authentication failed"),
			code:   SystemInternalError,
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			response := NewResponseFromError(tc.err, s.traceID)

			s.Equal(string(tc.code), response.Error.Code)
			s.Equal(tc.status, response.GetHTTPStatus())
			s.Equal(s.traceID, response.Error.TraceID)
			if tc.hasDetails {
				s.NotEmpty(response.Error.Details)
			} else {
				s.Empty(response.Error.Details)
			}
		})
	}
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("connection refused")
	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "connection refused")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{InputUnreadable, http.StatusBadRequest},
		{InputMalformedRow, http.StatusBadRequest},
		{ValidationInvalidRunTS, http.StatusBadRequest},
		{ValidationReportMissing, http.StatusNotFound},
		{RequestMalformed, http.StatusBadRequest},
		{RequestRouteNotFound, http.StatusNotFound},
		{RequestMethodNotAllowed, http.StatusMethodNotAllowed},
		{ValidationGateRejected, http.StatusUnprocessableEntity},
		{ToolStepFailed, http.StatusInternalServerError},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{LoadRawFailed, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientServerClassification() {
	s.True(NewErrorResponse(InputNotFound, s.traceID).IsClientError())
	s.False(NewErrorResponse(InputNotFound, s.traceID).IsServerError())
	s.True(NewErrorResponse(SystemInternalError, s.traceID).IsServerError())
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(ToolStepFailed, "trace-1")
	s.Equal("[TOOL_001] Transformation tool step failed (trace: trace-1)", response.String())
}
