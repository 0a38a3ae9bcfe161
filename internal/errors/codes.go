package errors

// ErrorCode represents a standardized error code used by the pipeline and its HTTP surface
type ErrorCode string

// Input error codes (INPUT_*)
const (
	InputUnreadable     ErrorCode = "INPUT_001"
	InputMissingColumns ErrorCode = "INPUT_002"
	InputMalformedRow   ErrorCode = "INPUT_003"
	InputNotFound       ErrorCode = "INPUT_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGateRejected  ErrorCode = "VALIDATION_001"
	ValidationInvalidRunTS  ErrorCode = "VALIDATION_002"
	ValidationReportMissing ErrorCode = "VALIDATION_003"
)

// Request error codes (REQUEST_*) for the HTTP surface
const (
	RequestMalformed        ErrorCode = "REQUEST_001"
	RequestRouteNotFound    ErrorCode = "REQUEST_002"
	RequestMethodNotAllowed ErrorCode = "REQUEST_003"
)

// Load error codes (LOAD_*)
const (
	LoadRawFailed     ErrorCode = "LOAD_001"
	LoadStagingFailed ErrorCode = "LOAD_002"
)

// Transformation tool error codes (TOOL_*)
const (
	ToolStepFailed ErrorCode = "TOOL_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Input errors
	InputUnreadable:     "Input file could not be read as tabular data",
	InputMissingColumns: "Input file is missing required columns",
	InputMalformedRow:   "Input file contains a malformed row",
	InputNotFound:       "Input file not found",

	// Validation errors
	ValidationGateRejected:  "Batch rejected by the quality gate",
	ValidationInvalidRunTS:  "Invalid run identifier",
	ValidationReportMissing: "Validation report not found",

	// Request errors
	RequestMalformed:        "Malformed request",
	RequestRouteNotFound:    "Route not found",
	RequestMethodNotAllowed: "Method not allowed",

	// Load errors
	LoadRawFailed:     "Loading the raw snapshot failed",
	LoadStagingFailed: "Refreshing the staging table failed",

	// Tool errors
	ToolStepFailed: "Transformation tool step failed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
