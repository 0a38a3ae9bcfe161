package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Process exit codes for a pipeline run
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitValidationFailed = 2
	ExitToolFailed       = 3
)

// InputError is a structural failure: the input cannot be read as a table at all.
// Callers retry or alert; it never carries a quality report.
type InputError struct {
	Code ErrorCode
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", GetErrorMessage(e.Code), e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", GetErrorMessage(e.Code), e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError builds a structural input error for path
func NewInputError(code ErrorCode, path string, err error) *InputError {
	return &InputError{Code: code, Path: path, Err: err}
}

// ValidationFailedError signals that the quality gate rejected the batch.
// The report has already been persisted at ReportPath.
type ValidationFailedError struct {
	ReportPath   string
	FailedChecks []string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed (%s). See report: %s",
		strings.Join(e.FailedChecks, ", "), e.ReportPath)
}

// ToolError reports a failed transformation tool step
type ToolError struct {
	Step string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("transformation step %q failed: %v", e.Step, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// LoadError reports a failed warehouse load. Loads are not retried within a run.
type LoadError struct {
	Code ErrorCode
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", GetErrorMessage(e.Code), e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err is, or wraps, a structural input error
func IsInputError(err error) bool {
	var target *InputError
	return stderrors.As(err, &target)
}

// IsValidationFailed reports whether err is, or wraps, a gate rejection
func IsValidationFailed(err error) bool {
	var target *ValidationFailedError
	return stderrors.As(err, &target)
}

// IsToolError reports whether err is, or wraps, a transformation tool failure
func IsToolError(err error) bool {
	var target *ToolError
	return stderrors.As(err, &target)
}

// ExitCode maps a run error to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsValidationFailed(err):
		return ExitValidationFailed
	case IsToolError(err):
		return ExitToolFailed
	default:
		return ExitFailure
	}
}

// CodeOf returns the error code that best describes err
func CodeOf(err error) ErrorCode {
	var inputErr *InputError
	var loadErr *LoadError
	switch {
	case err == nil:
		return ""
	case stderrors.As(err, &inputErr):
		return inputErr.Code
	case stderrors.As(err, &loadErr):
		return loadErr.Code
	case IsValidationFailed(err):
		return ValidationGateRejected
	case IsToolError(err):
		return ToolStepFailed
	default:
		return SystemInternalError
	}
}
