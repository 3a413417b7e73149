// Package errors provides structured error types for venvkit.
//
// Every failure that reaches the operator carries a machine-readable Code so the
// command layer can map it to an exit status and a short message:
//   - INVALID_*: flag or input validation failures (exit 1, no partial action)
//   - NOT_FOUND / FILE_NOT_FOUND: missing environments or files
//   - TOOL_MISSING: a prerequisite binary is absent and could not be installed
//   - COMMAND_FAILED: an external tool (pyenv, git, pip) exited non-zero
//   - CANCELLED: the operator declined a confirmation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidName, "invalid environment name: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidName) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeCommandFailed, origErr, "pyenv virtualenv %s", name)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidName    Code = "INVALID_NAME"
	ErrCodeInvalidVersion Code = "INVALID_VERSION"
	ErrCodeInvalidPackage Code = "INVALID_PACKAGE"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// External tooling errors
	ErrCodeToolMissing   Code = "TOOL_MISSING"
	ErrCodeCommandFailed Code = "COMMAND_FAILED"

	// Operator decisions
	ErrCodeCancelled Code = "CANCELLED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// CommandError describes an external command that exited unsuccessfully.
type CommandError struct {
	Name   string   // Binary that was run
	Args   []string // Arguments passed to it
	Output string   // Combined stdout/stderr, trimmed
	Err    error    // Error returned by the process
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	cmd := strings.TrimSpace(e.Name + " " + strings.Join(e.Args, " "))
	if e.Output != "" {
		return fmt.Sprintf("%s: %v\n%s", cmd, e.Err, e.Output)
	}
	return fmt.Sprintf("%s: %v", cmd, e.Err)
}

// Unwrap returns the process error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Code returns the error code for this error type.
func (e *CommandError) Code() Code {
	return ErrCodeCommandFailed
}
