// Package errors provides structured errors for the report generator. Each
// error carries a stable type code so the CLI can decide which failures get a
// friendly user-facing message and which just propagate.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	ErrTypeWorkbook  ErrorType = "WORKBOOK"
	ErrTypeRendering ErrorType = "RENDERING"
	ErrTypeConfig    ErrorType = "CONFIG"
	ErrTypeIO        ErrorType = "IO"
)

// AppError is an application-specific error with a type code and optional
// wrapped cause.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new application error.
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{Type: errType, Message: message, Cause: cause}
}

// UnsupportedWorkbook is the one failure surfaced with a user-facing hint:
// the input could not be opened as an Excel workbook at all.
func UnsupportedWorkbook(path string, cause error) *AppError {
	return New(ErrTypeWorkbook,
		fmt.Sprintf("cannot read %q as an .xlsx workbook; "+
			"check that the file exists and is a valid Excel spreadsheet", path),
		cause)
}

// EmptyWorkbook reports a workbook that opened fine but holds no sheet with a
// header row and data rows.
func EmptyWorkbook(path string) *AppError {
	return New(ErrTypeWorkbook,
		fmt.Sprintf("workbook %q contains no sheet with tabular data", path),
		nil)
}

// IsType reports whether err (or anything it wraps) is an AppError of the
// given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// UserMessage returns the message to print for an error. Workbook errors are
// shown as-is; everything else keeps its full wrapped chain.
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type == ErrTypeWorkbook {
		return appErr.Message
	}
	return err.Error()
}
