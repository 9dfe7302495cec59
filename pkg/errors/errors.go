// Package errors provides structured error types for prebuild.
//
// The codes mirror the failure kinds of the bundle lifecycle:
//   - CONFIG_LOAD: a persisted bundle config could not be read or recognised.
//     The config store recovers locally and never surfaces it.
//   - DIRECTORY_CREATION: a required directory could not be created. Hard stop.
//   - BUNDLE_HOOK: a bundle's save, load or pre-compile hook failed. Fail fast.
//   - FILE_IO: a source file could not be read or written. The rewriter records
//     it and moves on to the next file.
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeBundleHook, cause, "pre-compile %s", bundle.Name())
//	if errors.Is(err, errors.ErrCodeBundleHook) {
//	    // abort the compile
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidTypeID  Code = "INVALID_TYPE_ID"
	ErrCodeInvalidCatalog Code = "INVALID_CATALOG"

	// Lookup errors
	ErrCodeUnknownBundle Code = "UNKNOWN_BUNDLE"

	// Lifecycle errors
	ErrCodeConfigLoad        Code = "CONFIG_LOAD"
	ErrCodeDirectoryCreation Code = "DIRECTORY_CREATION"
	ErrCodeBundleHook        Code = "BUNDLE_HOOK"
	ErrCodeFileIO            Code = "FILE_IO"

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
