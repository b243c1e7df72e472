// Package errors provides structured error types and exit codes for specreport.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess          = 0 // Success, no failing specs
	ExitRuntimeError     = 1 // Failing specs or runtime error
	ExitConfigError      = 2 // Invalid config, flags, or result input
	ExitEnvironmentError = 3 // Report could not be persisted
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindInput
	KindSerialization
	KindPersistence
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInput:
		return "input"
	case KindSerialization:
		return "serialization"
	case KindPersistence:
		return "persistence"
	default:
		return "runtime"
	}
}

// ReportError is the base error type for specreport.
type ReportError struct {
	Kind    ErrorKind
	Message string
	Path    string // File path if applicable
	Cause   error  // Underlying error
}

func (e *ReportError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ReportError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *ReportError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindInput:
		return ExitConfigError
	case KindPersistence:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *ReportError {
	return &ReportError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *ReportError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *ReportError {
	return &ReportError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *ReportError {
	return Config(fmt.Sprintf(format, args...))
}

// Input creates an error for a result tree that could not be read or decoded.
func Input(path, message string, cause error) *ReportError {
	return &ReportError{
		Kind:    KindInput,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// Serialization creates an error for a tree that could not be encoded.
func Serialization(cause error) *ReportError {
	return &ReportError{
		Kind:    KindSerialization,
		Message: "could not encode result tree",
		Cause:   cause,
	}
}

// Persistence creates an error for a report that could not be written.
func Persistence(path, message string, cause error) *ReportError {
	return &ReportError{
		Kind:    KindPersistence,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *ReportError {
	return &ReportError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// Is reports whether any error in err's chain is a ReportError of the given kind.
func Is(err error, kind ErrorKind) bool {
	var re *ReportError
	if stderrors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var re *ReportError
	if stderrors.As(err, &re) {
		return re.ExitCode()
	}
	return ExitRuntimeError
}
