package errors

import (
	"fmt"
)

// InvalidDateError reports date text that no supported layout could interpret.
// Controllers recover from it locally by keeping their previous value.
type InvalidDateError struct {
	Input  string
	Format string
	Err    error
}

// NewInvalidDateError constructs an InvalidDateError.
func NewInvalidDateError(input, format string, err error) error {
	return &InvalidDateError{Input: input, Format: format, Err: err}
}

func (e *InvalidDateError) Error() string {
	if e == nil {
		return ""
	}
	if e.Format != "" {
		return fmt.Sprintf("invalid date %q (format %s)", e.Input, e.Format)
	}
	return fmt.Sprintf("invalid date %q", e.Input)
}

// Unwrap exposes the underlying error.
func (e *InvalidDateError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NoMatchingOptionError reports a selected value that is absent from the current
// option list. Selection controllers recover by synthesizing an option from the raw value.
type NoMatchingOptionError struct {
	Value string
}

// NewNoMatchingOptionError constructs a NoMatchingOptionError.
func NewNoMatchingOptionError(value string) error {
	return &NoMatchingOptionError{Value: value}
}

func (e *NoMatchingOptionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("no option matches value %q", e.Value)
}

// MissingContextError indicates an API that requires a provider was used outside of it.
// It is a programming error and is raised as a panic by the Must helpers.
type MissingContextError struct {
	API      string
	Provider string
}

// NewMissingContextError constructs a MissingContextError.
func NewMissingContextError(api, provider string) error {
	return &MissingContextError{API: api, Provider: provider}
}

func (e *MissingContextError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s must be called within %s", e.API, e.Provider)
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures showcase document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
