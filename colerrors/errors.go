package colerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidInput indicates a value outside the accepted domain or format.
	ErrInvalidInput = errors.New("invalid input")

	// ErrParse indicates an unrecognized token during parsing.
	ErrParse = errors.New("parse error")

	// ErrSchema indicates a malformed schema document.
	ErrSchema = errors.New("schema error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// InvalidInputError represents a value outside a conversion's accepted
// domain or format, such as a non-roman symbol or a non-positive integer.
type InvalidInputError struct {
	// Op is the conversion that rejected the value (e.g., "ToRoman")
	Op string
	// Value is the rejected value (may be nil)
	Value any
	// Message describes why the value was rejected
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InvalidInputError) Error() string {
	msg := "invalid input"
	if e.Op != "" {
		msg += " for " + e.Op
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ParseError represents a failure to parse a natural-language phrase,
// such as an unrecognized number word or an empty phrase.
type ParseError struct {
	// Input is the full phrase that failed to parse
	Input string
	// Token is the specific token that caused the failure (empty if the
	// whole phrase is at fault)
	Token string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Input != "" {
		msg += fmt.Sprintf(" in %q", e.Input)
	}
	if e.Token != "" {
		msg += fmt.Sprintf(" at token %q", e.Token)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SchemaError represents a malformed schema document or an unknown
// column type name encountered while reading a schema file.
type SchemaError struct {
	// Column is the column name with the issue (empty if document-level)
	Column string
	// TypeName is the problematic type string, if any
	TypeName string
	// Message describes the schema failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Column != "" {
		msg += " for column " + e.Column
	}
	if e.TypeName != "" {
		msg += fmt.Sprintf(" (type: %q)", e.TypeName)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
