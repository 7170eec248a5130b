package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrCatalogEmpty reports that no items were loaded, so there is nothing to order.
var ErrCatalogEmpty = stdErrors.New("catalog is empty")

// ErrUnsatisfiable reports that no ordering of the catalog can satisfy every prerequisite.
var ErrUnsatisfiable = stdErrors.New("catalog is unsatisfiable")

// ParseError represents a catalog or settings decoding failure with optional line metadata.
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

// ValidationError captures catalog or settings validation issues.
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

// SearchExhaustedError reports that the attempt budget ran out before a valid ordering was found.
type SearchExhaustedError struct {
	Attempts int
}

// NewSearchExhaustedError constructs a SearchExhaustedError.
func NewSearchExhaustedError(attempts int) error {
	return &SearchExhaustedError{Attempts: attempts}
}

func (e *SearchExhaustedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("could not create a valid splits file after %d attempts", e.Attempts)
}

// WriteError wraps an I/O failure while persisting the splits document.
type WriteError struct {
	Path string
	Err  error
}

// NewWriteError constructs a WriteError for the given destination.
func NewWriteError(path string, err error) error {
	return &WriteError{Path: path, Err: err}
}

// Error returns the cause verbatim so the user sees the operating system message.
func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("write %s failed", e.Path)
	}
	return e.Err.Error()
}

// Unwrap exposes the root error.
func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
