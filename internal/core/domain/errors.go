package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAmbiguous indicates a query matched more contacts than the operation allows.
	ErrAmbiguous = errors.New("ambiguous match")

	// Query and codec errors. Each has a typed counterpart below carrying
	// diagnostics; the typed errors report these sentinels through Is.

	// ErrQuerySyntax indicates a malformed query token or an unknown field.
	ErrQuerySyntax = errors.New("query syntax error")

	// ErrUnknownFormat indicates a format id that is not registered.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrDuplicateFormat indicates a format id was registered twice.
	ErrDuplicateFormat = errors.New("duplicate format")

	// ErrDecode indicates malformed input for a format, or a record missing a field.
	ErrDecode = errors.New("decode error")

	// ErrUnsupportedOperation indicates decode was requested on an encode-only renderer.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrRegistryFrozen indicates a registration after the registry went into use.
	ErrRegistryFrozen = errors.New("registry frozen")
)

// QuerySyntaxError reports the query token that could not be compiled.
type QuerySyntaxError struct {
	Token  string
	Reason string
}

func (e *QuerySyntaxError) Error() string {
	return fmt.Sprintf("query syntax error at %q: %s", e.Token, e.Reason)
}

// Is reports ErrQuerySyntax.
func (e *QuerySyntaxError) Is(target error) bool {
	return target == ErrQuerySyntax
}

// UnknownFormatError reports a lookup of an unregistered format.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q", e.Format)
}

// Is reports ErrUnknownFormat.
func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}

// DuplicateFormatError reports a second registration of a format id.
type DuplicateFormatError struct {
	Format string
}

func (e *DuplicateFormatError) Error() string {
	return fmt.Sprintf("format %q already registered", e.Format)
}

// Is reports ErrDuplicateFormat.
func (e *DuplicateFormatError) Is(target error) bool {
	return target == ErrDuplicateFormat
}

// DecodeError reports input that a codec could not turn into contacts.
// Index is the zero-based record position, or -1 when the failure is not
// tied to one record. Offset is a byte offset (or line for line-oriented
// formats) when the underlying parser reports one, otherwise 0.
type DecodeError struct {
	Format string
	Index  int
	Field  string
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decode %s", e.Format)
	if e.Index >= 0 {
		msg += fmt.Sprintf(": record %d", e.Index)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	if e.Offset > 0 {
		msg += fmt.Sprintf(" (offset %d)", e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// Unwrap returns the parser error, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnsupportedOperationError reports an operation a codec does not provide.
type UnsupportedOperationError struct {
	Format    string
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("format %q does not support %s", e.Format, e.Operation)
}

// Is reports ErrUnsupportedOperation.
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}
