package diagnostic

import (
	"errors"
	"fmt"

	"metabatch/internal/common"
)

// Kind classifies an engine error.
type Kind int

const (
	KindConfig Kind = iota
	KindExpression
	KindTreeAssembly
	KindEncoding
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindExpression:
		return "expression"
	case KindTreeAssembly:
		return "tree-assembly"
	case KindEncoding:
		return "encoding"
	default:
		return common.UnknownStr
	}
}

// Error is a classified engine error with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a classified error wrapping an underlying cause.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsKind reports whether err, or any error it wraps, is a classified
// error of the given kind.
func IsKind(err error, kind Kind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

// Annotate prefixes err with positional context while keeping the
// original error (and therefore its kind) in the wrap chain.
func Annotate(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
