// Package rxerr holds the closed set of error kinds the rx decision engine
// can surface, following the shape of ile's frontend/ilerr package.
package rxerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code classifies an Error.
type Code int

const (
	// None is the zero value and never appears on a constructed Error.
	None Code = iota
	// InvalidArgument marks malformed repeat bounds passed to a smart constructor.
	InvalidArgument
	// ParseError marks a failure produced by the surface-syntax parser collaborator.
	ParseError
	// InternalInvariant marks a Var node escaping its activation, or any
	// other invariant violation that signals a bug in the engine itself.
	InternalInvariant
)

func (c Code) String() string {
	switch c {
	case InvalidArgument:
		return "InvalidArgument"
	case ParseError:
		return "ParseError"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "None"
	}
}

// Error is the concrete error type returned (or panicked, for
// InternalInvariant) by this module.
type Error struct {
	code  Code
	msg   string
	stack error // non-nil only for InternalInvariant, captured via pkg/errors
}

func (e *Error) Error() string {
	return fmt.Sprintf("(%s) %s", e.code, e.msg)
}

// Code reports which of the closed error kinds this Error is.
func (e *Error) Code() Code { return e.code }

// Unwrap exposes the captured stack trace, when present, to errors.As/Is chains.
func (e *Error) Unwrap() error { return e.stack }

// Invalid builds an InvalidArgument error, raised at construction time
// before a malformed term ever enters the algebra.
func Invalid(format string, args ...any) *Error {
	return &Error{code: InvalidArgument, msg: fmt.Sprintf(format, args...)}
}

// Parse builds a ParseError, for use by the external parser collaborator.
func Parse(format string, args ...any) *Error {
	return &Error{code: ParseError, msg: fmt.Sprintf(format, args...)}
}

// Internal builds an InternalInvariant error with a stack trace attached,
// for a Var escaping its algorithm or any other broken invariant. Callers
// in the core engine panic with this value; it is a programmer error, not
// a recoverable condition.
func Internal(format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{code: InternalInvariant, msg: msg, stack: errors.WithStack(errors.New(msg))}
}

// Errors accumulates diagnostics the way ilerr.Errors does for the ile
// compiler; the core engine never produces more than one error at a time,
// but the rxparse/cmd layer batches parser diagnostics through this type.
type Errors struct {
	errs []*Error
}

func (r *Errors) With(err ...*Error) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) HasError() bool {
	return r != nil && len(r.errs) > 0
}

func (r *Errors) Errors() []*Error {
	if r == nil {
		return nil
	}
	return r.errs
}
