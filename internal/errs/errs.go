// Package errs defines the failure kinds shared by the avatar and nickname
// pipelines. Every failure a caller sees is an *Error whose Kind is one of
// the sentinels below, so callers can branch with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrParse               = errors.New("parse error")
	ErrIO                  = errors.New("io error")
	ErrImageDecode         = errors.New("image decode error")
	ErrImageEncode         = errors.New("image encode error")
	ErrMissingRequiredData = errors.New("missing required data")
	ErrInvalidIndex        = errors.New("invalid index")
)

// Error is a typed generation failure.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Err != nil {
		var inner *Error
		if errors.As(e.Err, &inner) && inner.Kind == e.Kind {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New returns an *Error of the given kind.
func New(kind error, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf returns an *Error of the given kind with a formatted cause.
func Errorf(kind error, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap attaches op to err. An err that is already typed keeps its kind;
// anything else gets kind.
func Wrap(kind error, op string, err error) error {
	if err == nil {
		return nil
	}
	if k := KindOf(err); k != nil {
		kind = k
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind carried by err, or nil for untyped errors.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
