// Package xerrors defines the error taxonomy shared by all sheet packages.
//
// Every error carries a Code so callers can branch on the failure class
// without string matching. Helper constructors format messages either as
// plain printf text or as `|key: value` pairs for structured context.
package xerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error.
type Code int

const (
	CodeUnknown Code = iota
	// CodeAddress: malformed coordinate or range string.
	CodeAddress
	// CodeRangeShape: range shape mismatch, e.g. a multi-cell range where a
	// single cell is expected, or a read through a covered cell.
	CodeRangeShape
	// CodeOverlap: a span region collides with an existing region.
	CodeOverlap
	// CodeNameResolution: a named range's target table is missing or renamed.
	CodeNameResolution
	// CodeOutOfBounds: negative or pathologically large coordinate, rejected
	// before any allocation.
	CodeOutOfBounds
)

func (c Code) String() string {
	switch c {
	case CodeAddress:
		return "address"
	case CodeRangeShape:
		return "range-shape"
	case CodeOverlap:
		return "overlap"
	case CodeNameResolution:
		return "name-resolution"
	case CodeOutOfBounds:
		return "out-of-bounds"
	default:
		return "unknown"
	}
}

// withCode is an error that has a cause error and a code.
type withCode struct {
	cause error
	code  Code
}

func (w *withCode) Error() string {
	content := w.code.String()
	if w.cause != nil {
		content += ": " + w.cause.Error()
	}
	return content
}

func (w *withCode) Code() Code { return w.code }

// Unwrap provides compatibility for Go 1.13 error chains.
func (w *withCode) Unwrap() error { return w.cause }

// withMessage is an error that has a cause error and a message.
type withMessage struct {
	cause   error
	message string
}

func (w *withMessage) Error() string {
	content := w.message
	if w.cause != nil {
		content += ": " + w.cause.Error()
	}
	return content
}

// Unwrap provides compatibility for Go 1.13 error chains.
func (w *withMessage) Unwrap() error { return w.cause }

func combineKV(keysAndValues ...any) string {
	var msg string
	for i := 0; i < len(keysAndValues); i += 2 {
		if i == len(keysAndValues)-1 {
			panic("invalid Key-Value pairs: odd number")
		}
		key, val := keysAndValues[i], keysAndValues[i+1]
		msg += fmt.Sprintf("|%v: %v", key, val)
	}
	return msg
}

// Errorf formats according to a format specifier and returns an error with
// the supplied code.
func Errorf(code Code, format string, args ...any) error {
	return &withCode{
		code: code,
		cause: &withMessage{
			message: fmt.Sprintf(format, args...),
		},
	}
}

// ErrorKV returns an error with the supplied code, message, and key-value
// pairs formatted as `[|key: value]...`.
func ErrorKV(code Code, msg string, keysAndValues ...any) error {
	return &withCode{
		code: code,
		cause: &withMessage{
			message: combineKV(keysAndValues...) + combineKV(KeyReason, msg),
		},
	}
}

// Wrapf returns an error annotating err with the format specifier.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &withMessage{
		cause:   err,
		message: fmt.Sprintf(format, args...),
	}
}

// WrapKV annotates err with the key-value pairs formatted as
// `[|key: value]...`. If err is nil, WrapKV returns nil.
func WrapKV(err error, keysAndValues ...any) error {
	if err == nil {
		return nil
	}
	return &withMessage{
		cause:   err,
		message: combineKV(keysAndValues...),
	}
}

// WithCode wraps err with a code. If err is nil, WithCode returns nil.
func WithCode(err error, code Code) error {
	if err == nil {
		return nil
	}
	return &withCode{cause: err, code: code}
}

type coder interface {
	Code() Code
}

// CodeOf returns the code of the outermost coded error in err's tree, or
// CodeUnknown if none.
func CodeOf(err error) Code {
	for err != nil {
		if w, ok := err.(coder); ok {
			return w.Code()
		}
		err = errors.Unwrap(err)
	}
	return CodeUnknown
}

// Is reports whether any error in err's tree carries code.
func Is(err error, code Code) bool {
	for err != nil {
		if w, ok := err.(coder); ok && w.Code() == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
