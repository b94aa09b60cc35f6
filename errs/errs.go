package errs

import (
	"errors"
	"fmt"
)

// Kind classifies failures the way the HTTP layer reports them.
type Kind int

const (
	// Validation: missing/malformed input, caller must correct and resubmit.
	Validation Kind = iota
	// NotFound: row absent or owned by another company. Both cases look
	// identical to the caller so tenants cannot be enumerated.
	NotFound
	// Conflict: state guard violation, e.g. editing a terminal invoice.
	Conflict
	// Internal: database/transaction/rendering failure.
	Internal
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

// Internalf wraps an underlying error; the handler logs it and surfaces a
// generic message.
func Internalf(err error, format string, args ...any) *Error {
	return &Error{Kind: Internal, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of err, or Internal for anything untyped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
