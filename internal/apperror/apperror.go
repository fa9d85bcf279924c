package apperror

import "errors"

// Kind describes a stable error category that can be mapped to HTTP status codes.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindInvalidSelection Kind = "invalid_selection"
	KindConstraint       Kind = "constraint_violation"
	KindGeometry         Kind = "geometry"
	KindPhysical         Kind = "physical_constraint"
)

// Error is a typed error with a stable Kind and a human-readable message.
// Msg is safe to return to clients for every kind except internal causes
// carried in Err.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func NotFound(msg string) error         { return New(KindNotFound, msg, nil) }
func InvalidSelection(msg string) error { return New(KindInvalidSelection, msg, nil) }
func Constraint(msg string) error       { return New(KindConstraint, msg, nil) }
func Geometry(msg string) error         { return New(KindGeometry, msg, nil) }
func Physical(msg string) error         { return New(KindPhysical, msg, nil) }

func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// IsQuoteError reports whether err belongs to the pricing error taxonomy,
// i.e. it is a client-facing rejection rather than an internal failure.
func IsQuoteError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
