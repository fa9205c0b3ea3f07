// Package engineerr implements the engine's error taxonomy. Every
// mutator in the engine returns one of these kinds instead of panicking
// on user-reachable input; internal invariant violations are logged as
// diagnostics (see pkg/enginelog) rather than surfaced as panics.
package engineerr

import "fmt"

// Kind identifies one of the closed set of error categories.
type Kind int

const (
	EntityNotFound Kind = iota
	InvalidAction
	InvalidCardFormat
	InvalidDeckFormat
	ParseError
	Io
	Serialization
)

func (k Kind) String() string {
	switch k {
	case EntityNotFound:
		return "EntityNotFound"
	case InvalidAction:
		return "InvalidAction"
	case InvalidCardFormat:
		return "InvalidCardFormat"
	case InvalidDeckFormat:
		return "InvalidDeckFormat"
	case ParseError:
		return "ParseError"
	case Io:
		return "Io"
	case Serialization:
		return "Serialization"
	default:
		return "Unknown"
	}
}

// Error is the engine's tagged error type. Kind supports errors.Is via
// Is; Unwrap exposes any wrapped cause for errors.As chains.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is implements errors.Is comparison by Kind, so callers can write
// errors.Is(err, engineerr.ErrInvalidAction) directly against the
// sentinel *Error values below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// sentinel builds a zero-message *Error of a given kind, suitable for
// use as an errors.Is target: errors.Is(err, engineerr.ErrInvalidAction).
func sentinel(k Kind) *Error { return &Error{Kind: k} }

var (
	ErrEntityNotFound = sentinel(EntityNotFound)
	ErrInvalidAction  = sentinel(InvalidAction)
	ErrInvalidCardFmt = sentinel(InvalidCardFormat)
	ErrInvalidDeckFmt = sentinel(InvalidDeckFormat)
	ErrParseError     = sentinel(ParseError)
	ErrIo             = sentinel(Io)
	ErrSerialization  = sentinel(Serialization)
)

// New builds an *Error of the given kind with a formatted message.
func New(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around an underlying cause.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// NotFound is a convenience constructor for the common EntityNotFound(raw_id) case.
func NotFound(rawID uint32) *Error {
	return &Error{Kind: EntityNotFound, Msg: fmt.Sprintf("entity %d not found", rawID)}
}
