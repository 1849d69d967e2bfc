package tables

import "errors"

// Kind classifies a command failure. The kind travels to the client inside
// the unicast "exception" event, so the values are part of the wire format.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindInvalidArgument  Kind = "invalid_argument"
	KindInvalidState     Kind = "invalid_state"
	KindPrecondition     Kind = "precondition"
	KindUnauthorized     Kind = "unauthorized"
	KindConflict         Kind = "conflict"
	KindStoreUnavailable Kind = "store_unavailable"
)

// Error is a command-level failure. None of these are fatal to the room or
// the connection: the gateway reports them to the offending client only.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func ErrNotFound(message string) *Error {
	return NewError(KindNotFound, message)
}

func ErrInvalidArgument(message string) *Error {
	return NewError(KindInvalidArgument, message)
}

func ErrInvalidState(message string) *Error {
	return NewError(KindInvalidState, message)
}

func ErrPrecondition(message string) *Error {
	return NewError(KindPrecondition, message)
}

func ErrUnauthorized(message string) *Error {
	return NewError(KindUnauthorized, message)
}

func ErrConflict(message string) *Error {
	return NewError(KindConflict, message)
}

func ErrStoreUnavailable(message string) *Error {
	return NewError(KindStoreUnavailable, message)
}

// KindOf extracts the kind from any error. Errors that are not *Error are
// reported as store failures, which is what they are in practice (the only
// non-classified errors come from Redis or Postgres).
func KindOf(err error) Kind {
	var gameErr *Error
	if errors.As(err, &gameErr) {
		return gameErr.Kind
	}
	return KindStoreUnavailable
}
