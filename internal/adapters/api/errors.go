package api

import (
	"errors"
	"fmt"
)

// Classification sentinels, ordered by precedence: transport beats
// authentication, authentication beats status-code kinds, status-code kinds
// beat envelope failures. Callers branch with errors.Is.
var (
	ErrTransport       = errors.New("transport failure")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrPermission      = errors.New("permission denied")
	ErrNotFound        = errors.New("not found")
	ErrServer          = errors.New("server error")
	ErrApplication     = errors.New("request failed")
)

// Error is a classified failure from the request pipeline.
type Error struct {
	Kind    error  // one of the sentinels above
	Status  int    // HTTP status, 0 for transport failures
	Code    int    // envelope code when one was decoded
	Message string // envelope message, verbatim
	cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.cause != nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.cause)
	case e.Status != 0:
		return fmt.Sprintf("%s: status %d", e.Kind, e.Status)
	default:
		return e.Kind.Error()
	}
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Kind, e.cause}
	}
	return []error{e.Kind}
}
