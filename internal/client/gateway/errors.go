package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrInvalidCredentials is an authentication rejection on login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailInUse is a conflict rejection on register.
	ErrEmailInUse = errors.New("email already in use")
)

// StatusError is any other non-2xx response. Message carries the server's
// error text when the body was a {"error": "..."} object.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("error %d", e.Code)
}
