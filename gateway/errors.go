package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is an explicit 404 from a reachable backend
	ErrNotFound = errors.New("not found")

	// ErrUnavailable means the backend is down and the offline data has no
	// such entity either
	ErrUnavailable = errors.New("not available from backend or offline data")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
)

// TransportError is a failure to get a usable answer from the backend:
// dial and timeout errors, 5xx, 408, 429, unreadable bodies. The gateway
// never returns it; it switches to the offline data instead.
type TransportError struct {
	Op     string
	Status int // 0 when no response was received
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: backend returned %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError is a 4xx answer. Message is the backend's error text.
type RemoteError struct {
	Op      string
	Status  int
	Message string
	Err     error // sentinel, may be nil
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.Status, msg)
}

func (e *RemoteError) Unwrap() error { return e.Err }
