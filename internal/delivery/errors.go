package delivery

import "errors"

var (
	// ErrBusClosed is returned by a bus after Close.
	ErrBusClosed = errors.New("delivery bus closed")
	// ErrSessionClosed is returned by a session after Close.
	ErrSessionClosed = errors.New("session closed")
)
