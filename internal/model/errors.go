package model

import "errors"

// Error taxonomy shared by every component. Callers wrap these with
// fmt.Errorf("%w: ...") and match them with errors.Is at the transport edge.
var (
	// ErrInvalidInput reports missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden reports a failed access-control or messaging-eligibility check.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound reports a missing row.
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a unique-constraint race on creation.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable reports a persistence or transport dependency failure.
	ErrUnavailable = errors.New("unavailable")
)
