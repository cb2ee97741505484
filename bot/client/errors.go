package client

import "errors"

// Typed errors mapped from Booking Service response statuses. Flows branch
// on these to pick the user-facing reply.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("not authorized")
	ErrConflict     = errors.New("conflict")
)
