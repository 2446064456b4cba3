// Package repository defines error types that are reused across the
// listing store and the user registry.  These sentinel values allow
// higher layers such as handlers to distinguish between different
// failure scenarios.
package repository

import "errors"

// ErrListingNotFound is returned when no listing has the requested id.
// Handlers should translate this into an HTTP 404 response.
var ErrListingNotFound = errors.New("listing not found")

// ErrForbidden is returned when the caller attempts an operation on a
// listing owned by someone else.  Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidPatch wraps a patch that failed field validation.  Handlers
// should translate this into an HTTP 400 response.
var ErrInvalidPatch = errors.New("invalid patch")
