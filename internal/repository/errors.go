// Package repository defines error values reused across the three
// collection repositories.  Handlers translate these into HTTP
// responses instead of inspecting driver errors directly.
package repository

import "errors"

// ErrUnavailable is returned when a repository has no usable database
// handle.  Handlers should translate this into an HTTP 500 response.
var ErrUnavailable = errors.New("store unavailable")
