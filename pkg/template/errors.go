package template

import "errors"

var (
	// ErrNotFound indicates no stored template matches the requested ID.
	ErrNotFound = errors.New("template not found")

	// ErrStoreFailed indicates the template store could not be read or
	// written.
	ErrStoreFailed = errors.New("template store operation failed")
)
