package ports

import "errors"

// Adapters return these so services and transports can match them with errors.Is.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict: entity changed since it was read")
	ErrForbidden = errors.New("forbidden")
)
