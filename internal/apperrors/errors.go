// internal/apperrors/errors.go
package apperrors

import "errors"

// Sentinel errors shared by the store, services, and handlers. Handlers map
// them to HTTP statuses with errors.Is; everything else propagates unchanged.
var (
	ErrUnavailable       = errors.New("storage is not configured")
	ErrNotFound          = errors.New("resource not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnauthorized      = errors.New("authentication required")
	ErrForbidden         = errors.New("access denied")
)
