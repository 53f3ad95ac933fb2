package engine

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable means no document store is configured or reachable.
// Catalog reads never return it; every plan operation can.
var ErrStoreUnavailable = errors.New("database not configured")

// ValidationError reports a rejected request body field. Raised before any
// store access is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
