package inventory

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references an id that does
// not exist in the collection.
var ErrNotFound = errors.New("not found")

// ErrProtectedCategory is returned when a delete targets one of the seed
// categories. Removing them would orphan the default taxonomy.
var ErrProtectedCategory = errors.New("seed category cannot be deleted")

// ErrNotReady is returned for mutations attempted before the store has
// loaded its persisted state. Accepting them could overwrite storage
// with an empty in-memory snapshot.
var ErrNotReady = errors.New("store has not loaded persisted state yet")

// ValidationError reports a required field that is missing or out of
// range. The operation is rejected with no partial mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
