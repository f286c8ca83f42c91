package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors covering every domain-rule violation the graph layer can
// detect. Callers match them with errors.Is and decide how to surface each
// one; the layer never assumes a status-code scheme.
var (
	// ErrNotFound means a referenced node is absent or soft deleted.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated means no user identity was supplied for a gated
	// operation. Distinct from ErrForbidden.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the user is authenticated but is not a
	// participant (or owner, where ownership is required) of the campaign.
	ErrForbidden = errors.New("not a member of this campaign")

	// ErrDuplicate means a uniqueness rule was violated, e.g. a campaign
	// name already taken within the target world.
	ErrDuplicate = errors.New("already exists")

	// ErrHasDependents means a delete was blocked because the node still
	// has dependent edges. The graph is left unchanged.
	ErrHasDependents = errors.New("has dependent records")

	// ErrOnlyOwner means a membership removal would strip the campaign of
	// its last owner. The edge is left intact.
	ErrOnlyOwner = errors.New("cannot remove the only owner of a campaign")

	// ErrInvalidInput means a field value violated a structural rule the
	// store checks itself, e.g. an unknown membership role or a location
	// parented to itself.
	ErrInvalidInput = errors.New("invalid input")
)

// StoreError wraps an infrastructure-level failure from the underlying store.
// It is the only failure class that may propagate to callers unmodified as
// unexpected; domain-rule violations always surface as the sentinels above.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a StoreError for operation op. Returns nil when
// err is nil so it can be applied to a call result unconditionally.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether any error in err's chain is a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
