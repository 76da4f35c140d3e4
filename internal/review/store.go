package review

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when no entry exists for an ID.
var ErrNotFound = errors.New("review not found")

// Store is a key-value store of raw review entries keyed by review ID.
//
// Implementations must provide per-key read/write atomicity but need no
// multi-key transactions: concurrent writes to the same ID are
// last-write-wins by design. Entries are opaque bytes at this layer so the
// service can skip individually corrupt records when listing.
type Store interface {
	// Get returns the entry stored under id, or ErrNotFound.
	Get(ctx context.Context, id string) ([]byte, error)

	// Set stores an entry under id, overwriting any previous value.
	Set(ctx context.Context, id string, data []byte) error

	// Delete removes the entry under id. Deleting an absent id is not an
	// error at this layer; the service checks existence first.
	Delete(ctx context.Context, id string) error

	// List returns all stored entries keyed by ID.
	List(ctx context.Context) (map[string][]byte, error)
}
