package store

import "context"

// Store is JobDesk's durable client-side storage: a small set of named
// entries (credentials) persisted across process restarts. It is the
// desktop analog of the browser storage the original web client used.
type Store interface {
	// Get returns the value for a named entry, or ("", false) when the
	// entry does not exist.
	Get(ctx context.Context, name string) (string, bool, error)

	// Set writes a single named entry, overwriting any existing value.
	Set(ctx context.Context, name, value string) error

	// SetPair writes two entries in one transaction so a crash can
	// never leave half an update behind.
	SetPair(ctx context.Context, name1, value1, name2, value2 string) error

	// Delete removes a named entry; deleting a missing entry is a no-op.
	Delete(ctx context.Context, name string) error

	// DeletePair removes two entries in one transaction.
	DeletePair(ctx context.Context, name1, name2 string) error

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
