package cashbook

import "context"

// StoreConfig selects the active store for a book. The endpoint, when set,
// makes the remote store the sink of record; the path always names the local
// bolt file, used as the only store in local mode and as the read fallback
// in remote mode.
type StoreConfig struct {
	Endpoint string // URL of the remote tabular endpoint, empty for local mode.
	Path     string // path of the local bolt file.
}

// Remote reports whether the configuration selects the remote store.
func (c StoreConfig) Remote() bool { return c.Endpoint != "" }

// Store is the persistence contract of a book.
type Store interface {
	// FetchAll returns every persisted entry, in the stored (chronological) order.
	FetchAll(ctx context.Context) ([]Entry, error)
	// Append persists one annotated entry. The balance travels as an opaque
	// payload field, stores never recompute it.
	Append(ctx context.Context, e AnnotatedEntry) error
}

// Persister is implemented by stores that can rewrite the whole collection,
// which is what deleting an entry requires. The remote store deliberately
// does not implement it.
type Persister interface {
	// Persist overwrites the persisted collection with entries, which must be
	// in chronological order.
	Persist(ctx context.Context, entries []Entry) error
}

// NewStore returns the store selected by the configuration.
func NewStore(cfg StoreConfig) Store {
	if cfg.Remote() {
		return NewRemoteStore(cfg.Endpoint)
	}
	return NewLocalStore(cfg.Path)
}
