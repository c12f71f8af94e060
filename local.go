package cashbook

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/boltdb/bolt"
)

var (
	bookBucket = []byte("cashbook")
	entriesKey = []byte("entries")
)

// LocalStore persists the whole collection as a JSON array under a single
// namespaced key of a bolt file. Every write is a full overwrite, never an
// incremental append: at personal-ledger scale simplicity wins.
type LocalStore struct {
	Path string
}

// NewLocalStore returns a store backed by the bolt file at path. The file is
// created on first write.
func NewLocalStore(path string) *LocalStore {
	return &LocalStore{Path: path}
}

func (s *LocalStore) open() (*bolt.DB, error) {
	return bolt.Open(s.Path, 0600, &bolt.Options{Timeout: time.Second})
}

// FetchAll reads the persisted collection. An absent file, absent key or
// unreadable value all read as an empty book, never as an error.
func (s *LocalStore) FetchAll(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db, err := s.open()
	if err != nil {
		log.Printf("cannot open local store %q, reading as empty: %v", s.Path, err)
		return nil, nil
	}
	defer db.Close()

	var entries []Entry
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bookBucket)
		if b == nil {
			return nil
		}
		value := b.Get(entriesKey)
		if value == nil {
			return nil
		}
		decoded, err := DecodeEntries(bytes.NewReader(value))
		if err != nil {
			log.Printf("corrupt local store %q, reading as empty: %v", s.Path, err)
			return nil
		}
		entries = decoded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot read local store %q: %w", s.Path, err)
	}
	return entries, nil
}

// Persist overwrites the collection with entries in chronological order.
func (s *LocalStore) Persist(ctx context.Context, entries []Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := EncodeEntries(&buf, entries); err != nil {
		return err
	}
	db, err := s.open()
	if err != nil {
		return fmt.Errorf("cannot open local store %q: %w", s.Path, err)
	}
	defer db.Close()

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bookBucket)
		if err != nil {
			return err
		}
		return b.Put(entriesKey, buf.Bytes())
	})
}

// Append persists the entry by rewriting the whole collection with the raw
// entry added at the end. The stored balance field is advisory: the next
// load recomputes balances from scratch.
func (s *LocalStore) Append(ctx context.Context, e AnnotatedEntry) error {
	entries, err := s.FetchAll(ctx)
	if err != nil {
		return err
	}
	return s.Persist(ctx, append(entries, e.Entry))
}

var _ Store = (*LocalStore)(nil)
var _ Persister = (*LocalStore)(nil)
