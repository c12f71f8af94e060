package cashbook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/boltdb/bolt"
)

func tempStore(t *testing.T) *LocalStore {
	t.Helper()
	return NewLocalStore(filepath.Join(t.TempDir(), "book.db"))
}

func TestLocalStore_RoundTrip(t *testing.T) {
	store := tempStore(t)
	entries := []Entry{
		{ID: "a", Date: MustParseDate("2025-01-01"), Name: "market", Kind: In, Amount: dec("100")},
		{ID: "b", Date: MustParseDate("2025-01-02"), Kind: Out, Amount: dec("30")},
	}
	if err := store.Persist(context.Background(), entries); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}

	got, err := store.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("FetchAll() returned %d entries, want %d", len(got), len(entries))
	}
	for i := range entries {
		if !got[i].Equal(entries[i]) {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestLocalStore_AbsentReadsEmpty(t *testing.T) {
	store := tempStore(t)
	got, err := store.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FetchAll() on an absent store returned %d entries, want 0", len(got))
	}
}

func TestLocalStore_CorruptValueReadsEmpty(t *testing.T) {
	store := tempStore(t)

	db, err := bolt.Open(store.Path, 0600, nil)
	if err != nil {
		t.Fatalf("bolt.Open() error = %v", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bookBucket)
		if err != nil {
			return err
		}
		return b.Put(entriesKey, []byte("this is not json"))
	})
	db.Close()
	if err != nil {
		t.Fatalf("seeding corrupt value: %v", err)
	}

	got, err := store.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() on a corrupt value must not error, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FetchAll() on a corrupt value returned %d entries, want 0", len(got))
	}
}

func TestLocalStore_CorruptFileReadsEmpty(t *testing.T) {
	store := tempStore(t)
	if err := os.WriteFile(store.Path, []byte("definitely not a bolt file"), 0600); err != nil {
		t.Fatal(err)
	}
	got, err := store.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() on a corrupt file must not error, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FetchAll() on a corrupt file returned %d entries, want 0", len(got))
	}
}

func TestLocalStore_AppendRewritesCollection(t *testing.T) {
	store := tempStore(t)
	if err := store.Persist(context.Background(), []Entry{entry("2025-01-01", In, "10")}); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}

	added := AnnotatedEntry{Entry: entry("2025-01-02", Out, "4"), Balance: dec("6")}
	if err := store.Append(context.Background(), added); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got, err := store.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FetchAll() returned %d entries, want 2", len(got))
	}
	if got[1].Date != MustParseDate("2025-01-02") || !got[1].Amount.Equal(dec("4")) {
		t.Errorf("appended entry = %+v, want the 2025-01-02 expense", got[1])
	}
}
