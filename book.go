package cashbook

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Severity tags a notification.
type Severity string

const (
	Info    Severity = "info"
	Warning Severity = "warning"
	Failure Severity = "error"
)

// Notifier receives the outcome of book operations. Implementations display
// a title and message to the user; they are fire-and-forget and must not
// block. The zero book uses a no-op notifier.
type Notifier interface {
	Notify(severity Severity, title, message string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Severity, string, string) {}

// Confirmer is the external capability asked before a delete. It presents
// the entry and reports whether the user confirmed.
type Confirmer func(e AnnotatedEntry) bool

// ValidationError reports a rejected entry field. No I/O is performed and no
// state is mutated when an append fails validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason) }

// ErrNoDelete is returned when deleting from a store that cannot rewrite its
// collection, which is the case of the remote store.
var ErrNoDelete = errors.New("the active store does not support deleting entries")

// Book is the reconciliation engine: it holds the annotated entries in
// memory, newest first, and keeps the active store in step with them.
//
// A Book is a single-writer structure. Operations are expected to be invoked
// serially; nothing guards against overlapping calls.
type Book struct {
	store    Store
	fallback *LocalStore // read fallback in remote mode, nil otherwise
	notifier Notifier
	entries  []AnnotatedEntry // newest first, the display invariant
}

// NewBook creates a book over the store selected by cfg. In remote mode the
// local store at cfg.Path serves as read fallback. A nil notifier is legal.
func NewBook(cfg StoreConfig, notifier Notifier) *Book {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	b := &Book{store: NewStore(cfg), notifier: notifier}
	if cfg.Remote() && cfg.Path != "" {
		b.fallback = NewLocalStore(cfg.Path)
	}
	return b
}

// Load pulls every entry from the active store, recomputes balances over the
// chronological order and replaces the in-memory state. It is safe to call
// repeatedly. A remote fetch failure silently falls back to the local store.
func (b *Book) Load(ctx context.Context) error {
	entries, err := b.store.FetchAll(ctx)
	if err != nil && b.fallback != nil {
		log.Printf("remote fetch failed, falling back to local store: %v", err)
		entries, err = b.fallback.FetchAll(ctx)
	}
	if err != nil {
		b.notifier.Notify(Failure, "Load failed", err.Error())
		return fmt.Errorf("cannot load book: %w", err)
	}
	sortChronological(entries)
	b.entries = reversed(Normalize(entries))
	return nil
}

// Entries returns the annotated entries, newest first.
func (b *Book) Entries() []AnnotatedEntry { return b.entries }

// Len returns the number of entries in the book.
func (b *Book) Len() int { return len(b.entries) }

// LastBalance returns the balance after the newest entry, zero for an empty
// book. This is the one place the display-order head is read, new balances
// are always derived from here.
func (b *Book) LastBalance() decimal.Decimal {
	if len(b.entries) == 0 {
		return decimal.Zero
	}
	return b.entries[0].Balance
}

// Balance returns the current balance of the book.
func (b *Book) Balance() decimal.Decimal { return b.LastBalance() }

// Append validates the entry, annotates it with the new running balance and
// writes it through the active store. On success the entry is prepended to
// the in-memory state; on any failure the state is left untouched and the
// entry is persisted nowhere.
func (b *Book) Append(ctx context.Context, e Entry) (AnnotatedEntry, error) {
	if err := validate(e); err != nil {
		b.notifier.Notify(Warning, "Invalid entry", err.Error())
		return AnnotatedEntry{}, err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	annotated := AnnotatedEntry{Entry: e, Balance: b.LastBalance().Add(e.Signed())}
	if err := b.store.Append(ctx, annotated); err != nil {
		b.notifier.Notify(Failure, "Entry not recorded", err.Error())
		return AnnotatedEntry{}, fmt.Errorf("cannot append entry: %w", err)
	}

	b.entries = append([]AnnotatedEntry{annotated}, b.entries...)
	b.notifier.Notify(Info, "Entry recorded", fmt.Sprintf("balance is now %s", annotated.Balance))
	return annotated, nil
}

// Delete removes the entry at the given newest-first position, persists the
// chronological remainder and renormalizes the in-memory balances right
// away. The confirmer is consulted first; declining makes Delete a no-op.
// Only stores that can rewrite their collection support deleting.
func (b *Book) Delete(ctx context.Context, index int, confirm Confirmer) (bool, error) {
	persister, ok := b.store.(Persister)
	if !ok {
		return false, ErrNoDelete
	}
	if index < 0 || index >= len(b.entries) {
		return false, fmt.Errorf("no entry at position %d", index)
	}
	if confirm != nil && !confirm(b.entries[index]) {
		return false, nil
	}

	// Raw surviving entries, back in chronological order for persistence.
	raw := make([]Entry, 0, len(b.entries)-1)
	for i := len(b.entries) - 1; i >= 0; i-- {
		if i == index {
			continue
		}
		raw = append(raw, b.entries[i].Entry)
	}

	if err := persister.Persist(ctx, raw); err != nil {
		b.notifier.Notify(Failure, "Entry not deleted", err.Error())
		return false, fmt.Errorf("cannot delete entry: %w", err)
	}

	b.entries = reversed(Normalize(raw))
	b.notifier.Notify(Info, "Entry deleted", fmt.Sprintf("balance is now %s", b.Balance()))
	return true, nil
}

// validate checks the required fields of a submitted entry: a usable date
// and a non-zero amount.
func validate(e Entry) error {
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "a date is required"}
	}
	if e.Amount.IsZero() {
		return &ValidationError{Field: "amount", Reason: "a non-zero amount is required"}
	}
	return nil
}
