package cashbook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is a typed string identifying how an entry moves the balance.
type Kind string

// Entry kinds. Any other value is preserved as-is and leaves the balance untouched.
const (
	In    Kind = "IN"    // income, adds to the balance
	Out   Kind = "OUT"   // expense, subtracts from the balance
	InOut Kind = "INOUT" // pass-through, balance neutral
)

// ParseKind parses a string into one of the known entry kinds,
// case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case In, Out, InOut:
		return k, nil
	default:
		return "", fmt.Errorf("unknown entry kind: %q", s)
	}
}

// Entry is a single line of the book, as persisted in any store.
//
// The Kind is kept exactly as ingested: comparisons are case-insensitive and
// unknown kinds are legal, they just never move the balance.
type Entry struct {
	ID          string          `json:"id,omitempty"`          // ID uniquely identifies the entry, may be absent on legacy rows.
	Date        Date            `json:"date"`                  // Date is the day the entry applies to.
	Name        string          `json:"name,omitempty"`        // Name is a short label for the entry.
	Description string          `json:"description,omitempty"` // Description provides an optional longer note.
	Kind        Kind            `json:"type"`                  // Kind tells how the entry moves the balance.
	Amount      decimal.Decimal `json:"amount"`                // Amount is always positive, the Kind carries the sign.
}

// When returns the date of the entry.
func (e Entry) When() Date { return e.Date }

// Signed returns the amount with the sign implied by the entry kind:
// positive for IN, negative for OUT, zero for INOUT and anything unknown.
func (e Entry) Signed() decimal.Decimal {
	switch Kind(strings.ToUpper(string(e.Kind))) {
	case In:
		return e.Amount
	case Out:
		return e.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// Equal reports whether two entries carry the same values.
func (e Entry) Equal(o Entry) bool {
	return e.ID == o.ID &&
		e.Date == o.Date &&
		e.Name == o.Name &&
		e.Description == o.Description &&
		e.Kind == o.Kind &&
		e.Amount.Equal(o.Amount)
}

// AnnotatedEntry is an Entry plus the running balance after the entry is applied.
type AnnotatedEntry struct {
	Entry
	Balance decimal.Decimal `json:"balance"`
}
