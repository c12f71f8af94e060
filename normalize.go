package cashbook

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Normalize folds a running balance over entries given in chronological
// order (oldest first) and returns a copy of each entry annotated with the
// balance after it is applied.
//
// The fold is pure: same input, same output, no side effects. An empty
// input yields an empty output and the running total starts at zero.
func Normalize(entries []Entry) []AnnotatedEntry {
	annotated := make([]AnnotatedEntry, 0, len(entries))
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.Signed())
		annotated = append(annotated, AnnotatedEntry{Entry: e, Balance: balance})
	}
	return annotated
}

// sortChronological sorts entries by date, oldest first. The sort is stable,
// entries on the same day keep their stored relative order.
func sortChronological(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].When().Before(entries[j].When())
	})
}

// reversed returns a reversed copy of the annotated entries, flipping between
// the chronological (storage) order and the newest-first (display) order.
func reversed(entries []AnnotatedEntry) []AnnotatedEntry {
	out := make([]AnnotatedEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
