package cashbook

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestNormalize_RunningBalance(t *testing.T) {
	entries := []Entry{
		entry("2025-01-01", In, "100"),
		entry("2025-01-02", Out, "30"),
	}
	annotated := Normalize(entries)
	if len(annotated) != 2 {
		t.Fatalf("Normalize() returned %d entries, want 2", len(annotated))
	}
	if !annotated[0].Balance.Equal(dec("100")) {
		t.Errorf("balance[0] = %s, want 100", annotated[0].Balance)
	}
	if !annotated[1].Balance.Equal(dec("70")) {
		t.Errorf("balance[1] = %s, want 70", annotated[1].Balance)
	}
	// Displayed newest first, the head carries the final balance.
	displayed := reversed(annotated)
	if !displayed[0].Balance.Equal(dec("70")) {
		t.Errorf("displayed head balance = %s, want 70", displayed[0].Balance)
	}
}

func TestNormalize_FinalBalanceIsNetSum(t *testing.T) {
	entries := []Entry{
		entry("2025-01-01", In, "100"),
		entry("2025-01-02", Out, "30"),
		entry("2025-01-03", InOut, "500"),
		entry("2025-01-04", Kind("mystery"), "999"),
		entry("2025-01-05", In, "12.50"),
		entry("2025-01-06", Out, "0.50"),
	}
	annotated := Normalize(entries)

	// INOUT and unknown kinds contribute nothing: 100 - 30 + 12.50 - 0.50
	want := dec("82")
	if got := annotated[len(annotated)-1].Balance; !got.Equal(want) {
		t.Errorf("final balance = %s, want %s", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	entries := []Entry{
		entry("2025-01-01", In, "100"),
		entry("2025-01-02", Out, "30"),
		entry("2025-01-03", InOut, "40"),
	}
	once := Normalize(entries)

	// Project the annotated entries back to raw and normalize again.
	raw := make([]Entry, 0, len(once))
	for _, e := range once {
		raw = append(raw, e.Entry)
	}
	twice := Normalize(raw)

	for i := range once {
		if !once[i].Balance.Equal(twice[i].Balance) {
			t.Errorf("balance[%d] = %s after renormalization, want %s", i, twice[i].Balance, once[i].Balance)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	annotated := Normalize(nil)
	if len(annotated) != 0 {
		t.Errorf("Normalize(nil) returned %d entries, want 0", len(annotated))
	}
}

func TestNormalize_CaseInsensitiveKinds(t *testing.T) {
	entries := []Entry{
		entry("2025-01-01", Kind("in"), "10"),
		entry("2025-01-02", Kind("Out"), "4"),
	}
	annotated := Normalize(entries)
	if got := annotated[1].Balance; !got.Equal(dec("6")) {
		t.Errorf("final balance = %s, want 6", got)
	}
}

func TestReversed_Twice(t *testing.T) {
	annotated := Normalize([]Entry{
		entry("2025-01-01", In, "1"),
		entry("2025-01-02", In, "2"),
		entry("2025-01-03", In, "3"),
	})
	if diff := cmp.Diff(annotated, reversed(reversed(annotated)), entryDiff); diff != "" {
		t.Errorf("reversed(reversed(x)) != x (-want +got):\n%s", diff)
	}
}

func TestSortChronological_Stable(t *testing.T) {
	entries := []Entry{
		entry("2025-01-03", In, "3"),
		entry("2025-01-01", In, "1"),
		{Date: MustParseDate("2025-01-01"), Name: "same day, later row", Kind: In, Amount: decimal.NewFromInt(2)},
	}
	sortChronological(entries)
	if !entries[0].Amount.Equal(dec("1")) || entries[1].Name == "" || !entries[2].Amount.Equal(dec("3")) {
		t.Errorf("unexpected order after sort: %v", entries)
	}
}
