package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/cashbook"
	"github.com/shopspring/decimal"
)

func annotated(date string, kind cashbook.Kind, amount, balance string) cashbook.AnnotatedEntry {
	return cashbook.AnnotatedEntry{
		Entry: cashbook.Entry{
			Date:   cashbook.MustParseDate(date),
			Name:   "market",
			Kind:   kind,
			Amount: decimal.RequireFromString(amount),
		},
		Balance: decimal.RequireFromString(balance),
	}
}

func TestEntries(t *testing.T) {
	entries := []cashbook.AnnotatedEntry{
		annotated("2025-01-02", cashbook.Out, "30", "70"),
		annotated("2025-01-01", cashbook.In, "100", "100"),
	}
	md := Entries(entries, "EUR")

	for _, want := range []string{
		"| Date | Name | Description | Type | Amount | Balance |",
		"| 2025-01-02 |",
		"| 2025-01-01 |",
		"Current balance: **€70.00**",
		"-€30.00",
		"+€100.00",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Entries() output misses %q:\n%s", want, md)
		}
	}
}

func TestEntries_Empty(t *testing.T) {
	md := Entries(nil, "EUR")
	if !strings.Contains(md, "Current balance: **€0.00**") {
		t.Errorf("Entries() on an empty book misses the zero balance:\n%s", md)
	}
}

func TestEntry(t *testing.T) {
	line := Entry(annotated("2025-01-02", cashbook.Out, "30", "70"), "EUR")
	for _, want := range []string{"2025-01-02", `"market"`, "OUT", "€30.00"} {
		if !strings.Contains(line, want) {
			t.Errorf("Entry() = %q, misses %q", line, want)
		}
	}
}
