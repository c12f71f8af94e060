package cashbook

import (
	"fmt"
	"io"
	"strings"
)

// this file handles the CSV export format.
// Text fields are always quoted with inner quotes doubled, numeric fields
// are emitted raw so spreadsheet tools read them as numbers.

var csvHeader = []string{"Date", "Name", "Description", "Type", "Amount", "Balance"}

// ExportCSV serializes annotated entries to 'w' as comma-separated UTF-8
// text, in the order given. Column order is fixed: date (human formatted),
// name, description, type, amount, balance.
func ExportCSV(w io.Writer, entries []AnnotatedEntry) error {
	if _, err := fmt.Fprintln(w, strings.Join(csvHeader, ",")); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, e := range entries {
		fields := []string{
			quoteField(e.Date.Format(HumanDateFormat)),
			quoteField(e.Name),
			quoteField(e.Description),
			quoteField(string(e.Kind)),
			e.Amount.String(),
			e.Balance.String(),
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, ",")); err != nil {
			return fmt.Errorf("cannot write CSV row: %w", err)
		}
	}
	return nil
}

// quoteField quotes a text field, doubling any inner quote character.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
