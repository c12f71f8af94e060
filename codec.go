package cashbook

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// rawEntry is the loosely typed shape of a row as found in a store. Nothing
// outside this file sees it: decoding is the one place where amounts and
// dates are coerced into their typed form.
type rawEntry struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      json.RawMessage `json:"amount"`
}

// entry converts the raw row to its typed form.
func (r rawEntry) entry() Entry {
	on, err := ParseDate(r.Date)
	if err != nil && r.Date != "" {
		log.Printf("unreadable date %q, keeping the row with a zero date", r.Date)
	}
	return Entry{
		ID:          r.ID,
		Date:        on,
		Name:        r.Name,
		Description: r.Description,
		Kind:        Kind(r.Type),
		Amount:      coerceAmount(r.Amount),
	}
}

// coerceAmount reads an amount that stores serialize either as a JSON number
// or as a numeric string, sometimes with a decimal comma. Anything unreadable
// coerces to zero, a malformed row must not take the whole book down.
func coerceAmount(raw json.RawMessage) decimal.Decimal {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero
	}
	if s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err != nil {
			return decimal.Zero
		}
		s = strings.ReplaceAll(strings.TrimSpace(unquoted), ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Printf("unreadable amount %q, coerced to 0", s)
		return decimal.Zero
	}
	return d
}

// DecodeEntries decodes a JSON array of loosely typed rows from 'r' into
// typed entries, in the order they appear.
func DecodeEntries(r io.Reader) ([]Entry, error) {
	var raws []rawEntry
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("cannot parse entries: %w", err)
	}
	entries := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		entries = append(entries, raw.entry())
	}
	return entries, nil
}

// decodeLooseRows converts rows already decoded as generic JSON values
// (as obtained from a remote payload) into typed entries.
func decodeLooseRows(rows []any) ([]Entry, error) {
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("cannot remarshal rows: %w", err)
	}
	return DecodeEntries(strings.NewReader(string(data)))
}

// EncodeEntries encodes entries to 'w' as a JSON array, preserving order.
// Callers are expected to pass the chronological order, which is the
// canonical order of any persisted collection.
func EncodeEntries(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("cannot marshal entries: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write entries: %w", err)
	}
	return nil
}
