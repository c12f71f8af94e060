package cashbook

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	entries := reversed(Normalize([]Entry{
		entry("2025-01-01", In, "100"),
		{Date: MustParseDate("2025-01-02"), Name: `the "corner" shop`, Description: "supplies", Kind: Out, Amount: dec("30.5")},
	}))

	var buf bytes.Buffer
	if err := ExportCSV(&buf, entries); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	want := strings.Join([]string{
		"Date,Name,Description,Type,Amount,Balance",
		`"02 Jan 2025","the ""corner"" shop","supplies","OUT",30.5,69.5`,
		`"01 Jan 2025","","","IN",100,100`,
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("ExportCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestExportCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, nil); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	if got := buf.String(); got != "Date,Name,Description,Type,Amount,Balance\n" {
		t.Errorf("ExportCSV() on an empty book = %q, want only the header", got)
	}
}
