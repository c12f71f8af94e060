// Package renderer renders the cashbook to markdown strings.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/cashbook"
	"github.com/shopspring/decimal"
)

//go:embed *.md
var templates embed.FS

// row is the display projection of one annotated entry.
type row struct {
	Date        string
	Name        string
	Description string
	Kind        string
	Amount      string
	Balance     string
}

type bookView struct {
	Rows    []row
	Balance string
}

// Entries renders the entries (newest first) as a markdown table followed by
// the current balance, formatted in the given display currency.
func Entries(entries []cashbook.AnnotatedEntry, currency string) string {
	view := bookView{Balance: cashbook.M(decimal.Zero, currency).String()}
	if len(entries) > 0 {
		view.Balance = cashbook.M(entries[0].Balance, currency).String()
	}
	for _, e := range entries {
		view.Rows = append(view.Rows, row{
			Date:        e.Date.String(),
			Name:        e.Name,
			Description: e.Description,
			Kind:        string(e.Kind),
			Amount:      cashbook.M(e.Signed(), currency).SignedString(),
			Balance:     cashbook.M(e.Balance, currency).String(),
		})
	}
	return renderTemplate("entries", "entries.md", view)
}

// Entry renders a one-line summary of an entry, used by confirmation prompts.
func Entry(e cashbook.AnnotatedEntry, currency string) string {
	return fmt.Sprintf("%s %q %s %s", e.Date, e.Name, e.Kind, cashbook.M(e.Amount, currency))
}

// renderTemplate renders one embedded template with the given data.
func renderTemplate(templateName, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
