package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	date        string
	name        string
	description string
	kind        string
	amount      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new entry in the book" }
func (*addCmd) Usage() string {
	return `cbk add -t <in|out|inout> -a <amount> [-d <date>] [-n <name>] [-m <description>]

  Records a new entry and writes it through the active store. The new
  running balance is computed from the current book.

Usage Examples:
# record 120.50 of income today
$ cbk add -t in -a 120.50 -n "market day"

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "0d", "Date of the entry (defaults to today).")
	f.StringVar(&p.name, "n", "", "Short name for the entry.")
	f.StringVar(&p.description, "m", "", "Longer description of the entry.")
	f.StringVar(&p.kind, "t", "", "Entry type: in, out or inout.")
	f.StringVar(&p.amount, "a", "", "Positive amount of the entry.")
}

func (p *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := cashbook.ParseKind(p.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(p.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", p.amount, err)
		return subcommands.ExitUsageError
	}
	on, err := cashbook.ParseDate(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	entry := cashbook.Entry{
		Date:        on,
		Name:        p.name,
		Description: p.description,
		Kind:        kind,
		Amount:      amount,
	}
	annotated, err := book.Append(ctx, entry)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s entry of %s on %s, balance is %s\n",
		annotated.Kind, cashbook.M(annotated.Amount, *currencyFlag), annotated.Date,
		cashbook.M(annotated.Balance, *currencyFlag))
	return subcommands.ExitSuccess
}
