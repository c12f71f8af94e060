package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the book as CSV" }
func (*exportCmd) Usage() string {
	return `cbk export [-o <file>]

  Writes the book as comma-separated text with the header row
  Date,Name,Description,Type,Amount,Balance. Defaults to stdout.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "File to write the CSV to. Defaults to stdout.")
}

func (p *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if p.outputFile != "" {
		f, err := os.Create(p.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q for writing: %v\n", p.outputFile, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		out = f
	}

	if err := cashbook.ExportCSV(out, book.Entries()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.outputFile != "" {
		fmt.Fprintf(os.Stderr, "Exported %d entries to %s\n", book.Len(), p.outputFile)
	}
	return subcommands.ExitSuccess
}
