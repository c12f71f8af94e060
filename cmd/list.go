package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	head int
	tail int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the entries of the book, newest first" }
func (*listCmd) Usage() string {
	return `cbk list [-head <n>] [-tail <n>]

  Lists the entries of the book with their running balance, newest first,
  with options for limiting the output.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N entries.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N entries.")
}

func (p *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	entries := book.Entries()
	if p.head > 0 && len(entries) > p.head {
		entries = entries[:p.head]
	}
	if p.tail > 0 && len(entries) > p.tail {
		entries = entries[len(entries)-p.tail:]
	}

	printMarkdown(renderer.Entries(entries, *currencyFlag))
	return subcommands.ExitSuccess
}
