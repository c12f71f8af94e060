package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type rmCmd struct {
	yes bool
	id  string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an entry from the book (local store only)" }
func (*rmCmd) Usage() string {
	return `cbk rm [-y] [-id <entry_id>] [<position>]

  Deletes the entry at the given position (0 is the newest, as printed by
  'cbk list'), or the entry with the given id. Asks for confirmation first.
  The remaining balances are recomputed right away. Only the local store
  supports deleting.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.yes, "y", false, "Delete without asking for confirmation.")
	f.StringVar(&p.id, "id", "", "Delete the entry with this id instead of a position.")
}

func (p *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	index := -1
	switch {
	case p.id != "":
		for i, e := range book.Entries() {
			if e.ID == p.id {
				index = i
				break
			}
		}
		if index < 0 {
			fmt.Fprintf(os.Stderr, "Error: no entry with id %q\n", p.id)
			return subcommands.ExitFailure
		}
	case f.NArg() == 1:
		index, err = strconv.Atoi(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid position %q\n", f.Arg(0))
			return subcommands.ExitUsageError
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: a position or -id is required.")
		return subcommands.ExitUsageError
	}

	confirm := p.confirmer()
	deleted, err := book.Delete(ctx, index, confirm)
	if err != nil {
		if errors.Is(err, cashbook.ErrNoDelete) {
			fmt.Fprintln(os.Stderr, "Error: entries of a remote endpoint cannot be deleted.")
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !deleted {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Deleted. Balance is now %s\n", cashbook.M(book.Balance(), *currencyFlag))
	return subcommands.ExitSuccess
}

// confirmer presents the entry on the terminal and reads a yes/no answer.
func (p *rmCmd) confirmer() cashbook.Confirmer {
	if p.yes {
		return nil
	}
	return func(e cashbook.AnnotatedEntry) bool {
		fmt.Printf("Delete %s? [y/N] ", renderer.Entry(e, *currencyFlag))
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}
