// Package cmd implements the CLI application to manage a cashbook.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the cbk tool.
// A main package iterates over Commands to register them, then Execute()
// runs the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&listCmd{},
	&balanceCmd{},
	&exportCmd{},
	&syncCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var endpointFlag = flag.String("endpoint", os.Getenv("CBK_ENDPOINT"), "URL of the remote sheet endpoint. When empty the book lives in the local store only.")
var storeFlag = flag.String("store", defaultStorePath(), "Path to the local store file.")
var currencyFlag = flag.String("currency", "EUR", "Display currency for amounts and balances.")

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cashbook.db"
	}
	return filepath.Join(home, ".cashbook.db")
}

func storeConfig() cashbook.StoreConfig {
	return cashbook.StoreConfig{Endpoint: *endpointFlag, Path: *storeFlag}
}

// openBook creates the book for the configured store and loads it.
func openBook(ctx context.Context) (*cashbook.Book, error) {
	book := cashbook.NewBook(storeConfig(), stderrNotifier{})
	if err := book.Load(ctx); err != nil {
		return nil, err
	}
	return book, nil
}

// stderrNotifier is the notification capability of the CLI: one line on
// stderr per outcome, never blocking anything.
type stderrNotifier struct{}

func (stderrNotifier) Notify(severity cashbook.Severity, title, message string) {
	fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", severity, title, message)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
