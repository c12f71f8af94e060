package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

type syncCmd struct{}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "refresh the local fallback store from the remote endpoint" }
func (*syncCmd) Usage() string {
	return `cbk sync

  Fetches every row from the remote endpoint and overwrites the local
  store with them, so the book keeps working offline from fresh data.
  Requires -endpoint.
`
}

func (*syncCmd) SetFlags(*flag.FlagSet) {}

func (*syncCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := storeConfig()
	if !cfg.Remote() {
		fmt.Fprintln(os.Stderr, "Error: sync requires a remote endpoint, set -endpoint.")
		return subcommands.ExitUsageError
	}

	entries, err := cashbook.NewRemoteStore(cfg.Endpoint).FetchAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching from %q: %v\n", cfg.Endpoint, err)
		return subcommands.ExitFailure
	}

	local := cashbook.NewLocalStore(cfg.Path)
	if err := local.Persist(ctx, entries); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Synced %d entries into %s\n", len(entries), cfg.Path)
	return subcommands.ExitSuccess
}
