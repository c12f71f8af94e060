package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cashbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the cbk command line for shell completion. It returns
// immediately unless the shell is asking for completions.
func completion() {
	kinds := predict.Set{"in", "out", "inout"}
	cbk := &complete.Command{
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"t": kinds, "a": predict.Something, "d": predict.Something,
				"n": predict.Something, "m": predict.Something,
			}},
			"rm":      {Flags: map[string]complete.Predictor{"y": predict.Nothing, "id": predict.Something}},
			"list":    {Flags: map[string]complete.Predictor{"head": predict.Something, "tail": predict.Something}},
			"balance": {},
			"export":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"sync":    {},
			"topic":   {Args: predict.Set{"readme", "stores", "export"}},
			"assist":  {},
		},
		Flags: map[string]complete.Predictor{
			"endpoint": predict.Something,
			"store":    predict.Files("*"),
			"currency": predict.Set{"EUR", "USD", "GBP", "CHF"},
		},
	}
	cbk.Complete("cbk")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
