// Command rollbook tracks a futures position across contract rolls.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rollbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// When invoked by a shell completion hook this prints the candidates
	// and exits; install with COMP_INSTALL=1 rollbook.
	completion().Complete("rollbook")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	ledgers := predict.Files("*.csv")
	none := predict.Nothing
	return &complete.Command{
		Flags: map[string]complete.Predictor{"ledger-file": ledgers},
		Sub: map[string]*complete.Command{
			"new": {Flags: map[string]complete.Predictor{
				"i": none, "multiplier": none, "contract": none, "d": none,
				"price": none, "q": none, "direction": predict.Set{"LONG", "SHORT"}, "notes": none,
			}},
			"roll": {Flags: map[string]complete.Predictor{
				"exit-price": none, "exit-d": none, "contract": none,
				"entry-price": none, "entry-d": none, "q": none, "notes": none,
			}},
			"close":       {Flags: map[string]complete.Predictor{"price": none, "d": none}},
			"fmt":         {},
			"status":      {Flags: map[string]complete.Predictor{"price": none, "fetch": none, "json": none}},
			"series":      {Flags: map[string]complete.Predictor{"json": none}},
			"instruments": {},
			"contract":    {},
			"fetch":       {Flags: map[string]complete.Predictor{"d": none}},
			"volume": {Flags: map[string]complete.Predictor{
				"front": none, "front-year": none, "back": none, "back-year": none,
			}},
			"topic": {},
		},
	}
}
