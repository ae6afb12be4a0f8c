package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/etnz/rollbook"
	"github.com/google/subcommands"
)

type contractCmd struct{}

func (*contractCmd) Name() string     { return "contract" }
func (*contractCmd) Synopsis() string { return "print a contract symbol and its Yahoo ticker" }
func (*contractCmd) Usage() string {
	return `rollbook contract <symbol> <month 1-12> <year>

  Prints the standard contract label (e.g. ESH25) for an instrument,
  month and year. For catalog instruments it also prints the matching
  Yahoo Finance ticker (e.g. ESH25.CME).
`
}

func (*contractCmd) SetFlags(f *flag.FlagSet) {}

func (c *contractCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <symbol> <month> <year> arguments.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)
	month, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		return fail(fmt.Errorf("invalid month %q: %w", f.Arg(1), err))
	}
	year, err := strconv.Atoi(f.Arg(2))
	if err != nil {
		return fail(fmt.Errorf("invalid year %q: %w", f.Arg(2), err))
	}

	label, err := rollbook.ContractSymbol(symbol, time.Month(month), year)
	if err != nil {
		return fail(err)
	}
	fmt.Println(label)
	if ticker, err := rollbook.YahooContractTicker(symbol, time.Month(month), year); err == nil {
		fmt.Println(ticker)
	}
	return subcommands.ExitSuccess
}
