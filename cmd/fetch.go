package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rollbook"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	day string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch a closing price from Yahoo Finance" }
func (*fetchCmd) Usage() string {
	return `rollbook fetch [-d <date>] <symbol or ticker>

  Prints the closing price of an instrument on a date (defaulting to
  today, falling back to the closest prior trading day). A catalog
  symbol (ES) resolves to its continuous contract ticker; anything else
  is used as a raw Yahoo ticker (ESH26.CME).
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Date to fetch (YYYY-MM-DD). Defaults to today.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a single <symbol or ticker> argument.")
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.day)
	if err != nil {
		return fail(err)
	}

	var price float64
	if _, ok := rollbook.GetInstrument(f.Arg(0)); ok {
		price, err = rollbook.FetchInstrumentClose(f.Arg(0), on)
	} else {
		price, err = rollbook.FetchClose(f.Arg(0), on)
	}
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%g\n", price)
	return subcommands.ExitSuccess
}
