package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rollbook"
	"github.com/google/subcommands"
)

type newCmd struct {
	instrument string
	multiplier float64
	contract   string
	day        string
	price      float64
	quantity   int
	direction  string
	notes      string
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create a roll ledger with its first contract entry" }
func (*newCmd) Usage() string {
	return `rollbook new -i <instrument> -contract <symbol> -price <entry_price> [-multiplier <$/pt>] [-d <date>] [-q <quantity>] [-direction LONG|SHORT] [-notes <text>]

  Creates the ledger file with the opening contract period. The multiplier
  is read from the instrument catalog when not given.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.instrument, "i", "", "Instrument symbol (e.g. ES).")
	f.Float64Var(&c.multiplier, "multiplier", 0, "Contract multiplier in $/pt. Defaults to the catalog value.")
	f.StringVar(&c.contract, "contract", "", "Contract symbol of the first period (e.g. ESH25).")
	f.StringVar(&c.day, "d", "", "Entry date (YYYY-MM-DD). Defaults to today.")
	f.Float64Var(&c.price, "price", 0, "Entry price.")
	f.IntVar(&c.quantity, "q", 1, "Number of contracts.")
	f.StringVar(&c.direction, "direction", "LONG", "Position direction, LONG or SHORT.")
	f.StringVar(&c.notes, "notes", "", "Free form notes for the entry.")
}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.instrument == "" || c.contract == "" || c.price <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -i, -contract and -price flags are required.")
		return subcommands.ExitUsageError
	}

	multiplier := c.multiplier
	if multiplier == 0 {
		inst, ok := rollbook.GetInstrument(c.instrument)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: instrument %q is not in the catalog, provide -multiplier.\n", c.instrument)
			return subcommands.ExitUsageError
		}
		multiplier = inst.Multiplier
	}

	dir, err := rollbook.ParseDirection(c.direction)
	if err != nil {
		return fail(err)
	}
	on, err := parseDay(c.day)
	if err != nil {
		return fail(err)
	}

	// Creating must never silently overwrite an existing ledger.
	if _, err := os.Stat(*ledgerFile); err == nil {
		return fail(fmt.Errorf("ledger file %q already exists", *ledgerFile))
	}

	l := rollbook.NewLedger(c.instrument, multiplier)
	entry, err := l.Open(c.contract, on, c.price, c.quantity, dir, c.notes)
	if err != nil {
		return fail(err)
	}
	if err := saveLedger(l); err != nil {
		return fail(err)
	}
	fmt.Printf("Created %s: %s %d %s @ %g on %s\n", *ledgerFile, entry.Direction, entry.Quantity, entry.Contract, entry.EntryPrice, entry.EntryDate)
	return subcommands.ExitSuccess
}
