package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rollbook"
	"github.com/etnz/rollbook/date"
	"github.com/google/subcommands"
)

type rollCmd struct {
	exitPrice  float64
	exitDay    string
	contract   string
	entryPrice float64
	entryDay   string
	quantity   int
	notes      string
}

func (*rollCmd) Name() string     { return "roll" }
func (*rollCmd) Synopsis() string { return "roll the position into the next contract" }
func (*rollCmd) Usage() string {
	return `rollbook roll -exit-price <price> -contract <symbol> -entry-price <price> [-exit-d <date>] [-entry-d <date>] [-q <quantity>] [-notes <text>]

  Closes the active contract period at the exit price and opens the next
  contract in one step. The new entry date defaults to the exit date and
  the quantity carries over unless given.
`
}

func (c *rollCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.exitPrice, "exit-price", 0, "Exit price of the expiring contract.")
	f.StringVar(&c.exitDay, "exit-d", "", "Exit date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.contract, "contract", "", "Contract symbol of the next period (e.g. ESM25).")
	f.Float64Var(&c.entryPrice, "entry-price", 0, "Entry price of the next contract.")
	f.StringVar(&c.entryDay, "entry-d", "", "Entry date of the next contract. Defaults to the exit date.")
	f.IntVar(&c.quantity, "q", 0, "Number of contracts for the next period. Defaults to the active quantity.")
	f.StringVar(&c.notes, "notes", "", "Free form notes for the new entry.")
}

func (c *rollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.exitPrice <= 0 || c.contract == "" || c.entryPrice <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -exit-price, -contract and -entry-price flags are required.")
		return subcommands.ExitUsageError
	}

	exitDate, err := parseDay(c.exitDay)
	if err != nil {
		return fail(err)
	}
	var entryDate date.Date
	if c.entryDay != "" {
		entryDate, err = date.Parse(c.entryDay)
		if err != nil {
			return fail(err)
		}
	}

	l, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	closed, _ := l.Active()
	entry, err := l.Roll(c.exitPrice, exitDate, c.contract, c.entryPrice, entryDate, c.quantity, c.notes)
	if err != nil {
		return fail(err)
	}
	if err := saveLedger(l); err != nil {
		return fail(err)
	}

	realized, _ := closedRealized(l, closed.Number)
	fmt.Printf("Rolled %s -> %s, realized %s, total banked %s\n",
		closed.Contract, entry.Contract,
		rollbook.USD(realized).SignedString(),
		rollbook.USD(l.TotalRealized()).SignedString())
	return subcommands.ExitSuccess
}

// closedRealized returns the realized P&L of the closed period with the
// given sequence number.
func closedRealized(l *rollbook.Ledger, number int) (float64, bool) {
	for e := range l.Closed() {
		if e.Number == number {
			return e.Realized(l.Multiplier())
		}
	}
	return 0, false
}
