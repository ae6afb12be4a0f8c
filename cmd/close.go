package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rollbook"
	"github.com/google/subcommands"
)

type closeCmd struct {
	price float64
	day   string
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "close the position without rolling" }
func (*closeCmd) Usage() string {
	return `rollbook close -price <exit_price> [-d <date>]

  Terminates the position: closes the active contract period without
  opening a successor.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.price, "price", 0, "Exit price of the active contract.")
	f.StringVar(&c.day, "d", "", "Exit date (YYYY-MM-DD). Defaults to today.")
}

func (c *closeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.price <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -price flag is required.")
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.day)
	if err != nil {
		return fail(err)
	}

	l, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	if err := l.Close(c.price, on); err != nil {
		return fail(err)
	}
	if err := saveLedger(l); err != nil {
		return fail(err)
	}
	fmt.Printf("Position closed, total realized P&L %s\n", rollbook.USD(l.TotalRealized()).SignedString())
	return subcommands.ExitSuccess
}
