package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/etnz/rollbook"
	"github.com/etnz/rollbook/date"
	"github.com/etnz/rollbook/renderer"
	"github.com/google/subcommands"
)

type statusCmd struct {
	price float64
	fetch bool
	json  bool
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the position, breakeven and true P&L" }
func (*statusCmd) Usage() string {
	return `rollbook status [-price <current_price> | -fetch] [-json]

  Reports the active position with its roll-adjusted breakeven and the
  closed periods behind it. With a current price (given or fetched) it
  also reports unrealized and true P&L.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.price, "price", 0, "Current price of the active contract.")
	f.BoolVar(&c.fetch, "fetch", false, "Fetch the current price from Yahoo Finance.")
	f.BoolVar(&c.json, "json", false, "Emit the report as json instead of markdown.")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	price := c.price
	if c.fetch && price == 0 {
		price, err = rollbook.FetchInstrumentClose(l.Instrument(), date.Today())
		if errors.Is(err, rollbook.ErrUnavailable) {
			log.Printf("warning, no price available for %s, reporting without P&L", l.Instrument())
			price, err = 0, nil
		}
		if err != nil {
			return fail(err)
		}
	}

	report := renderer.NewStatus(l, price)
	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderStatus(report))
	return subcommands.ExitSuccess
}
