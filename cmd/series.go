package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/etnz/rollbook/renderer"
	"github.com/google/subcommands"
)

type seriesCmd struct {
	json bool
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "show the cumulative P&L series" }
func (*seriesCmd) Usage() string {
	return `rollbook series [-json]

  Lists the entry and exit events of the ledger with the cumulative
  realized P&L after each, the continuous performance line behind the
  saw-toothed contract prices.
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Emit the report as json instead of markdown.")
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	report := renderer.NewSeries(l)
	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderSeries(report))
	return subcommands.ExitSuccess
}
