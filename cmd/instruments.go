package cmd

import (
	"context"
	"flag"

	"github.com/etnz/rollbook/renderer"
	"github.com/google/subcommands"
)

type instrumentsCmd struct{}

func (*instrumentsCmd) Name() string     { return "instruments" }
func (*instrumentsCmd) Synopsis() string { return "list the instrument catalog" }
func (*instrumentsCmd) Usage() string {
	return `rollbook instruments

  Lists the built-in futures instrument catalog with multipliers, Yahoo
  tickers and exchanges.
`
}

func (*instrumentsCmd) SetFlags(f *flag.FlagSet) {}

func (c *instrumentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RenderInstruments(renderer.NewInstruments()))
	return subcommands.ExitSuccess
}
