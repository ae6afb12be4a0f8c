package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the ledger file into its canonical form" }
func (*fmtCmd) Usage() string {
	return `rollbook fmt

  Reads the ledger file and writes it back in the canonical layout,
  normalizing a hand-edited file (missing optional columns, permissive
  dates) without changing its meaning.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	if err := saveLedger(l); err != nil {
		return fail(err)
	}
	fmt.Printf("Ledger file %q has been formatted.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
