// Package cmd implements the CLI application to manage a roll ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rollbook"
	"github.com/etnz/rollbook/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newCmd{}, "ledger")
	c.Register(&rollCmd{}, "ledger")
	c.Register(&closeCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&statusCmd{}, "reports")
	c.Register(&seriesCmd{}, "reports")

	c.Register(&instrumentsCmd{}, "market data")
	c.Register(&contractCmd{}, "market data")
	c.Register(&fetchCmd{}, "market data")
	c.Register(&volumeCmd{}, "market data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.csv", "Path to the ledger file (CSV format)")

// loadLedger reads the app ledger file.
func loadLedger() (*rollbook.Ledger, error) {
	return rollbook.LoadLedger(*ledgerFile)
}

// saveLedger persists the app ledger file, overwriting it.
func saveLedger(l *rollbook.Ledger) error {
	return rollbook.SaveLedger(*ledgerFile, l)
}

// parseDay parses a -d flag value, an empty value meaning today.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the terminal renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
