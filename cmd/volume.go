package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/rollbook"
	"github.com/etnz/rollbook/date"
	"github.com/etnz/rollbook/renderer"
	"github.com/google/subcommands"
)

type volumeCmd struct {
	frontMonth int
	frontYear  int
	backMonth  int
	backYear   int
}

func (*volumeCmd) Name() string     { return "volume" }
func (*volumeCmd) Synopsis() string { return "compare front and back month volume before a roll" }
func (*volumeCmd) Usage() string {
	return `rollbook volume -front <month 1-12> -back <month 1-12> [-front-year <year>] [-back-year <year>] <symbol>

  Fetches a month of traded volume for two contract months of a catalog
  instrument and prints the back/front ratio per common trading day. A
  ratio above 1 is the usual signal that it is time to roll. Years
  default to the next occurrence of each month.
`
}

func (c *volumeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.frontMonth, "front", 0, "Front contract month (1-12).")
	f.IntVar(&c.frontYear, "front-year", 0, "Front contract year. Defaults to the next occurrence of the month.")
	f.IntVar(&c.backMonth, "back", 0, "Back contract month (1-12).")
	f.IntVar(&c.backYear, "back-year", 0, "Back contract year. Defaults to the next occurrence of the month.")
}

func (c *volumeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.frontMonth == 0 || c.backMonth == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected -front and -back months and a single <symbol> argument.")
		return subcommands.ExitUsageError
	}

	rv, err := rollbook.FetchRollVolume(f.Arg(0),
		time.Month(c.frontMonth), contractYear(time.Month(c.frontMonth), c.frontYear),
		time.Month(c.backMonth), contractYear(time.Month(c.backMonth), c.backYear))
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderVolume(renderer.NewVolume(rv)))
	return subcommands.ExitSuccess
}

// contractYear resolves a zero year to the next occurrence of the month.
func contractYear(m time.Month, year int) int {
	if year != 0 {
		return year
	}
	today := date.Today()
	if m < today.Month() {
		return today.Year() + 1
	}
	return today.Year()
}
