package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/okatov/salebook"
	"github.com/okatov/salebook/renderer"
)

// rangeFlags holds the date range common to the report commands.
type rangeFlags struct {
	from string
	to   string
}

func (r *rangeFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&r.from, "from", "", "Start of the date range (DD.MM.YYYY, inclusive)")
	f.StringVar(&r.to, "to", "", "End of the date range (DD.MM.YYYY, inclusive)")
}

func (r *rangeFlags) parse() (salebook.Range, error) {
	from, err := salebook.ParseDate(r.from)
	if err != nil {
		return salebook.Range{}, fmt.Errorf("invalid -from: %w", err)
	}
	to, err := salebook.ParseDate(r.to)
	if err != nil {
		return salebook.Range{}, fmt.Errorf("invalid -to: %w", err)
	}
	return salebook.NewRange(from, to), nil
}

type dailyCmd struct {
	dates rangeFlags
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display per-day RUB totals over a date range" }
func (*dailyCmd) Usage() string {
	return `slb daily -from <date> -to <date>

  Sums the RUB totals of the sales in the range, one row per day, with a bar
  chart of the series.

`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) { c.dates.setFlags(f) }

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.dates.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	totals, err := ledger.DailyTotals(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DailyTotalsReport(totals))
	return subcommands.ExitSuccess
}
