package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/okatov/salebook/renderer"
)

type soldsCmd struct {
	dates rangeFlags
}

func (*soldsCmd) Name() string     { return "solds" }
func (*soldsCmd) Synopsis() string { return "display units sold per product over a date range" }
func (*soldsCmd) Usage() string {
	return `slb solds -from <date> -to <date>

  Sums the sold amounts of the sales in the range, one row per product, in
  order of each product's earliest sale.

`
}

func (c *soldsCmd) SetFlags(f *flag.FlagSet) { c.dates.setFlags(f) }

func (c *soldsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.SoldsTable(ledger.DailySolds(r)))
	return subcommands.ExitSuccess
}
