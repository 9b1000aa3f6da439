package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/okatov/salebook/renderer"
)

type regionsCmd struct{}

func (*regionsCmd) Name() string     { return "regions" }
func (*regionsCmd) Synopsis() string { return "display the average RUB total per region" }
func (*regionsCmd) Usage() string {
	return `slb regions

  Groups the ledger by region and displays each region's average RUB total.

`
}

func (*regionsCmd) SetFlags(*flag.FlagSet) {}

func (*regionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RegionAverages(ledger.GroupByRegion()))
	return subcommands.ExitSuccess
}
