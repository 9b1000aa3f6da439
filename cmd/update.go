package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateCmd struct {
	target int
	sale   saleFlags
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "replace the first sale with a transaction ID" }
func (*updateCmd) Usage() string {
	return `slb update -target <id> -id <id> -d <date> -p <product> -n <name> -a <amount> -price <pairs> -r <region>

  Replaces the first sale whose transaction ID equals -target with the new
  record, in place. A second matching record, if duplicates exist, is left
  untouched.

`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.target, "target", 0, "Transaction ID of the sale to replace")
	c.sale.setFlags(f)
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sale, err := c.sale.sale(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.Update(c.target, sale); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := closeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated sale %d in %s\n", c.target, *ledgerFile)
	return subcommands.ExitSuccess
}
