package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove all sales with a transaction ID" }
func (*rmCmd) Usage() string {
	return `slb rm -id <id>

  Removes every sale with the given transaction ID. Removing an absent ID is
  not an error.

`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Transaction ID to remove")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	removed := ledger.Remove(c.id)
	if err := closeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed %d sale(s) with transaction ID %d\n", removed, c.id)
	return subcommands.ExitSuccess
}
