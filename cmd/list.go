package cmd

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"

	"github.com/okatov/salebook"
	"github.com/okatov/salebook/renderer"
)

type listCmd struct {
	sort string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the ledger as a table" }
func (*listCmd) Usage() string {
	return `slb list [-sort asc|desc]

  Displays all sales in ledger order, or sorted by transaction ID.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "", "Sort by transaction ID: 'asc' or 'desc' (default: ledger order)")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	sales := ledger.Sales()
	switch c.sort {
	case "":
	case "asc":
		slices.SortStableFunc(sales, func(a, b salebook.Sale) int {
			return cmp.Compare(a.TransactionID, b.TransactionID)
		})
	case "desc":
		slices.SortStableFunc(sales, func(a, b salebook.Sale) int {
			return cmp.Compare(b.TransactionID, a.TransactionID)
		})
	default:
		fmt.Fprintf(os.Stderr, "Error: -sort must be 'asc' or 'desc'\n")
		return subcommands.ExitUsageError
	}

	rows := make([][8]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, s.FieldValues())
	}
	printMarkdown(renderer.SalesTable("Sales Transactions", rows))
	return subcommands.ExitSuccess
}
