package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/okatov/salebook"
	"github.com/okatov/salebook/renderer"
)

type filterCmd struct {
	field string
	value string
}

func (*filterCmd) Name() string     { return "filter" }
func (*filterCmd) Synopsis() string { return "display the sales matching a field criteria" }
func (*filterCmd) Usage() string {
	names := salebook.FieldNames()
	return `slb filter -field <name> -value <criteria>

  Displays every sale whose field equals the criteria. The criteria is
  converted to the field's type: integers, dates (DD.MM.YYYY), text, or
  currency maps ('CODE:value' pairs, comma decimal separator allowed).

  Fields: ` + strings.Join(names[:], ", ") + `

`
}

func (c *filterCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.field, "field", "", "Field to filter on")
	f.StringVar(&c.value, "value", "", "Criteria value")
}

func (c *filterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rows, err := ledger.FilterSales(c.field, c.value)
	if errors.Is(err, salebook.ErrUnknownField) || errors.Is(err, salebook.ErrBadCriteria) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	title := fmt.Sprintf("Sales with %s = %s", c.field, c.value)
	printMarkdown(renderer.SalesTable(title, rows))
	return subcommands.ExitSuccess
}
