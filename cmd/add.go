package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/okatov/salebook"
	"github.com/okatov/salebook/cbr"
)

// saleFlags holds the record fields common to the 'add' and 'update' commands.
type saleFlags struct {
	id        int
	date      string
	productID int
	name      string
	amount    int
	price     string
	region    string
}

func (s *saleFlags) setFlags(f *flag.FlagSet) {
	f.IntVar(&s.id, "id", 0, "Transaction ID")
	f.StringVar(&s.date, "d", "", "Date of the sale (DD.MM.YYYY)")
	f.IntVar(&s.productID, "p", 0, "Product ID")
	f.StringVar(&s.name, "n", "", "Product name")
	f.IntVar(&s.amount, "a", 0, "Amount of units sold")
	f.StringVar(&s.price, "price", "", "Unit prices as 'CODE:value' pairs, e.g. 'USD:2' or 'RUB:100, USD:1,1'")
	f.StringVar(&s.region, "r", "", "Region of the sale")
}

// sale builds the record from the flags, normalizing prices through the Bank
// of Russia rate provider when no RUB price was given.
func (s *saleFlags) sale(ctx context.Context) (salebook.Sale, error) {
	on, err := salebook.ParseDate(s.date)
	if err != nil {
		return salebook.Sale{}, err
	}
	price, err := salebook.ParseCurrencyMap(s.price)
	if err != nil {
		return salebook.Sale{}, fmt.Errorf("invalid -price: %w", err)
	}
	return salebook.NewSale(ctx, cbr.New(), s.id, on, s.productID, s.name, s.amount, price, s.region)
}

type addCmd struct {
	sale saleFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a sale record to the ledger" }
func (*addCmd) Usage() string {
	return `slb add -id <id> -d <date> -p <product> -n <name> -a <amount> -price <pairs> -r <region>

  Appends a sale to the ledger. If the price has no RUB entry, the RUB price
  is derived from the Bank of Russia daily rate for the sale date.

Usage Example:
$ slb add -id 100000001 -d 01.06.2024 -p 200000001 -n Widget -a 3 -price "USD:2" -r Moscow

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.sale.setFlags(f) }

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	ledger.Append(sale)
	if err := closeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Appended sale %d to %s\n", sale.TransactionID, *ledgerFile)
	return subcommands.ExitSuccess
}
