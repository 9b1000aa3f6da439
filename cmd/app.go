// Package cmd implements the CLI application to manage a sales ledger.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/okatov/salebook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&rmCmd{}, "ledger")
	c.Register(&updateCmd{}, "ledger")
	c.Register(&listCmd{}, "ledger")

	c.Register(&filterCmd{}, "reports")
	c.Register(&dailyCmd{}, "reports")
	c.Register(&soldsCmd{}, "reports")
	c.Register(&regionsCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "sales.json", "Path to the sales ledger file (JSON format)")

// openLedger loads the app ledger file; a missing file opens as an empty ledger.
func openLedger() (*salebook.Ledger, error) {
	return salebook.LoadLedger(*ledgerFile)
}

// closeLedger persists the ledger back into the app ledger file.
func closeLedger(l *salebook.Ledger) error {
	return salebook.SaveLedger(*ledgerFile, l)
}

// printMarkdown renders a markdown document for the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
