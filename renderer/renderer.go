// Package renderer turns ledger views into markdown reports.
package renderer

import (
	"bytes"

	"github.com/Rhymond/go-money"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/okatov/salebook"
)

// columns are the table headers for full record rows, in canonical field order.
var columns = []string{
	"Transaction ID",
	"Date",
	"Product ID",
	"Name",
	"Amount",
	"Price",
	"Total",
	"Region",
}

// SalesTable renders record rows as a markdown table under the given title.
func SalesTable(title string, rows [][8]string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if len(rows) == 0 {
		doc.PlainText("No sales to display.")
		doc.Build()
		return buf.String()
	}

	table := md.TableSet{Header: columns}
	for _, row := range rows {
		table.Rows = append(table.Rows, row[:])
	}
	doc.Table(table)
	doc.Build()
	return buf.String()
}

// RegionAverages renders one row per region with the average RUB total of
// its sales. Groups are never empty, so the count always divides the sum.
func RegionAverages(groups [][]salebook.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Sales by Region")
	if len(groups) == 0 {
		doc.PlainText("No sales to display.")
		doc.Build()
		return buf.String()
	}

	table := md.TableSet{Header: []string{"Region", "Average"}}
	for _, group := range groups {
		var sum decimal.Decimal
		for _, s := range group {
			sum = sum.Add(s.Total["RUB"])
		}
		avg := sum.Div(decimal.NewFromInt(int64(len(group))))
		table.Rows = append(table.Rows, []string{group[0].Region, formatRUB(avg)})
	}
	doc.Table(table)
	doc.Build()
	return buf.String()
}

// DailyTotalsReport renders per-day RUB totals as a table followed by a bar
// chart of the same series.
func DailyTotalsReport(entries []salebook.DailyTotal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Daily Totals")
	if len(entries) == 0 {
		doc.PlainText("No sales in the selected period.")
		doc.Build()
		return buf.String()
	}

	table := md.TableSet{Header: []string{"Date", "Total"}}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{e.Label(), formatRUB(e.Total)})
	}
	doc.Table(table)

	doc.H2("Chart")
	doc.CodeBlocks("", barChart(entries))
	doc.Build()
	return buf.String()
}

// SoldsTable renders per-product sold quantities.
func SoldsTable(entries []salebook.ProductSold) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Units Sold by Product")
	if len(entries) == 0 {
		doc.PlainText("No sales in the selected period.")
		doc.Build()
		return buf.String()
	}

	table := md.TableSet{Header: []string{"Product ID", "Sold"}}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			decimal.NewFromInt(int64(e.ProductID)).String(),
			decimal.NewFromInt(int64(e.Sold)).String(),
		})
	}
	doc.Table(table)
	doc.Build()
	return buf.String()
}

// formatRUB formats a decimal RUB amount with the currency's own formatter.
func formatRUB(d decimal.Decimal) string {
	cur := *money.New(0, money.RUB).Currency()
	return cur.Formatter().Format(d.Shift(int32(cur.Fraction)).Round(0).IntPart())
}
