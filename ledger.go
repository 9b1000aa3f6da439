package salebook

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger owns the ordered sequence of sale records.
//
// Records keep their insertion order, which is not necessarily transaction ID
// order. All lookups are linear scans: the ledger holds no secondary index.
// A Ledger is meant for a single logical owner; it is not safe for
// concurrent mutation.
type Ledger struct {
	sales []Sale
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{sales: make([]Sale, 0)}
}

// Append adds records to the end of the ledger. Duplicate transaction IDs
// are permitted: uniqueness is only a concern of Remove and Update.
func (l *Ledger) Append(sales ...Sale) {
	l.sales = append(l.sales, sales...)
}

// Remove deletes every record whose transaction ID matches and returns how
// many were removed. Removing an absent ID is a no-op, not an error.
func (l *Ledger) Remove(transactionID int) int {
	before := len(l.sales)
	l.sales = slices.DeleteFunc(l.sales, func(s Sale) bool {
		return s.TransactionID == transactionID
	})
	return before - len(l.sales)
}

// Update replaces the first record with the given transaction ID, preserving
// its position. Later duplicates are left untouched. Returns [ErrNotFound]
// if no record matches.
func (l *Ledger) Update(transactionID int, sale Sale) error {
	i := slices.IndexFunc(l.sales, func(s Sale) bool {
		return s.TransactionID == transactionID
	})
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, transactionID)
	}
	l.sales[i] = sale
	return nil
}

// Sales returns the records in ledger order. The slice is a copy: callers
// get a read-only view and cannot reorder the ledger through it.
func (l *Ledger) Sales() []Sale {
	return slices.Clone(l.sales)
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.sales) }

// GroupByRegion partitions the ledger by region. Groups appear in order of
// first appearance and each group keeps ledger order. A group is never
// empty, since groups are built from existing records.
func (l *Ledger) GroupByRegion() [][]Sale {
	var groups [][]Sale
	index := make(map[string]int)
	for _, s := range l.sales {
		i, ok := index[s.Region]
		if !ok {
			i = len(groups)
			index[s.Region] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], s)
	}
	return groups
}

// DailyTotal is the RUB turnover of a single day.
type DailyTotal struct {
	On    Date
	Total decimal.Decimal
}

// Label returns the day in display form.
func (t DailyTotal) Label() string { return t.On.String() }

// DailyTotals sums the RUB totals of every record dated within r, one entry
// per day, ordered by date ascending. Every record in range must carry a RUB
// total: a missing entry is an error, not a silent zero.
func (l *Ledger) DailyTotals(r Range) ([]DailyTotal, error) {
	var totals []DailyTotal
	index := make(map[Date]int)
	for _, s := range l.inRangeByDate(r) {
		rub, ok := s.Total["RUB"]
		if !ok {
			return nil, fmt.Errorf("sale %d on %s has no RUB total", s.TransactionID, s.On)
		}
		i, seen := index[s.On]
		if !seen {
			i = len(totals)
			index[s.On] = i
			totals = append(totals, DailyTotal{On: s.On})
		}
		totals[i].Total = totals[i].Total.Add(rub)
	}
	return totals, nil
}

// ProductSold is the number of units of one product sold over a range.
type ProductSold struct {
	ProductID int
	Sold      int
}

// DailySolds sums the sold amounts per product for records dated within r.
// Records are date-sorted before grouping, so products appear in order of
// their earliest sale in the range.
func (l *Ledger) DailySolds(r Range) []ProductSold {
	var solds []ProductSold
	index := make(map[int]int)
	for _, s := range l.inRangeByDate(r) {
		i, seen := index[s.ProductID]
		if !seen {
			i = len(solds)
			index[s.ProductID] = i
			solds = append(solds, ProductSold{ProductID: s.ProductID})
		}
		solds[i].Sold += s.Amount
	}
	return solds
}

// inRangeByDate returns the records dated within r, stably sorted by date.
func (l *Ledger) inRangeByDate(r Range) []Sale {
	var in []Sale
	for _, s := range l.sales {
		if r.Contains(s.On) {
			in = append(in, s)
		}
	}
	slices.SortStableFunc(in, func(a, b Sale) int {
		switch {
		case a.On.Before(b.On):
			return -1
		case a.On.After(b.On):
			return 1
		default:
			return 0
		}
	})
	return in
}
