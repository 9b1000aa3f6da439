package salebook

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/shopspring/decimal"
)

// Sale is one transaction record in the ledger.
//
// A Sale is built once by [NewSale] (or decoded from a data file) and is
// never mutated afterwards: the ledger replaces whole values instead.
type Sale struct {
	TransactionID int         `json:"transactionID"`
	On            Date        `json:"date"`
	ProductID     int         `json:"productID"`
	Name          string      `json:"name"`
	Amount        int         `json:"amount"`
	Price         CurrencyMap `json:"price"`
	Total         CurrencyMap `json:"total"`
	Region        string      `json:"region"`
}

// NewSale builds a validated sale record.
//
// The price map is first normalized to carry a RUB entry (see
// [NormalizePrice]); the rate provider is only consulted when that entry is
// missing. Totals are then derived as amount times unit price for every
// currency present.
func NewSale(ctx context.Context, rates RateProvider, transactionID int, on Date, productID int,
	name string, amount int, price CurrencyMap, region string) (Sale, error) {

	if len(price) == 0 {
		return Sale{}, fmt.Errorf("sale %d: price map needs at least one currency", transactionID)
	}
	price, err := NormalizePrice(ctx, rates, price, on)
	if err != nil {
		return Sale{}, fmt.Errorf("sale %d: %w", transactionID, err)
	}

	qty := decimal.NewFromInt(int64(amount))
	total := make(CurrencyMap, len(price))
	for code, unit := range price {
		total[code] = unit.Mul(qty)
	}

	return Sale{
		TransactionID: transactionID,
		On:            on,
		ProductID:     productID,
		Name:          name,
		Amount:        amount,
		Price:         price,
		Total:         total,
		Region:        region,
	}, nil
}

// Equal reports structural equality: all scalar fields equal, and both
// currency maps equal as unordered key/value sets.
func (s Sale) Equal(o Sale) bool {
	return s.TransactionID == o.TransactionID &&
		s.On == o.On &&
		s.ProductID == o.ProductID &&
		s.Name == o.Name &&
		s.Amount == o.Amount &&
		s.Price.Equal(o.Price) &&
		s.Total.Equal(o.Total) &&
		s.Region == o.Region
}

// Hash returns a hash code consistent with Equal: records that compare equal
// hash identically, whatever the insertion order of their currency maps.
func (s Sale) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%d|%s|%d|%s",
		s.TransactionID, s.On, s.ProductID, s.Name, s.Amount, s.Region)
	return h.Sum64() ^ s.Price.hash() ^ (s.Total.hash() * 31)
}

// IsZero reports whether every field holds its zero value. A zero record in
// a data file signals malformed input.
func (s Sale) IsZero() bool {
	return s.TransactionID == 0 &&
		s.On.IsZero() &&
		s.ProductID == 0 &&
		s.Name == "" &&
		s.Amount == 0 &&
		len(s.Price) == 0 &&
		len(s.Total) == 0 &&
		s.Region == ""
}

// FieldValues returns the display rendering of all 8 fields, in canonical
// order. It is used for tables and for presenting filter matches, never to
// rebuild records.
func (s Sale) FieldValues() [8]string {
	return [8]string{
		strconv.Itoa(s.TransactionID),
		s.On.String(),
		strconv.Itoa(s.ProductID),
		s.Name,
		strconv.Itoa(s.Amount),
		s.Price.String(),
		s.Total.String(),
		s.Region,
	}
}

// FieldNames returns the canonical names of the 8 record fields, in the same
// order as [Sale.FieldValues]. These are the names the filter engine accepts.
func FieldNames() [8]string {
	return [8]string{
		"TransactionID",
		"Date",
		"ProductID",
		"Name",
		"Amount",
		"Price",
		"Total",
		"Region",
	}
}
