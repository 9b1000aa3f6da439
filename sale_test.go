package salebook

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRates is a RateProvider returning a fixed rate (or error) and
// recording how it was called.
type fakeRates struct {
	rate  decimal.Decimal
	err   error
	calls int
	code  string
	on    Date
}

func (f *fakeRates) GetRate(_ context.Context, currencyCode string, on Date) (decimal.Decimal, error) {
	f.calls++
	f.code = currencyCode
	f.on = on
	return f.rate, f.err
}

func TestNewSaleNormalizesToRUB(t *testing.T) {
	rates := &fakeRates{rate: dec("90")}
	on := MustParse("01.06.2024")

	sale, err := NewSale(context.Background(), rates, 100000001, on, 200000001,
		"Widget", 3, CurrencyMap{"USD": dec("2")}, "Moscow")
	require.NoError(t, err)

	assert.Equal(t, 1, rates.calls)
	assert.Equal(t, "USD", rates.code)
	assert.Equal(t, on, rates.on)

	assert.True(t, sale.Price.Equal(CurrencyMap{"USD": dec("2"), "RUB": dec("180")}), "got price %v", sale.Price)
	assert.True(t, sale.Total.Equal(CurrencyMap{"USD": dec("6"), "RUB": dec("540")}), "got total %v", sale.Total)
}

func TestNewSaleKeepsExistingRUB(t *testing.T) {
	rates := &fakeRates{rate: dec("90")}

	sale, err := NewSale(context.Background(), rates, 1, MustParse("01.06.2024"), 2,
		"Widget", 3, CurrencyMap{"RUB": dec("100"), "USD": dec("2")}, "Moscow")
	require.NoError(t, err)

	assert.Equal(t, 0, rates.calls, "an existing RUB entry is never re-derived")
	assert.True(t, sale.Price.Equal(CurrencyMap{"RUB": dec("100"), "USD": dec("2")}))
	assert.True(t, sale.Total.Equal(CurrencyMap{"RUB": dec("300"), "USD": dec("6")}))
}

func TestNewSaleRateUnavailable(t *testing.T) {
	rates := &fakeRates{err: errors.New("boom")}

	_, err := NewSale(context.Background(), rates, 1, MustParse("01.06.2024"), 2,
		"Widget", 3, CurrencyMap{"USD": dec("2")}, "Moscow")
	assert.ErrorIs(t, err, ErrRateUnavailable)

	_, err = NewSale(context.Background(), nil, 1, MustParse("01.06.2024"), 2,
		"Widget", 3, CurrencyMap{"USD": dec("2")}, "Moscow")
	assert.ErrorIs(t, err, ErrRateUnavailable, "a nil provider cannot serve a non-RUB price")
}

func TestNewSaleEmptyPrice(t *testing.T) {
	_, err := NewSale(context.Background(), nil, 1, MustParse("01.06.2024"), 2,
		"Widget", 3, CurrencyMap{}, "Moscow")
	assert.Error(t, err)
}

func TestSaleEqualOrderIndependent(t *testing.T) {
	build := func(codes ...string) CurrencyMap {
		m := make(CurrencyMap, len(codes))
		values := map[string]string{"RUB": "90", "USD": "1.1", "EUR": "0.5"}
		for _, c := range codes {
			m[c] = dec(values[c])
		}
		return m
	}
	a := Sale{TransactionID: 1, On: MustParse("01.01.2020"), ProductID: 2, Name: "Widget",
		Amount: 3, Price: build("RUB", "USD", "EUR"), Total: build("EUR", "USD", "RUB"), Region: "Moscow"}
	b := Sale{TransactionID: 1, On: MustParse("01.01.2020"), ProductID: 2, Name: "Widget",
		Amount: 3, Price: build("EUR", "RUB", "USD"), Total: build("USD", "RUB", "EUR"), Region: "Moscow"}

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash(), "equal records must hash identically")

	c := b
	c.Name = "Gadget"
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())

	d := b
	d.Price = CurrencyMap{"RUB": dec("91"), "USD": dec("1.1"), "EUR": dec("0.5")}
	assert.False(t, a.Equal(d))
	assert.NotEqual(t, a.Hash(), d.Hash())
}

func TestSaleIsZero(t *testing.T) {
	assert.True(t, Sale{}.IsZero())
	assert.False(t, Sale{TransactionID: 1}.IsZero())
	assert.False(t, Sale{On: MustParse("01.01.2020")}.IsZero())
	assert.False(t, Sale{Price: CurrencyMap{"RUB": dec("1")}}.IsZero())
	assert.False(t, Sale{Region: "Moscow"}.IsZero())
}

func TestSaleFieldValues(t *testing.T) {
	sale := Sale{
		TransactionID: 100000001,
		On:            MustParse("02.01.2020"),
		ProductID:     200000001,
		Name:          "Widget",
		Amount:        3,
		Price:         CurrencyMap{"USD": dec("2"), "RUB": dec("180")},
		Total:         CurrencyMap{"USD": dec("6"), "RUB": dec("540")},
		Region:        "Moscow",
	}
	assert.Equal(t, [8]string{
		"100000001",
		"02.01.2020",
		"200000001",
		"Widget",
		"3",
		"RUB:180, USD:2",
		"RUB:540, USD:6",
		"Moscow",
	}, sale.FieldValues())
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, [8]string{
		"TransactionID", "Date", "ProductID", "Name", "Amount", "Price", "Total", "Region",
	}, FieldNames())
}
