package salebook

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// RateProvider supplies a currency's exchange rate to RUB for a given date.
// It is the only capability the ledger needs from the outside world; see the
// cbr package for the Bank of Russia backed implementation.
type RateProvider interface {
	GetRate(ctx context.Context, currencyCode string, on Date) (decimal.Decimal, error)
}

// NormalizePrice returns a price map that carries a RUB entry.
//
// If the map already holds a RUB key it is returned as is (never re-derived).
// Otherwise the rate for the first non-RUB entry found is looked up and
// "RUB" is set to rate times that entry's unit price. Which non-RUB currency
// is picked is deliberately unspecified: any of them prices the sale.
//
// A failed lookup fails the whole normalization with [ErrRateUnavailable];
// no fallback rate is substituted.
func NormalizePrice(ctx context.Context, rates RateProvider, price CurrencyMap, on Date) (CurrencyMap, error) {
	if _, ok := price["RUB"]; ok {
		return price.Clone(), nil
	}

	var code string
	var unit decimal.Decimal
	for c, u := range price {
		if c != "RUB" {
			code, unit = c, u
			break
		}
	}
	if code == "" {
		return price.Clone(), nil
	}

	if rates == nil {
		return nil, fmt.Errorf("%w: no rate provider for %s", ErrRateUnavailable, code)
	}
	rate, err := rates.GetRate(ctx, code, on)
	if err != nil {
		return nil, fmt.Errorf("%w: %s on %s: %v", ErrRateUnavailable, code, on, err)
	}

	normalized := price.Clone()
	normalized["RUB"] = rate.Mul(unit)
	return normalized, nil
}
