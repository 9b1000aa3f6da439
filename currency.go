package salebook

import (
	"fmt"
	"hash/fnv"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyMap maps an uppercase currency code (e.g. "RUB", "USD") to a
// decimal amount: a unit price or an extended total depending on context.
type CurrencyMap map[string]decimal.Decimal

// Equal compares two currency maps as unordered key/value sets.
func (m CurrencyMap) Equal(n CurrencyMap) bool {
	if len(m) != len(n) {
		return false
	}
	for code, v := range m {
		w, ok := n[code]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of the map. Decimal values are immutable so a
// shallow copy is enough.
func (m CurrencyMap) Clone() CurrencyMap {
	return CurrencyMap(maps.Clone(map[string]decimal.Decimal(m)))
}

// String renders the map as "CODE:value, CODE:value" with codes in ascending
// order, so the rendering is deterministic.
func (m CurrencyMap) String() string {
	parts := make([]string, 0, len(m))
	for _, code := range slices.Sorted(maps.Keys(m)) {
		parts = append(parts, code+":"+m[code].String())
	}
	return strings.Join(parts, ", ")
}

// hash folds the map entries into a single value, independently of iteration
// order, so that equal maps hash identically.
func (m CurrencyMap) hash() uint64 {
	var sum uint64
	for code, v := range m {
		h := fnv.New64a()
		h.Write([]byte(code))
		h.Write([]byte{'='})
		h.Write([]byte(v.String()))
		sum += h.Sum64()
	}
	return sum
}

// ParseCurrencyMap parses a comma-separated list of "code:value" pairs, for
// example "RUB: 110, USD: 1,1". Codes are upper-cased and the decimal
// separator may be a comma. Any malformed pair fails the whole parse.
func ParseCurrencyMap(s string) (CurrencyMap, error) {
	// Split on commas, then glue back fragments without a colon: in
	// "USD:1,1" the trailing "1" is a decimal fraction, not a new pair.
	var pairs []string
	for frag := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(frag) == "" {
			continue
		}
		if strings.Contains(frag, ":") {
			pairs = append(pairs, frag)
			continue
		}
		if len(pairs) == 0 {
			return nil, fmt.Errorf("malformed currency pair %q", frag)
		}
		pairs[len(pairs)-1] += "." + strings.TrimSpace(frag)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no currency pairs in %q", s)
	}

	m := make(CurrencyMap, len(pairs))
	for _, pair := range pairs {
		code, value, _ := strings.Cut(pair, ":")
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			return nil, fmt.Errorf("missing currency code in pair %q", pair)
		}
		value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
		v, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("invalid amount in pair %q: %w", pair, err)
		}
		m[code] = v
	}
	return m, nil
}
