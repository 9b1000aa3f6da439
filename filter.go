package salebook

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldSpec describes one record field for the filter engine: how to convert
// a criteria string into the field's type, how to read the field off a
// record, and how to compare the two.
//
// This is a closed, static dispatch table over the 8 canonical fields; the
// engine never introspects the record type at runtime.
type fieldSpec struct {
	name  string
	parse func(string) (any, error)
	value func(Sale) any
	equal func(criteria, value any) bool
}

func parseInt(s string) (any, error)  { return strconv.Atoi(strings.TrimSpace(s)) }
func parseText(s string) (any, error) { return s, nil }
func parseDate(s string) (any, error) { return ParseDate(s) }
func parseMap(s string) (any, error)  { return ParseCurrencyMap(s) }

func equalScalar(criteria, value any) bool { return criteria == value }
func equalMap(criteria, value any) bool {
	return criteria.(CurrencyMap).Equal(value.(CurrencyMap))
}

var fieldSpecs = [8]fieldSpec{
	{"TransactionID", parseInt, func(s Sale) any { return s.TransactionID }, equalScalar},
	{"Date", parseDate, func(s Sale) any { return s.On }, equalScalar},
	{"ProductID", parseInt, func(s Sale) any { return s.ProductID }, equalScalar},
	{"Name", parseText, func(s Sale) any { return s.Name }, equalScalar},
	{"Amount", parseInt, func(s Sale) any { return s.Amount }, equalScalar},
	{"Price", parseMap, func(s Sale) any { return s.Price }, equalMap},
	{"Total", parseMap, func(s Sale) any { return s.Total }, equalMap},
	{"Region", parseText, func(s Sale) any { return s.Region }, equalScalar},
}

func fieldByName(name string) (fieldSpec, error) {
	for _, f := range fieldSpecs {
		if f.name == name {
			return f, nil
		}
	}
	names := FieldNames()
	return fieldSpec{}, fmt.Errorf("%w: %q, want one of %s", ErrUnknownField, name, strings.Join(names[:], ", "))
}

// ConvertibleCriteria reports whether the criteria string converts to the
// type of the named field. Interactive callers use it to validate input
// before filtering, and re-prompt on [ErrBadCriteria].
func ConvertibleCriteria(field, criteria string) error {
	f, err := fieldByName(field)
	if err != nil {
		return err
	}
	if _, err := f.parse(criteria); err != nil {
		return fmt.Errorf("%w: %v", ErrBadCriteria, err)
	}
	return nil
}

// FilterSales returns the rendered field rows of every record whose named
// field equals the criteria, preserving ledger order.
//
// An unknown field name yields [ErrUnknownField]. A criteria string that
// does not convert to the field's type yields [ErrBadCriteria], so callers
// can tell "bad input, re-prompt" apart from a genuinely empty result: an
// empty row list with a nil error always means no record matched.
//
// Currency-map fields compare as unordered key/value sets; all other fields
// compare by equality of their parsed value.
func (l *Ledger) FilterSales(field, criteria string) ([][8]string, error) {
	f, err := fieldByName(field)
	if err != nil {
		return nil, err
	}
	want, err := f.parse(criteria)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCriteria, err)
	}

	var rows [][8]string
	for _, s := range l.sales {
		if f.equal(want, f.value(s)) {
			rows = append(rows, s.FieldValues())
		}
	}
	return rows, nil
}
