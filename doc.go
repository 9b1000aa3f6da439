// Package salebook implements an in-process ledger of sales transactions
// with JSON persistence, field-based filtering, and date-bucketed
// aggregation.
//
// The ledger is loaded from a {"sales": [...]} JSON document, mutated in
// place by Append/Remove/Update, queried through FilterSales and the
// aggregators, and serialized back on demand. Prices and totals are held in
// currency maps (uppercase code to decimal amount); records entered in a
// foreign currency are normalized to carry a RUB entry through a
// [RateProvider] such as the cbr package.
package salebook
