package salebook

import "errors"

// ErrCorruptData is returned when a ledger document fails validation on load.
// Nothing is partially applied: the whole load is rejected.
var ErrCorruptData = errors.New("sales data is missing or corrupt")

// ErrUnknownField is returned when a filter targets a field that is not one
// of the record's canonical field names.
var ErrUnknownField = errors.New("unknown field")

// ErrBadCriteria is returned when a filter criteria string cannot be
// converted to the target field's type. It is recoverable: callers are
// expected to re-prompt.
var ErrBadCriteria = errors.New("criteria does not convert to the field type")

// ErrNotFound is returned when an update targets a transaction ID that is not
// present in the ledger.
var ErrNotFound = errors.New("no such transaction ID")

// ErrRateUnavailable is returned when the exchange-rate provider could not
// supply a rate. No fallback rate is ever substituted.
var ErrRateUnavailable = errors.New("currency rate unavailable")
