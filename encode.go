package salebook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices and totals are persisted as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// ledgerDoc is the persisted shape: a single object with a "sales" array.
type ledgerDoc struct {
	Sales []Sale `json:"sales"`
}

// DecodeLedger decodes a ledger from a JSON document and validates every
// record. Any violation rejects the whole document with [ErrCorruptData]:
// no partial ledger is ever returned.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var doc ledgerDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	for _, s := range doc.Sales {
		if err := checkRecord(s); err != nil {
			return nil, err
		}
	}
	l := NewLedger()
	l.Append(doc.Sales...)
	return l, nil
}

// checkRecord applies the load-time corruption checks to one record.
//
// The last rule rejects any rendered field value containing '-'. It flags
// negative numbers and malformed text as corruption, and knowingly also
// rejects legitimate hyphenated names or regions.
func checkRecord(s Sale) error {
	if s.IsZero() {
		return fmt.Errorf("%w: empty record", ErrCorruptData)
	}
	for i, value := range s.FieldValues() {
		name := FieldNames()[i]
		if value == "" {
			return fmt.Errorf("%w: sale %d has empty %s", ErrCorruptData, s.TransactionID, name)
		}
		if strings.Contains(value, "-") {
			return fmt.Errorf("%w: sale %d has forbidden character in %s", ErrCorruptData, s.TransactionID, name)
		}
	}
	return nil
}

// EncodeLedger writes the ledger as a pretty-printed {"sales": [...]} JSON
// document. Non-ASCII text is passed through unescaped. Byte-for-byte
// reproducibility is not guaranteed, the schema and field names are.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ledgerDoc{Sales: l.sales}); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	return nil
}
