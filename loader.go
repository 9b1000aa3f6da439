package salebook

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
)

// LoadLedger reads and decodes the ledger file at path. A missing file is
// not an error: it loads as an empty ledger, so a fresh working directory
// just works.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger file %q does not exist, starting with an empty ledger", path)
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("ledger file %q: %w", path, err)
	}
	return l, nil
}

// SaveLedger encodes the ledger into the file at path, replacing its
// previous content.
func SaveLedger(path string, l *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", path, err)
	}
	if err := EncodeLedger(f, l); err != nil {
		f.Close()
		return fmt.Errorf("ledger file %q: %w", path, err)
	}
	return f.Close()
}
