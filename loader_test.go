package salebook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLedgerMissingFile(t *testing.T) {
	l, err := LoadLedger(filepath.Join(t.TempDir(), "sales.json"))
	require.NoError(t, err, "a missing ledger file loads as an empty ledger")
	assert.Equal(t, 0, l.Len())
}

func TestSaveAndLoadLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.json")

	l := NewLedger()
	l.Append(sampleSale(t, 1, "01.01.2020", 10, 2, "100", "Moscow"))
	require.NoError(t, SaveLedger(path, l))

	back, err := LoadLedger(path)
	require.NoError(t, err)
	require.Equal(t, 1, back.Len())
	assert.True(t, back.Sales()[0].Equal(l.Sales()[0]))
}

func TestLoadLedgerCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sales":[{}]}`), 0o644))

	_, err := LoadLedger(path)
	assert.ErrorIs(t, err, ErrCorruptData)
}
