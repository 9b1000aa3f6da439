package salebook

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRoundTrip(t *testing.T) {
	a, err := NewSale(context.Background(), nil, 100000001, MustParse("01.06.2024"), 200000001,
		"Самовар", 3, CurrencyMap{"RUB": dec("100"), "USD": dec("1.1")}, "Москва")
	require.NoError(t, err)
	b := sampleSale(t, 100000002, "02.06.2024", 200000002, 7, "50", "Kazan")

	l := NewLedger()
	l.Append(a, b)

	var buf bytes.Buffer
	require.NoError(t, EncodeLedger(&buf, l))

	back, err := DecodeLedger(&buf)
	require.NoError(t, err)
	require.Equal(t, l.Len(), back.Len())
	for i, s := range l.Sales() {
		assert.True(t, s.Equal(back.Sales()[i]), "record %d must survive the round trip", i)
	}
}

func TestEncodeShape(t *testing.T) {
	l := NewLedger()
	l.Append(sampleSale(t, 1, "01.01.2020", 10, 2, "100", "Юг"))

	var buf bytes.Buffer
	require.NoError(t, EncodeLedger(&buf, l))
	out := buf.String()

	assert.Contains(t, out, `"sales"`)
	assert.Contains(t, out, `"date": "01.01.2020"`)
	assert.Contains(t, out, `"RUB": 100`, "prices are plain JSON numbers")
	assert.Contains(t, out, "Юг", "non-ASCII text is passed through unescaped")
}

func TestDecodeRejectsCorruption(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"sales": `},
		{"zero record", `{"sales":[{}]}`},
		{"empty name", `{"sales":[{"transactionID":0,"date":"01.01.2020","productID":0,
			"name":"","amount":0,"price":{},"total":{},"region":""}]}`},
		{"minus in region", `{"sales":[{"transactionID":1,"date":"01.01.2020","productID":2,
			"name":"Widget","amount":3,"price":{"RUB":100},"total":{"RUB":300},"region":"North-West"}]}`},
		{"negative amount", `{"sales":[{"transactionID":1,"date":"01.01.2020","productID":2,
			"name":"Widget","amount":-3,"price":{"RUB":100},"total":{"RUB":300},"region":"Moscow"}]}`},
		{"negative price", `{"sales":[{"transactionID":1,"date":"01.01.2020","productID":2,
			"name":"Widget","amount":3,"price":{"RUB":-100},"total":{"RUB":300},"region":"Moscow"}]}`},
		{"bad date format", `{"sales":[{"transactionID":1,"date":"2020-01-01","productID":2,
			"name":"Widget","amount":3,"price":{"RUB":100},"total":{"RUB":300},"region":"Moscow"}]}`},
	}

	for _, tc := range tests {
		_, err := DecodeLedger(strings.NewReader(tc.doc))
		assert.ErrorIs(t, err, ErrCorruptData, tc.name)
	}
}

func TestDecodeRejectsWholeDocument(t *testing.T) {
	// One bad record rejects the whole load: no partial ledger.
	doc := `{"sales":[
		{"transactionID":1,"date":"01.01.2020","productID":2,
		 "name":"Widget","amount":3,"price":{"RUB":100},"total":{"RUB":300},"region":"Moscow"},
		{}
	]}`
	l, err := DecodeLedger(strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrCorruptData)
	assert.Nil(t, l)
}

func TestDecodeValidLedger(t *testing.T) {
	doc := `{"sales":[{"transactionID":1,"date":"01.01.2020","productID":2,
		"name":"Widget","amount":3,"price":{"RUB":100},"total":{"RUB":300},"region":"Moscow"}]}`
	l, err := DecodeLedger(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 1, l.Len())

	s := l.Sales()[0]
	assert.Equal(t, 1, s.TransactionID)
	assert.Equal(t, MustParse("01.01.2020"), s.On)
	assert.True(t, s.Price.Equal(CurrencyMap{"RUB": dec("100")}))
	assert.True(t, s.Total.Equal(CurrencyMap{"RUB": dec("300")}))
}
