package cbr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/okatov/salebook"
)

// feed is a trimmed XML_daily.asp document. The real feed is windows-1251
// encoded; the test server re-encodes it the same way.
const feed = `<?xml version="1.0" encoding="windows-1251"?>
<ValCurs Date="01.06.2024" name="Foreign Currency Market">
<Valute ID="R01235">
<NumCode>840</NumCode>
<CharCode>USD</CharCode>
<Nominal>1</Nominal>
<Name>Доллар США</Name>
<Value>90,1915</Value>
</Valute>
<Valute ID="R01820">
<NumCode>392</NumCode>
<CharCode>JPY</CharCode>
<Nominal>100</Nominal>
<Name>Японских иен</Name>
<Value>57,3588</Value>
</Valute>
</ValCurs>`

func testServer(t *testing.T) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "01/06/2024", r.URL.Query().Get("date_req"))

		encoded, err := charmap.Windows1251.NewEncoder().String(feed)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/xml; charset=windows-1251")
		w.Write([]byte(encoded))
	}))
	t.Cleanup(srv.Close)

	client := NewWithClient(srv.Client())
	client.base = srv.URL
	return client, srv
}

func TestGetRate(t *testing.T) {
	client, _ := testServer(t)
	on := salebook.MustParse("01.06.2024")

	rate, err := client.GetRate(context.Background(), "USD", on)
	require.NoError(t, err)
	assert.Equal(t, "90.1915", rate.String(), "comma decimal separator is normalized")

	// Matching is case-insensitive, as currency codes come from user input.
	rate, err = client.GetRate(context.Background(), "usd", on)
	require.NoError(t, err)
	assert.Equal(t, "90.1915", rate.String())
}

func TestGetRateScalesNominal(t *testing.T) {
	client, _ := testServer(t)

	rate, err := client.GetRate(context.Background(), "JPY", salebook.MustParse("01.06.2024"))
	require.NoError(t, err)
	assert.Equal(t, "0.573588", rate.String(), "quotation per 100 units is scaled to a unit rate")
}

func TestGetRateNotFound(t *testing.T) {
	client, _ := testServer(t)

	_, err := client.GetRate(context.Background(), "EUR", salebook.MustParse("01.06.2024"))
	assert.ErrorIs(t, err, ErrRateNotFound)
}

func TestGetRateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewWithClient(srv.Client())
	client.base = srv.URL

	_, err := client.GetRate(context.Background(), "USD", salebook.MustParse("01.06.2024"))
	assert.Error(t, err)
}

func TestGetRateMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<ValCurs><Valute>"))
	}))
	t.Cleanup(srv.Close)

	client := NewWithClient(srv.Client())
	client.base = srv.URL

	_, err := client.GetRate(context.Background(), "USD", salebook.MustParse("01.06.2024"))
	assert.Error(t, err)
}
