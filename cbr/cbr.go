// Package cbr fetches daily exchange rates from the Bank of Russia.
//
// It implements the salebook.RateProvider capability on top of the public
// XML_daily.asp feed, which serves windows-1251 encoded XML with
// comma-decimal values.
package cbr

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/okatov/salebook"
)

// BaseURL is the Bank of Russia daily quotation endpoint.
const BaseURL = "https://www.cbr.ru/scripts/XML_daily.asp"

// ErrRateNotFound is returned when the feed has no quotation for the
// requested currency code on the requested date.
var ErrRateNotFound = errors.New("no quotation for currency")

// Client queries the Bank of Russia daily rates.
type Client struct {
	http *http.Client
	base string
}

// New returns a client with a disk cache that expires daily, matching the
// publication cadence of the feed.
func New() *Client {
	return &Client{http: cached(), base: BaseURL}
}

// NewWithClient returns a client using the given http.Client, uncached.
func NewWithClient(c *http.Client) *Client {
	return &Client{http: c, base: BaseURL}
}

var _ salebook.RateProvider = (*Client)(nil)

// valCurs mirrors the feed's document: a list of quotations for one day.
// Value is the RUB price of Nominal units of the currency.
type valCurs struct {
	Date    string   `xml:"Date,attr"`
	Valutes []valute `xml:"Valute"`
}

type valute struct {
	CharCode string `xml:"CharCode"`
	Nominal  string `xml:"Nominal"`
	Value    string `xml:"Value"`
}

// GetRate returns the RUB exchange rate for one unit of the given currency
// on the given date. Quotations published per 10, 100 or 10000 units are
// scaled down by their nominal.
func (c *Client) GetRate(ctx context.Context, currencyCode string, on salebook.Date) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s?date_req=%s", c.base, on.Format("02/01/2006"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return decimal.Zero, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not fetch cbr rates: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("cannot http GET %v: %v", addr, resp.Status)
	}

	doc, err := decodeValCurs(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed cbr response: %w", err)
	}

	for _, v := range doc.Valutes {
		if !strings.EqualFold(v.CharCode, currencyCode) {
			continue
		}
		return unitRate(v)
	}
	return decimal.Zero, fmt.Errorf("%w: %s on %s", ErrRateNotFound, currencyCode, on)
}

// decodeValCurs parses the feed document, honoring its windows-1251 charset.
func decodeValCurs(r io.Reader) (*valCurs, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		switch strings.ToLower(charset) {
		case "windows-1251", "cp1251":
			return charmap.Windows1251.NewDecoder().Reader(input), nil
		case "utf-8", "":
			return input, nil
		default:
			return nil, fmt.Errorf("unsupported charset %q", charset)
		}
	}
	var doc valCurs
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// unitRate converts one quotation to a per-unit rate. The feed writes
// decimals with a comma separator.
func unitRate(v valute) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v.Value), ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid value %q for %s: %w", v.Value, v.CharCode, err)
	}
	nominal, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(v.Nominal), " ", ""))
	if err != nil || nominal <= 0 {
		return decimal.Zero, fmt.Errorf("invalid nominal %q for %s", v.Nominal, v.CharCode)
	}
	return value.Div(decimal.NewFromInt(int64(nominal))), nil
}
