package fetch

import (
	"context"
	"net/url"
	"testing"

	"github.com/dnldd/tickframe/shared"
	"github.com/google/go-cmp/cmp"
	"github.com/peterldowns/testy/assert"
	"github.com/rs/zerolog"
)

func newTestYahooClient(t *testing.T) *YahooClient {
	t.Helper()

	logger := zerolog.Nop()
	client, err := NewYahooClient(&YahooConfig{
		BaseURL: "http://base",
		Logger:  &logger,
	})
	assert.NoError(t, err)

	return client
}

func TestNewYahooClient(t *testing.T) {
	// Ensure the client cannot be created without a base url.
	logger := zerolog.Nop()
	_, err := NewYahooClient(&YahooConfig{Logger: &logger})
	assert.Error(t, err)
}

func TestFormURL(t *testing.T) {
	client := newTestYahooClient(t)

	params := url.Values{}
	params.Add("range", "1d")
	params.Add("interval", "15m")

	formedURL := client.formURL(chartPath+"TSLA", params.Encode())
	assert.Equal(t, formedURL, "http://base/v8/finance/chart/TSLA?interval=15m&range=1d")
}

func TestParseQuote(t *testing.T) {
	client := newTestYahooClient(t)

	// Null buckets must be skipped and the rich meta fields take precedence
	// over the derived open/high/low/volume tier.
	body := `{
		"chart": {
			"result": [{
				"meta": {
					"regularMarketPrice": 250.5,
					"chartPreviousClose": 248.0,
					"regularMarketDayHigh": 252.0,
					"regularMarketDayLow": 247.0,
					"regularMarketVolume": 9000000
				},
				"indicators": {
					"quote": [{
						"open": [248.1, null, 249.2],
						"high": [249.0, null, 251.5],
						"low": [247.5, null, 248.8],
						"close": [248.5, null, 250.5],
						"volume": [1000, null, 2000]
					}]
				}
			}],
			"error": null
		}
	}`

	quote, err := client.ParseQuote([]byte(body))
	assert.NoError(t, err)
	assert.Equal(t, quote.Price, 250.5)
	assert.Equal(t, quote.PrevClose, 248.0)
	assert.Equal(t, quote.High, 252.0)
	assert.Equal(t, quote.Low, 247.0)
	assert.Equal(t, quote.Volume, float64(9000000))
	assert.Equal(t, quote.Open, 249.2)

	if diff := cmp.Diff([]float64{248.5, 250.5}, quote.History); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestParseQuoteDerivedTier(t *testing.T) {
	client := newTestYahooClient(t)

	// Without the rich meta session fields, open/high/low/volume are
	// reconstructed from the interval buckets.
	body := `{
		"chart": {
			"result": [{
				"meta": {
					"regularMarketPrice": 12,
					"previousClose": 10
				},
				"indicators": {
					"quote": [{
						"open": [9, 10, 11],
						"high": [10, 14, 12],
						"low": [8, 7, 9],
						"close": [9.5, 13, 12],
						"volume": [100, 200, 300]
					}]
				}
			}],
			"error": null
		}
	}`

	quote, err := client.ParseQuote([]byte(body))
	assert.NoError(t, err)
	assert.Equal(t, quote.Price, float64(12))
	assert.Equal(t, quote.PrevClose, float64(10))
	assert.Equal(t, quote.Open, float64(11))
	assert.Equal(t, quote.High, float64(14))
	assert.Equal(t, quote.Low, float64(7))
	assert.Equal(t, quote.Volume, float64(600))
}

func TestParseQuoteErrors(t *testing.T) {
	client := newTestYahooClient(t)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "api error response",
			body: `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`,
		},
		{
			name: "empty result",
			body: `{"chart":{"result":[],"error":null}}`,
		},
		{
			name: "missing market price",
			body: `{"chart":{"result":[{"meta":{}}],"error":null}}`,
		},
	}

	for _, test := range tests {
		_, err := client.ParseQuote([]byte(test.body))
		if err == nil {
			t.Errorf("%s: expected a parse error", test.name)
		}
	}
}

func TestFetchQuoteBadBaseURL(t *testing.T) {
	logger := zerolog.Nop()
	client, err := NewYahooClient(&YahooConfig{
		BaseURL: "http://127.0.0.1:0",
		Logger:  &logger,
	})
	assert.NoError(t, err)

	_, err = client.FetchQuote(context.Background(), "TSLA", shared.PeriodOneDay, shared.IntervalFifteenMinute)
	assert.Error(t, err)
}
