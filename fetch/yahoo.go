package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dnldd/tickframe/shared"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	// BaseURL is the yahoo finance chart api base url.
	BaseURL = "https://query1.finance.yahoo.com"
	// chartPath is the chart endpoint path, completed by the ticker symbol.
	chartPath = "/v8/finance/chart/"
)

// YahooConfig represents the configuration for the yahoo finance client.
type YahooConfig struct {
	// BaseURL is the base url of the yahoo finance api.
	BaseURL string
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// YahooClient represents the yahoo finance chart api client.
type YahooClient struct {
	cfg   *YahooConfig
	httpc http.Client
	buf   *bytes.Buffer
}

// Ensure the YahooClient implements the QuoteFetcher interface.
var _ shared.QuoteFetcher = (*YahooClient)(nil)

// NewYahooClient instantiates a new yahoo finance client.
func NewYahooClient(cfg *YahooConfig) (*YahooClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url cannot be an empty string")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &YahooClient{
		cfg:   cfg,
		httpc: http.Client{Timeout: time.Second * 5},
		buf:   bytes.NewBuffer(make([]byte, 0, 512)),
	}, nil
}

// formURL creates full urls including parameters for the api.
func (c *YahooClient) formURL(path string, params string) string {
	c.buf.WriteString(c.cfg.BaseURL)
	c.buf.WriteString(path)
	c.buf.WriteString("?")
	c.buf.WriteString(params)
	url := c.buf.String()
	c.buf.Reset()

	return url
}

// collectSeries gathers the non-null samples of the provided json array.
// Yahoo emits null buckets for intervals without trades.
func collectSeries(data gjson.Result) []float64 {
	series := make([]float64, 0, 64)

	data.ForEach(func(_ gjson.Result, value gjson.Result) bool {
		if value.Type != gjson.Null {
			series = append(series, value.Float())
		}
		return true
	})

	return series
}

// ParseQuote parses a quote from the provided chart api response body.
func (c *YahooClient) ParseQuote(body []byte) (*shared.Quote, error) {
	result := gjson.GetBytes(body, "chart.result.0")
	if !result.Exists() {
		apiErr := gjson.GetBytes(body, "chart.error.description")
		if apiErr.Exists() {
			return nil, fmt.Errorf("chart api error: %s", apiErr.String())
		}
		return nil, fmt.Errorf("chart api response has no result")
	}

	meta := result.Get("meta")
	price := meta.Get("regularMarketPrice")
	if !price.Exists() {
		c.cfg.Logger.Error().Msgf("chart api response missing market price: %s",
			spew.Sdump(meta.Value()))
		return nil, fmt.Errorf("chart api response missing market price")
	}

	prevClose := meta.Get("chartPreviousClose")
	if !prevClose.Exists() {
		prevClose = meta.Get("previousClose")
	}

	quote := &shared.Quote{
		Price:     price.Float(),
		PrevClose: prevClose.Float(),
		History:   collectSeries(result.Get("indicators.quote.0.close")),
	}

	// Derived tier first: open, high, low and volume reconstructed from the
	// interval buckets.
	indicators := result.Get("indicators.quote.0")
	quote.DeriveOHLCV(
		collectSeries(indicators.Get("open")),
		collectSeries(indicators.Get("high")),
		collectSeries(indicators.Get("low")),
		collectSeries(indicators.Get("volume")),
	)

	// Rich tier: the session fields reported by the meta block take
	// precedence when all of them are present.
	dayHigh := meta.Get("regularMarketDayHigh")
	dayLow := meta.Get("regularMarketDayLow")
	dayVolume := meta.Get("regularMarketVolume")
	if dayHigh.Exists() && dayLow.Exists() && dayVolume.Exists() {
		quote.High = dayHigh.Float()
		quote.Low = dayLow.Float()
		quote.Volume = dayVolume.Float()
	}

	return quote, nil
}

// FetchQuote fetches the current quote and close history for the provided ticker.
func (c *YahooClient) FetchQuote(ctx context.Context, ticker string, period shared.Period, interval shared.Interval) (*shared.Quote, error) {
	params := url.Values{}
	params.Add("range", string(period))
	params.Add("interval", string(interval))

	formedURL := c.formURL(chartPath+url.PathEscape(ticker), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, formedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating chart request for %s: %w", ticker, err)
	}

	// The chart api rejects requests without a user agent.
	req.Header.Set("User-Agent", "tickframe/1.0")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching chart data for %s: %w", ticker, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching chart data for %s: unexpected status %d", ticker, resp.StatusCode)
	}

	return c.ParseQuote(body)
}
