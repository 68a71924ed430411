package shared

import (
	"context"
	"errors"
	"image"
)

// ErrQuoteUnavailable is returned when a quote cannot be fetched after all
// retry attempts are exhausted.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// QuoteFetcher defines the requirements for fetching market quote data.
type QuoteFetcher interface {
	// FetchQuote fetches the current quote and close history for the provided ticker.
	FetchQuote(ctx context.Context, ticker string, period Period, interval Interval) (*Quote, error)
}

// Display defines the requirements for presenting a rendered frame.
type Display interface {
	// ShowImage hands the rendered frame off to the display surface.
	ShowImage(img image.Image) error
}
