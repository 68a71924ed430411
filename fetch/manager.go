package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dnldd/tickframe/shared"
	"github.com/rs/zerolog"
)

const (
	// defaultMaxAttempts is the default number of fetch attempts.
	defaultMaxAttempts = 3
	// defaultRetryDelay is the default delay between fetch attempts.
	defaultRetryDelay = time.Second * 5
)

// ManagerConfig represents the configuration for the quote manager.
type ManagerConfig struct {
	// Client represents the quote fetcher.
	Client shared.QuoteFetcher
	// MaxAttempts is the number of fetch attempts before giving up.
	MaxAttempts int
	// RetryDelay is the delay between fetch attempts.
	RetryDelay time.Duration
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *ManagerConfig) Validate() error {
	var errs error

	if cfg.Client == nil {
		errs = errors.Join(errs, fmt.Errorf("quote fetcher cannot be nil"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Manager represents the retrying quote manager. It owns the bounded retry
// policy so the rendering core stays free of timing and network concerns.
type Manager struct {
	cfg *ManagerConfig
}

// NewManager initializes the quote manager.
func NewManager(cfg *ManagerConfig) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating quote manager config: %w", err)
	}

	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}

	return &Manager{cfg: cfg}, nil
}

// GetQuote fetches a quote for the provided ticker, retrying failed attempts
// up to the configured maximum with a fixed delay between attempts. It
// returns shared.ErrQuoteUnavailable once all attempts are exhausted.
func (m *Manager) GetQuote(ctx context.Context, ticker string, period shared.Period, interval shared.Interval) (*shared.Quote, error) {
	for attempt := 1; attempt <= m.cfg.MaxAttempts; attempt++ {
		quote, err := m.cfg.Client.FetchQuote(ctx, ticker, period, interval)
		if err == nil {
			return quote, nil
		}

		m.cfg.Logger.Error().Msgf("attempt %d/%d fetching quote for %s: %v",
			attempt, m.cfg.MaxAttempts, ticker, err)

		if attempt == m.cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("fetching quote for %s: %w", ticker, ctx.Err())
		case <-time.After(m.cfg.RetryDelay):
		}
	}

	return nil, fmt.Errorf("fetching quote for %s: %w", ticker, shared.ErrQuoteUnavailable)
}
