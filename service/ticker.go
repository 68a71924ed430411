package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/dnldd/tickframe/epd"
	"github.com/dnldd/tickframe/fetch"
	"github.com/dnldd/tickframe/shared"
	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// TickerConfig represents the configuration struct for the ticker service.
type TickerConfig struct {
	// Ticker is the tracked ticker symbol.
	Ticker string
	// Period is the span of history backing the sparkline.
	Period shared.Period
	// Interval is the sampling granularity of the history.
	Interval shared.Interval
	// Width is the native horizontal resolution of the display.
	Width int
	// Height is the native vertical resolution of the display.
	Height int
	// Orientation is the mounting orientation of the display.
	Orientation epd.Orientation
	// FontDir is the directory holding the dashboard truetype fonts.
	FontDir string
	// OutputPath is the filepath rendered frames are written to.
	OutputPath string
	// RefreshMinutes is the number of minutes between frame refreshes.
	RefreshMinutes int
	// Cancel is the context cancellation function.
	Cancel context.CancelFunc
}

// Validate asserts the config sane inputs.
func (cfg *TickerConfig) Validate() error {
	var errs error

	if cfg.Ticker == "" {
		errs = errors.Join(errs, fmt.Errorf("no ticker provided for ticker service"))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = errors.Join(errs, fmt.Errorf("display resolution must be positive"))
	}
	if cfg.OutputPath == "" {
		errs = errors.Join(errs, fmt.Errorf("output path cannot be an empty string"))
	}
	if cfg.RefreshMinutes <= 0 {
		errs = errors.Join(errs, fmt.Errorf("refresh interval must be positive"))
	}
	if cfg.Cancel == nil {
		errs = errors.Join(errs, fmt.Errorf("context cancellation function cannot be nil"))
	}

	return errs
}

// Ticker represents the stock ticker rendering service.
type Ticker struct {
	cfg          *TickerConfig
	quoteManager *fetch.Manager
	renderer     *epd.Renderer
	display      shared.Display
	jobScheduler *gocron.Scheduler
	logger       *zerolog.Logger
}

// NewTicker initializes a new ticker service.
func NewTicker(cfg *TickerConfig) (*Ticker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating ticker service config: %w", err)
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logger := log.With().Str("service", "ticker").Logger()

	clientLogger := logger.With().Str("component", "yahooclient").Logger()
	client, err := fetch.NewYahooClient(&fetch.YahooConfig{
		BaseURL: fetch.BaseURL,
		Logger:  &clientLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating yahoo client: %v", err)
	}

	quoteMgrLogger := logger.With().Str("component", "quotemanager").Logger()
	quoteMgr, err := fetch.NewManager(&fetch.ManagerConfig{
		Client: client,
		Logger: &quoteMgrLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating quote manager: %v", err)
	}

	rendererLogger := logger.With().Str("component", "renderer").Logger()
	renderer, err := epd.NewRenderer(&epd.RendererConfig{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Orientation: cfg.Orientation,
		FontDir:     cfg.FontDir,
		Logger:      &rendererLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %v", err)
	}

	displayLogger := logger.With().Str("component", "filedisplay").Logger()
	display, err := epd.NewFileDisplay(&epd.FileDisplayConfig{
		Path:   cfg.OutputPath,
		Logger: &displayLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating file display: %v", err)
	}

	service := &Ticker{
		cfg:          cfg,
		quoteManager: quoteMgr,
		renderer:     renderer,
		display:      display,
		jobScheduler: gocron.NewScheduler(time.Local),
		logger:       &logger,
	}

	return service, nil
}

// RenderFrame runs a single fetch and render cycle. An unavailable quote
// degrades to the fallback frame, it never fails the cycle.
func (t *Ticker) RenderFrame(ctx context.Context) {
	logger := t.logger.With().Str("render", uuid.NewString()).Logger()
	logger.Info().Msgf("fetching data for %s", t.cfg.Ticker)

	var img image.Image

	quote, err := t.quoteManager.GetQuote(ctx, t.cfg.Ticker, t.cfg.Period, t.cfg.Interval)
	switch {
	case err != nil:
		logger.Error().Msgf("fetching quote: %v", err)
		img = t.renderer.RenderUnavailable(t.cfg.Ticker)
	default:
		logger.Info().Msgf("%s at %.2f (%+.2f), %d history samples",
			t.cfg.Ticker, quote.Price, quote.Change(), len(quote.History))
		img = t.renderer.RenderDashboard(quote, t.cfg.Ticker)
	}

	if err := t.display.ShowImage(img); err != nil {
		logger.Error().Msgf("showing frame: %v", err)
	}
}

// Run handles the lifecycle processes of the ticker service.
func (t *Ticker) Run(ctx context.Context) {
	t.RenderFrame(ctx)

	_, err := t.jobScheduler.Every(t.cfg.RefreshMinutes).Minutes().Do(func() {
		t.RenderFrame(ctx)
	})
	if err != nil {
		t.logger.Error().Msgf("scheduling frame refreshes: %v", err)
		t.cfg.Cancel()
		return
	}

	t.jobScheduler.StartAsync()

	<-ctx.Done()
	t.jobScheduler.Stop()
}
