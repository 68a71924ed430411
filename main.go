package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/dnldd/tickframe/epd"
	"github.com/dnldd/tickframe/service"
	"github.com/dnldd/tickframe/shared"
)

// handleTermination processes context cancellation signals or interrupt signals from the OS.
func handleTermination(ctx context.Context, cancel context.CancelFunc) {
	// Listen for interrupt signals.
	signals := []os.Signal{os.Interrupt}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, signals...)

	// Wait for the context to be cancelled or an interrupt signal.
	for {
		select {
		case <-ctx.Done():
			return

		case <-interrupt:
			cancel()
		}
	}
}

func main() {
	var cfg Config
	err := loadConfig(&cfg, "")
	if err != nil {
		log.Printf("loading config: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tickerCfg := service.TickerConfig{
		Ticker:         cfg.Ticker,
		Period:         shared.Period(cfg.Period),
		Interval:       shared.Interval(cfg.Interval),
		Width:          cfg.Width,
		Height:         cfg.Height,
		Orientation:    epd.Orientation(cfg.Orientation),
		FontDir:        cfg.FontDir,
		OutputPath:     cfg.OutputPath,
		RefreshMinutes: cfg.RefreshMinutes,
		Cancel:         cancel,
	}
	ticker, err := service.NewTicker(&tickerCfg)
	if err != nil {
		log.Printf("creating ticker service: %v", err)
		return
	}

	go handleTermination(ctx, cancel)
	ticker.Run(ctx)
}
