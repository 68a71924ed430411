package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/dnldd/tickframe/shared"
	"github.com/joho/godotenv"
)

// Config is the configuration struct for the service.
type Config struct {
	// Ticker is the tracked ticker symbol.
	Ticker string
	// Period is the span of history backing the sparkline.
	Period string
	// Interval is the sampling granularity of the history.
	Interval string
	// Width is the native horizontal resolution of the display.
	Width int
	// Height is the native vertical resolution of the display.
	Height int
	// Orientation is the mounting orientation of the display.
	Orientation string
	// FontDir is the directory holding the dashboard truetype fonts.
	FontDir string
	// OutputPath is the filepath rendered frames are written to.
	OutputPath string
	// RefreshMinutes is the number of minutes between frame refreshes.
	RefreshMinutes int

	registeredFlags map[string]bool
}

// setDefaults fills unset fields with their stock defaults.
func (cfg *Config) setDefaults() {
	if cfg.Ticker == "" {
		cfg.Ticker = "TSLA"
	}
	if cfg.Period == "" {
		cfg.Period = string(shared.PeriodOneDay)
	}
	if cfg.Interval == "" {
		cfg.Interval = string(shared.IntervalFifteenMinute)
	}
	if cfg.Width == 0 {
		cfg.Width = 800
	}
	if cfg.Height == 0 {
		cfg.Height = 480
	}
	if cfg.Orientation == "" {
		cfg.Orientation = "horizontal"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "ticker.png"
	}
	if cfg.RefreshMinutes == 0 {
		cfg.RefreshMinutes = 15
	}
}

// Validate asserts the config sane inputs.
func (cfg *Config) Validate() error {
	var errs error

	if cfg.Ticker == "" {
		errs = errors.Join(errs, fmt.Errorf("no ticker provided for ticker service"))
	}
	if _, err := shared.ParsePeriod(cfg.Period); err != nil {
		errs = errors.Join(errs, err)
	}
	if _, err := shared.ParseInterval(cfg.Interval); err != nil {
		errs = errors.Join(errs, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = errors.Join(errs, fmt.Errorf("display resolution must be positive"))
	}
	if cfg.RefreshMinutes <= 0 {
		errs = errors.Join(errs, fmt.Errorf("refresh interval must be positive"))
	}
	switch cfg.Orientation {
	case "horizontal", "vertical":
	default:
		errs = errors.Join(errs, fmt.Errorf("unknown orientation provided: %s", cfg.Orientation))
	}

	return errs
}

// registerFlag registers command line arguments of any type and tracks them to avoid reregistration.
func (cfg *Config) registerFlag(name string, value interface{}, usage string) error {
	if cfg.registeredFlags == nil {
		cfg.registeredFlags = make(map[string]bool)
	}

	if cfg.registeredFlags[name] {
		return nil
	}

	cfg.registeredFlags[name] = true

	defValue := os.Getenv(name)
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("%s: value must be a non-nil pointer", name)
	}

	switch val.Elem().Kind() {
	case reflect.String:
		flag.StringVar(value.(*string), name, defValue, usage)
	case reflect.Int:
		var def int
		if defValue != "" {
			def, _ = strconv.Atoi(defValue)
		}
		flag.IntVar(value.(*int), name, def, usage)
	default:
		return fmt.Errorf("%s: unsupported type", name)
	}

	return nil
}

// loadConfig loads the configuration from environment variables and command line flags.
func loadConfig(cfg *Config, path string) error {
	if path == "" {
		path = ".env"
	}

	// Check if the expected .env file exists before loading it.
	_, err := os.Stat(path)
	if err == nil {
		err := godotenv.Load(path)
		if err != nil {
			return fmt.Errorf("loading .env file: %w", err)
		}
	}

	// Register command line arguments using loaded environment variables as defaults.
	err = cfg.registerFlag("ticker", &cfg.Ticker, "the tracked ticker symbol")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("period", &cfg.Period, "the history period")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("interval", &cfg.Interval, "the history interval")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("width", &cfg.Width, "the display width")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("height", &cfg.Height, "the display height")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("orientation", &cfg.Orientation, "the display orientation")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("fontdir", &cfg.FontDir, "the truetype font directory")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("outputpath", &cfg.OutputPath, "the rendered frame filepath")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("refreshminutes", &cfg.RefreshMinutes, "the minutes between frame refreshes")
	if err != nil {
		return err
	}

	// Parse command-line flags.
	flag.Parse()

	cfg.setDefaults()

	return cfg.Validate()
}
