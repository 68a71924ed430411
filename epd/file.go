package epd

import (
	"errors"
	"fmt"
	"image"

	"github.com/dnldd/tickframe/shared"
	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
)

// FileDisplayConfig represents the configuration for the file display.
type FileDisplayConfig struct {
	// Path is the filepath the rendered frame is written to.
	Path string
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *FileDisplayConfig) Validate() error {
	var errs error

	if cfg.Path == "" {
		errs = errors.Join(errs, fmt.Errorf("display path cannot be an empty string"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// FileDisplay represents a display surface backed by a png file, typically
// consumed by an e-paper driver watching the path.
type FileDisplay struct {
	cfg *FileDisplayConfig
}

// Ensure the FileDisplay implements the Display interface.
var _ shared.Display = (*FileDisplay)(nil)

// NewFileDisplay initializes a new file display.
func NewFileDisplay(cfg *FileDisplayConfig) (*FileDisplay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating file display config: %w", err)
	}

	return &FileDisplay{cfg: cfg}, nil
}

// ShowImage writes the rendered frame to the configured path.
func (d *FileDisplay) ShowImage(img image.Image) error {
	if err := gg.SavePNG(d.cfg.Path, img); err != nil {
		return fmt.Errorf("writing frame to %s: %w", d.cfg.Path, err)
	}

	d.cfg.Logger.Info().Msgf("frame written to %s", d.cfg.Path)

	return nil
}
