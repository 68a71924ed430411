package epd

import (
	"image"
	"image/color"
	"testing"

	"github.com/dnldd/tickframe/shared"
	"github.com/peterldowns/testy/assert"
	"github.com/rs/zerolog"
)

// newTestRenderer returns a renderer with an empty font directory so every
// face deterministically falls back to the built-in bitmap font.
func newTestRenderer(t *testing.T, orientation Orientation) *Renderer {
	t.Helper()

	logger := zerolog.Nop()
	renderer, err := NewRenderer(&RendererConfig{
		Width:       800,
		Height:      480,
		Orientation: orientation,
		FontDir:     t.TempDir(),
		Logger:      &logger,
	})
	assert.NoError(t, err)

	return renderer
}

// countColor counts the pixels of the provided image matching the color
// within the given vertical band.
func countColor(img image.Image, target color.Color, yMin int, yMax int) int {
	bounds := img.Bounds()
	tr, tg, tb, ta := target.RGBA()

	var count int
	for y := yMin; y < yMax && y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if r == tr && g == tg && b == tb && a == ta {
				count++
			}
		}
	}

	return count
}

func TestParseOrientation(t *testing.T) {
	orientation, err := ParseOrientation("horizontal")
	assert.NoError(t, err)
	assert.Equal(t, orientation, Horizontal)

	orientation, err = ParseOrientation("vertical")
	assert.NoError(t, err)
	assert.Equal(t, orientation, Vertical)

	_, err = ParseOrientation("upside-down")
	assert.Error(t, err)
}

func TestRendererConfigValidate(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		cfg     RendererConfig
		wantErr bool
	}{
		{
			name:    "valid config",
			cfg:     RendererConfig{Width: 800, Height: 480, Logger: &logger},
			wantErr: false,
		},
		{
			name:    "missing width",
			cfg:     RendererConfig{Height: 480, Logger: &logger},
			wantErr: true,
		},
		{
			name:    "missing height",
			cfg:     RendererConfig{Width: 800, Logger: &logger},
			wantErr: true,
		},
		{
			name:    "missing logger",
			cfg:     RendererConfig{Width: 800, Height: 480},
			wantErr: true,
		},
	}

	for _, test := range tests {
		err := test.cfg.Validate()
		if test.wantErr && err == nil {
			t.Errorf("%s: expected a validation error", test.name)
		}
		if !test.wantErr && err != nil {
			t.Errorf("%s: unexpected validation error: %v", test.name, err)
		}
	}
}

func TestRendererOrientation(t *testing.T) {
	renderer := newTestRenderer(t, Horizontal)
	width, height := renderer.Size()
	assert.Equal(t, width, 800)
	assert.Equal(t, height, 480)

	renderer = newTestRenderer(t, Vertical)
	width, height = renderer.Size()
	assert.Equal(t, width, 480)
	assert.Equal(t, height, 800)
}

func TestRenderDashboard(t *testing.T) {
	renderer := newTestRenderer(t, Horizontal)
	pal := renderer.cfg.Palette

	quote := &shared.Quote{
		Price:     105,
		PrevClose: 100,
		Open:      98,
		High:      110,
		Low:       95,
		Volume:    1_500_000,
		History:   []float64{98, 102, 97, 105},
	}

	img := renderer.RenderDashboard(quote, "TSLA")
	bounds := img.Bounds()
	assert.Equal(t, bounds.Dx(), 800)
	assert.Equal(t, bounds.Dy(), 480)

	// The history crosses the baseline, so the chart band carries bullish,
	// bearish and grid colored pixels.
	chartTop := int(float64(bounds.Dy()) * 0.6)
	assert.True(t, countColor(img, pal.Up, chartTop, bounds.Dy()) > 0)
	assert.True(t, countColor(img, pal.Down, chartTop, bounds.Dy()) > 0)
	assert.True(t, countColor(img, pal.Grid, chartTop, bounds.Dy()) > 0)
}

func TestRenderDashboardSkipsShortHistory(t *testing.T) {
	renderer := newTestRenderer(t, Horizontal)
	pal := renderer.cfg.Palette

	quote := &shared.Quote{
		Price:     105,
		PrevClose: 100,
		History:   []float64{105},
	}

	img := renderer.RenderDashboard(quote, "TSLA")
	bounds := img.Bounds()

	// No chart is drawn for a single-sample history: the chart band holds
	// nothing but background.
	chartTop := int(float64(bounds.Dy()) * 0.62)
	assert.Equal(t, countColor(img, pal.Up, chartTop, bounds.Dy()), 0)
	assert.Equal(t, countColor(img, pal.Down, chartTop, bounds.Dy()), 0)
	assert.Equal(t, countColor(img, pal.Grid, chartTop, bounds.Dy()), 0)
}

func TestRenderUnavailable(t *testing.T) {
	renderer := newTestRenderer(t, Horizontal)
	pal := renderer.cfg.Palette

	img := renderer.RenderUnavailable("TSLA")
	bounds := img.Bounds()
	assert.Equal(t, bounds.Dx(), 800)
	assert.Equal(t, bounds.Dy(), 480)

	// Only the error message is drawn: failure colored text on an otherwise
	// plain background.
	assert.True(t, countColor(img, pal.Down, 0, bounds.Dy()) > 0)
	assert.Equal(t, countColor(img, pal.Up, 0, bounds.Dy()), 0)
	assert.Equal(t, countColor(img, pal.Grid, 0, bounds.Dy()), 0)
}
