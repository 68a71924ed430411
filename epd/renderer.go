package epd

import (
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	sparkline "github.com/dnldd/tickframe/chart"
	"github.com/dnldd/tickframe/shared"
	"github.com/dustin/go-humanize"
	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
)

const (
	// defaultFontDir is the default truetype font directory.
	defaultFontDir = "/usr/share/fonts/truetype/dejavu"
)

// Orientation represents the mounting orientation of the display.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// ParseOrientation validates the provided orientation string.
func ParseOrientation(orientation string) (Orientation, error) {
	switch Orientation(orientation) {
	case Horizontal, Vertical:
		return Orientation(orientation), nil
	default:
		return "", fmt.Errorf("unknown orientation provided: %s", orientation)
	}
}

// RendererConfig represents the configuration for the dashboard renderer.
type RendererConfig struct {
	// Width is the native horizontal resolution of the display.
	Width int
	// Height is the native vertical resolution of the display.
	Height int
	// Orientation is the mounting orientation of the display. A vertical
	// mount swaps the frame dimensions.
	Orientation Orientation
	// FontDir is the directory holding the dashboard truetype fonts.
	FontDir string
	// Palette is the dashboard color palette.
	Palette Palette
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *RendererConfig) Validate() error {
	var errs error

	if cfg.Width <= 0 {
		errs = errors.Join(errs, fmt.Errorf("frame width must be positive"))
	}
	if cfg.Height <= 0 {
		errs = errors.Join(errs, fmt.Errorf("frame height must be positive"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Renderer represents the stock dashboard renderer.
type Renderer struct {
	cfg    *RendererConfig
	width  int
	height int
	faces  faceSet
}

// NewRenderer initializes the dashboard renderer.
func NewRenderer(cfg *RendererConfig) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating renderer config: %w", err)
	}

	if cfg.FontDir == "" {
		cfg.FontDir = defaultFontDir
	}
	if cfg.Palette.Background == nil {
		cfg.Palette = DefaultPalette()
	}

	width, height := cfg.Width, cfg.Height
	if cfg.Orientation == Vertical {
		width, height = height, width
	}

	return &Renderer{
		cfg:    cfg,
		width:  width,
		height: height,
		faces:  loadFaces(cfg.FontDir, height, cfg.Logger),
	}, nil
}

// Size returns the effective frame dimensions, orientation applied.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// rasterize draws the provided chart primitives onto the canvas.
func (r *Renderer) rasterize(dc *gg.Context, primitives []sparkline.Primitive) {
	for _, prim := range primitives {
		switch p := prim.(type) {
		case sparkline.Line:
			dc.SetColor(r.cfg.Palette.resolve(p.Color))
			dc.SetLineWidth(p.Width)
			dc.DrawLine(p.P1.X, p.P1.Y, p.P2.X, p.P2.Y)
			dc.Stroke()

		case sparkline.Ellipse:
			dc.SetColor(r.cfg.Palette.resolve(p.Color))
			dc.DrawCircle(p.Center.X, p.Center.Y, p.Radius)
			dc.Fill()

		case sparkline.Text:
			face := r.faces.small
			if p.Face == sparkline.FaceTiny {
				face = r.faces.tiny
			}
			dc.SetFontFace(face)
			dc.SetColor(r.cfg.Palette.resolve(p.Color))
			dc.DrawStringAnchored(p.Body, p.Pos.X, p.Pos.Y, 0, 1)
		}
	}
}

// RenderDashboard renders the full stock dashboard for the provided quote.
func (r *Renderer) RenderDashboard(quote *shared.Quote, ticker string) image.Image {
	pal := r.cfg.Palette
	w, h := float64(r.width), float64(r.height)

	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(pal.Background)
	dc.Clear()

	accent := pal.Down
	sign := ""
	if quote.Bullish() {
		accent = pal.Up
		sign = "+"
	}

	marginX := w * 0.025
	marginY := h * 0.04

	// Header: ticker on the left, timestamp right aligned.
	dc.SetFontFace(r.faces.large)
	dc.SetColor(pal.TextPrimary)
	dc.DrawStringAnchored(ticker, marginX, marginY, 0, 1)

	now := time.Now().Format("Mon 15:04")
	dc.SetFontFace(r.faces.med)
	dc.SetColor(pal.TextDim)
	timeWidth, _ := dc.MeasureString(now)
	dc.DrawStringAnchored(now, w-timeWidth-marginX, h*0.06, 0, 1)

	// Current price and change.
	price := "$" + humanize.FormatFloat("#,###.##", quote.Price)
	dc.SetFontFace(r.faces.giant)
	dc.SetColor(pal.TextPrimary)
	dc.DrawStringAnchored(price, marginX, h*0.20, 0, 1)

	change := fmt.Sprintf("%s%.2f (%s%.2f%%)", sign, quote.Change(), sign, quote.ChangePercent())
	dc.SetFontFace(r.faces.med)
	dc.SetColor(accent)
	dc.DrawStringAnchored(change, marginX, h*0.45, 0, 1)

	// Details column on the right, behind a vertical rule.
	colX := w * 0.625
	dc.SetColor(pal.Grid)
	dc.SetLineWidth(3)
	dc.DrawLine(colX, h*0.18, colX, h*0.58)
	dc.Stroke()

	rows := []struct {
		label string
		value string
	}{
		{label: "Open", value: fmt.Sprintf("$%.2f", quote.Open)},
		{label: "High", value: fmt.Sprintf("$%.2f", quote.High)},
		{label: "Low", value: fmt.Sprintf("$%.2f", quote.Low)},
		{label: "Vol", value: fmt.Sprintf("%.1fM", quote.Volume/1e6)},
	}

	dc.SetFontFace(r.faces.med)
	rowY := h * 0.18
	for _, row := range rows {
		dc.SetColor(pal.TextDim)
		dc.DrawStringAnchored(row.label, colX+w*0.025, rowY, 0, 1)
		dc.SetColor(pal.TextPrimary)
		dc.DrawStringAnchored(row.value, colX+w*0.175, rowY, 0, 1)
		rowY += h * 0.10
	}

	// Sparkline chart across the bottom section.
	composeCfg := sparkline.ComposeConfig{
		Rect: sparkline.Rect{
			XStart: w * 0.03,
			XEnd:   w - w*0.03,
			YStart: h * 0.625,
			YEnd:   h - h*0.08,
		},
		LineWidth: math.Max(2, w*0.005),
		DotRadius: math.Max(4, w*0.01),
		LabelGap:  h * 0.05,
		TagInset:  w * 0.075,
	}
	r.rasterize(dc, sparkline.Compose(quote.History, quote.PrevClose, &composeCfg))

	return dc.Image()
}

// RenderUnavailable renders the degraded frame shown when no quote could be
// fetched: a plain background with a single error message.
func (r *Renderer) RenderUnavailable(ticker string) image.Image {
	pal := r.cfg.Palette

	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(pal.Background)
	dc.Clear()

	dc.SetFontFace(r.faces.err)
	dc.SetColor(pal.Down)
	dc.DrawStringAnchored(fmt.Sprintf("Failed to fetch data for %s", ticker),
		20, float64(r.height)/2, 0, 1)

	return dc.Image()
}
