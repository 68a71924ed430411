package sparkline

import "fmt"

const (
	// baselineWidth is the stroke width of the baseline rule.
	baselineWidth = 2
	// lowLabelGap is the vertical clearance of the Low label below the rect.
	lowLabelGap = 5
	// tagLift is the vertical clearance of the Prev tag above the baseline.
	tagLift = 20
)

// ComposeConfig represents the configuration for composing a sparkline chart.
type ComposeConfig struct {
	// Rect is the pixel rectangle the chart is drawn into.
	Rect Rect
	// LineWidth is the stroke width of the chart segments.
	LineWidth float64
	// DotRadius is the radius of the end-of-series marker.
	DotRadius float64
	// LabelGap is the vertical clearance of the High label above the rect.
	LabelGap float64
	// TagInset is the horizontal inset of the Prev tag from the right edge.
	TagInset float64
}

// Compose renders the provided close history against its baseline into an
// ordered list of drawing primitives: range labels, the baseline rule, the
// split-colored polyline and the end-of-series marker. Histories with fewer
// than two samples produce no chart at all, which is a normal outcome.
func Compose(history []float64, baseline float64, cfg *ComposeConfig) []Primitive {
	if len(history) < 2 {
		return nil
	}

	rect := cfg.Rect
	rng := NormalizeRange(history, baseline)
	baseY := LocateBaseline(baseline, rng, rect)

	primitives := make([]Primitive, 0, 2*len(history)+4)

	// Range labels reflect the baseline-widened range, so the baseline value
	// itself shows when it is the more extreme of the two.
	primitives = append(primitives,
		Text{
			Pos:   Point{X: rect.XStart, Y: rect.YStart - cfg.LabelGap},
			Body:  fmt.Sprintf("High: %.2f", rng.Max),
			Face:  FaceSmall,
			Color: ColorGrid,
		},
		Text{
			Pos:   Point{X: rect.XStart, Y: rect.YEnd + lowLabelGap},
			Body:  fmt.Sprintf("Low: %.2f", rng.Min),
			Face:  FaceSmall,
			Color: ColorGrid,
		},
	)

	// Baseline rule across the full rect width, tagged at the right edge.
	primitives = append(primitives,
		Line{
			P1:    Point{X: rect.XStart, Y: baseY},
			P2:    Point{X: rect.XEnd, Y: baseY},
			Color: ColorGrid,
			Width: baselineWidth,
		},
		Text{
			Pos:   Point{X: rect.XEnd - cfg.TagInset, Y: baseY - tagLift},
			Body:  "Prev",
			Face:  FaceTiny,
			Color: ColorGrid,
		},
	)

	points := ProjectPoints(history, rng, rect)
	for _, seg := range SplitSegments(points, baseY) {
		lineColor := ColorUp
		if seg.Direction == Down {
			lineColor = ColorDown
		}

		primitives = append(primitives, Line{
			P1:    seg.P1,
			P2:    seg.P2,
			Color: lineColor,
			Width: cfg.LineWidth,
		})
	}

	dotColor := ColorDown
	if history[len(history)-1] >= baseline {
		dotColor = ColorUp
	}

	primitives = append(primitives, Ellipse{
		Center: points[len(points)-1],
		Radius: cfg.DotRadius,
		Color:  dotColor,
	})

	return primitives
}
