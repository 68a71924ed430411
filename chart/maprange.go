package sparkline

// Range represents an inclusive value range.
type Range struct {
	Min float64
	Max float64
}

// Rect represents the pixel rectangle a chart is drawn into. Y grows
// downwards, so YStart is the top edge and YEnd the bottom edge.
type Rect struct {
	XStart float64
	XEnd   float64
	YStart float64
	YEnd   float64
}

// Point represents a projected pixel coordinate.
type Point struct {
	X float64
	Y float64
}

// MapRange linearly interpolates the provided value from the input range to
// the output range. A degenerate input range carries no positional
// information, so every value maps to the midpoint of the output range.
func MapRange(value float64, inMin float64, inMax float64, outMin float64, outMax float64) float64 {
	if inMax == inMin {
		return (outMin + outMax) / 2
	}

	return (value-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// NormalizeRange returns the effective value range of the provided history,
// widened to include the baseline so the baseline always falls within the
// plotted vertical span. The history must have at least one element.
func NormalizeRange(history []float64, baseline float64) Range {
	rng := Range{Min: baseline, Max: baseline}

	for idx := range history {
		if history[idx] < rng.Min {
			rng.Min = history[idx]
		}
		if history[idx] > rng.Max {
			rng.Max = history[idx]
		}
	}

	return rng
}

// LocateBaseline converts the baseline value into a vertical pixel
// coordinate. Higher prices map to smaller y values.
func LocateBaseline(baseline float64, rng Range, rect Rect) float64 {
	return MapRange(baseline, rng.Min, rng.Max, rect.YEnd, rect.YStart)
}

// ProjectPoints converts each history sample into a pixel coordinate, index
// over the horizontal extent and price over the normalized vertical range. A
// single-sample history lands at the horizontal center of the rect via
// MapRange's midpoint rule.
func ProjectPoints(history []float64, rng Range, rect Rect) []Point {
	points := make([]Point, 0, len(history))

	for idx := range history {
		points = append(points, Point{
			X: MapRange(float64(idx), 0, float64(len(history)-1), rect.XStart, rect.XEnd),
			Y: MapRange(history[idx], rng.Min, rng.Max, rect.YEnd, rect.YStart),
		})
	}

	return points
}
