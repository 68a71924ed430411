package sparkline

// Direction represents the price direction of a chart segment relative to the
// baseline.
type Direction int

const (
	Up Direction = iota
	Down
)

// String stringifies the provided direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Segment represents a colored chart line segment.
type Segment struct {
	P1        Point
	P2        Point
	Direction Direction
}

// SplitSegments walks consecutive point pairs and classifies each as bullish,
// bearish or baseline-crossing. Crossing pairs are split at the interpolated
// crossing point and yield two sub-segments colored per endpoint. Y grows
// downwards, so y < baseY means the price is above the baseline.
func SplitSegments(points []Point, baseY float64) []Segment {
	if len(points) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(points)-1)

	for idx := 0; idx < len(points)-1; idx++ {
		p1, p2 := points[idx], points[idx+1]

		switch {
		case p1.Y <= baseY && p2.Y <= baseY:
			// Entirely bullish. Endpoints exactly on the baseline resolve
			// here, never in the bearish branch below.
			segments = append(segments, Segment{P1: p1, P2: p2, Direction: Up})

		case p1.Y >= baseY && p2.Y >= baseY:
			// Entirely bearish.
			segments = append(segments, Segment{P1: p1, P2: p2, Direction: Down})

		default:
			// The pair straddles the baseline, split it at the crossing
			// point. Equal y values cannot reach this branch, but fall back
			// to the first point if they somehow do.
			cross := Point{X: p1.X, Y: p1.Y}
			if p2.Y != p1.Y {
				ratio := (baseY - p1.Y) / (p2.Y - p1.Y)
				cross = Point{X: p1.X + (p2.X-p1.X)*ratio, Y: baseY}
			}

			first, second := Down, Down
			if p1.Y < baseY {
				first = Up
			}
			if p2.Y < baseY {
				second = Up
			}

			segments = append(segments,
				Segment{P1: p1, P2: cross, Direction: first},
				Segment{P1: cross, P2: p2, Direction: second},
			)
		}
	}

	return segments
}
