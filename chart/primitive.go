package sparkline

// Color represents a named palette color carried by drawing primitives. The
// rasterization surface owns the mapping to actual RGB values.
type Color int

const (
	ColorUp Color = iota
	ColorDown
	ColorGrid
)

// String stringifies the provided color.
func (c Color) String() string {
	switch c {
	case ColorUp:
		return "up"
	case ColorDown:
		return "down"
	case ColorGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// Face represents a named font face for text primitives.
type Face int

const (
	FaceSmall Face = iota
	FaceTiny
)

// Primitive represents a single drawing instruction emitted by the chart
// composer. Rasterization is delegated to the rendering surface.
type Primitive interface {
	primitive()
}

// Line represents a straight line segment primitive.
type Line struct {
	P1    Point
	P2    Point
	Color Color
	Width float64
}

// Ellipse represents a filled circle primitive.
type Ellipse struct {
	Center Point
	Radius float64
	Color  Color
}

// Text represents a text label primitive.
type Text struct {
	Pos   Point
	Body  string
	Face  Face
	Color Color
}

func (l Line) primitive()    {}
func (e Ellipse) primitive() {}
func (t Text) primitive()    {}
