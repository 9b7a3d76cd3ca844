package svg

import (
	"fmt"

	"github.com/plotpath/vectorizer/internal/trace"
)

// Element is a drawable SVG segment: Line, Polyline or Circle.
type Element interface {
	element()
}

// Line is a straight segment between two points.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  string // name, "#RRGGBB" or "r,g,b"; empty means black
}

// Polyline is a connected sequence of points.
type Polyline struct {
	Vertices []trace.Vertex
	Color    string
}

// Circle is a center-plus-radius primitive.
type Circle struct {
	CX, CY, R float64
	Color     string
}

func (Line) element()     {}
func (Polyline) element() {}
func (Circle) element()   {}

// FromLines converts traced polylines into explicit elements: two points
// become a Line, anything else a Polyline. All elements share one stroke
// color.
func FromLines(lines []trace.Polyline, color string) []Element {
	elems := make([]Element, 0, len(lines))
	for _, line := range lines {
		if len(line) == 2 {
			elems = append(elems, Line{
				X1: line[0].X, Y1: line[0].Y,
				X2: line[1].X, Y2: line[1].Y,
				Color: color,
			})
			continue
		}
		elems = append(elems, Polyline{Vertices: line, Color: color})
	}
	return elems
}

// FromFlat builds an element from a flat coordinate slice in X-Y
// succession. Exactly 3 values are an X-Y-R circle, 4 a line, any other
// even count a polyline. An odd count (other than 3) is malformed.
func FromFlat(vals []float64, color string) (Element, error) {
	switch {
	case len(vals) == 3:
		return Circle{CX: vals[0], CY: vals[1], R: vals[2], Color: color}, nil
	case len(vals) == 0 || len(vals)%2 != 0:
		return nil, fmt.Errorf("odd number of coordinate values (%d)", len(vals))
	case len(vals) == 4:
		return Line{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3], Color: color}, nil
	default:
		verts := make([]trace.Vertex, len(vals)/2)
		for i := range verts {
			verts[i] = trace.Vertex{X: vals[2*i], Y: vals[2*i+1]}
		}
		return Polyline{Vertices: verts, Color: color}, nil
	}
}

// FromFlatAll converts a batch of flat slices, skipping malformed entries
// with a warning through logf so the remaining segments still render.
func FromFlatAll(segs [][]float64, color string, logf func(format string, args ...any)) []Element {
	elems := make([]Element, 0, len(segs))
	for i, seg := range segs {
		e, err := FromFlat(seg, color)
		if err != nil {
			if logf != nil {
				logf("skipping segment %d: %v", i, err)
			}
			continue
		}
		elems = append(elems, e)
	}
	return elems
}
