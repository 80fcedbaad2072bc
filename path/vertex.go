package path

import "fmt"

// Verb is the command attached to a stored vertex.
type Verb uint8

// Vertex commands, one per stored vertex.
const (
	VerbMoveTo Verb = iota + 1
	VerbLineTo
	VerbCurve3 // quadratic control point or end point
	VerbCurve4 // cubic control point or end point
	VerbClose
)

var verbNames = [...]string{
	VerbMoveTo: "move_to",
	VerbLineTo: "line_to",
	VerbCurve3: "curve3",
	VerbCurve4: "curve4",
	VerbClose:  "close",
}

// String returns the verb name.
func (v Verb) String() string {
	if int(v) < len(verbNames) && verbNames[v] != "" {
		return verbNames[v]
	}
	return fmt.Sprintf("Verb(%d)", v)
}

// Vertex is one entry of the flattened vertex stream.
// Close vertices carry the start point of the subpath they close.
type Vertex struct {
	X, Y float64
	Verb Verb
}

// Vertices returns the flattened vertex stream. Its length always
// equals TotalVertices.
func (p *Path) Vertices() []Vertex {
	out := make([]Vertex, 0, p.vertices)
	var start Point
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			start = e.Point
			out = append(out, Vertex{X: e.Point.X, Y: e.Point.Y, Verb: VerbMoveTo})
		case LineTo:
			out = append(out, Vertex{X: e.Point.X, Y: e.Point.Y, Verb: VerbLineTo})
		case QuadTo:
			out = append(out,
				Vertex{X: e.Control.X, Y: e.Control.Y, Verb: VerbCurve3},
				Vertex{X: e.Point.X, Y: e.Point.Y, Verb: VerbCurve3})
		case CubicTo:
			out = append(out,
				Vertex{X: e.Control1.X, Y: e.Control1.Y, Verb: VerbCurve4},
				Vertex{X: e.Control2.X, Y: e.Control2.Y, Verb: VerbCurve4},
				Vertex{X: e.Point.X, Y: e.Point.Y, Verb: VerbCurve4})
		case Close:
			out = append(out, Vertex{X: start.X, Y: start.Y, Verb: VerbClose})
		}
	}
	return out
}
