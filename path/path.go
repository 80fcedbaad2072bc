package path

// Element represents a single element in a path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// vertexCount returns how many storage vertices an element occupies.
// Control points are vertices of their own.
func vertexCount(e Element) int {
	switch e.(type) {
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	default:
		return 1
	}
}

// Path is an appendable vertex buffer made of one or more subpaths.
//
// A Path is not safe for concurrent use. Callers that share a Path
// between goroutines serialize access externally.
type Path struct {
	elements []Element
	vertices int
	start    Point // start of the current subpath
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]Element, 0, 16),
	}
}

func (p *Path) push(e Element) {
	p.elements = append(p.elements, e)
	p.vertices += vertexCount(e)
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.push(MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo appends a line segment from the current point to (x, y).
// On a path without vertices it starts a subpath instead, so a path
// never begins with a dangling segment.
func (p *Path) LineTo(x, y float64) {
	if p.vertices == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.push(LineTo{Point: pt})
	p.current = pt
}

// Curve3 appends a quadratic Bezier curve with control point (cx, cy).
func (p *Path) Curve3(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.push(QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// Curve4 appends a cubic Bezier curve with control points (c1x, c1y)
// and (c2x, c2y).
func (p *Path) Curve4(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.push(CubicTo{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: pt})
	p.current = pt
}

// Close closes the current subpath. It does nothing when the path is
// empty or the last subpath is already closed.
func (p *Path) Close() {
	if !p.endsWithVertex() {
		return
	}
	p.push(Close{})
	p.current = p.start
}

// endsWithVertex reports whether the last element carries a point.
func (p *Path) endsWithVertex() bool {
	if len(p.elements) == 0 {
		return false
	}
	_, closed := p.elements[len(p.elements)-1].(Close)
	return !closed
}

// TotalVertices returns the number of stored vertices, control points
// and close markers included.
func (p *Path) TotalVertices() int {
	return p.vertices
}

// Elements returns the path elements. The slice is owned by the path.
func (p *Path) Elements() []Element {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// SubpathStart returns the start of the current subpath, where a close
// returns to.
func (p *Path) SubpathStart() Point {
	return p.start
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.vertices = 0
	p.start = Point{}
	p.current = Point{}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		elements: make([]Element, len(p.elements)),
		vertices: p.vertices,
		start:    p.start,
		current:  p.current,
	}
	copy(result.elements, p.elements)
	return result
}

// Append replays elements onto p through the regular builder methods.
func (p *Path) Append(elements []Element) {
	for _, el := range elements {
		switch e := el.(type) {
		case MoveTo:
			p.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			p.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			p.Curve3(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			p.Curve4(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			p.Close()
		}
	}
}

// Bounds returns the bounding box of all vertices, control points
// included. An empty path has a zero Rect.
func (p *Path) Bounds() Rect {
	return Bounds(p.elements)
}

// Bounds returns the control-point bounding box of an element list.
func Bounds(elements []Element) Rect {
	r := emptyRect()
	for _, el := range elements {
		switch e := el.(type) {
		case MoveTo:
			r = r.Extend(e.Point)
		case LineTo:
			r = r.Extend(e.Point)
		case QuadTo:
			r = r.Extend(e.Control).Extend(e.Point)
		case CubicTo:
			r = r.Extend(e.Control1).Extend(e.Control2).Extend(e.Point)
		}
	}
	if r.IsEmpty() {
		return Rect{}
	}
	return r
}

// Subpath is a contiguous run of elements started by a MoveTo.
type Subpath struct {
	Elements []Element
	Closed   bool
}

// Subpaths splits the path at each MoveTo. A segment drawn right after
// a Close starts a new subpath at the closed subpath's start point.
func (p *Path) Subpaths() []Subpath {
	var out []Subpath
	var start Point
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			start = e.Point
			out = append(out, Subpath{Elements: []Element{e}})
			continue
		case Close:
			if len(out) > 0 {
				out[len(out)-1].Closed = true
			}
			continue
		}
		if len(out) == 0 || out[len(out)-1].Closed {
			out = append(out, Subpath{Elements: []Element{MoveTo{Point: start}}})
		}
		cur := &out[len(out)-1]
		cur.Elements = append(cur.Elements, el)
	}
	return out
}
