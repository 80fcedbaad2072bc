package draw

import (
	"math"

	"github.com/ralic/gnu-gsl-shell/path"
)

// Drawable is the capability shared by all primitives: an outline in
// drawing coordinates and its bounding box.
type Drawable interface {
	Elements() []path.Element
	Bounds() path.Rect
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

// Ellipse is an immutable ellipse centred on (CX, CY).
type Ellipse struct {
	CX, CY   float64
	RX, RY   float64
	Rotation float64 // radians
	// Clockwise reverses the outline direction.
	Clockwise bool
}

// NewEllipse returns an axis-aligned counter-clockwise ellipse.
func NewEllipse(x, y, rx, ry float64) Ellipse {
	return Ellipse{CX: x, CY: y, RX: rx, RY: ry}
}

// NewCircle returns NewEllipse(x, y, r, r).
func NewCircle(x, y, r float64) Ellipse {
	return NewEllipse(x, y, r, r)
}

// Elements returns the outline as four cubic arcs.
func (e Ellipse) Elements() []path.Element {
	dir := 1.0
	if e.Clockwise {
		dir = -1
	}
	// Quarter arcs of the unit circle, mapped onto the ellipse.
	at := func(a float64) (p, tan path.Point) {
		sin, cos := math.Sincos(a)
		return path.Pt(cos, sin), path.Pt(-sin*dir, cos*dir)
	}
	u := path.NewPath()
	u.MoveTo(1, 0)
	for i := 0; i < 4; i++ {
		a0 := dir * float64(i) * math.Pi / 2
		a1 := dir * float64(i+1) * math.Pi / 2
		p0, t0 := at(a0)
		p1, t1 := at(a1)
		c1 := p0.Add(t0.Mul(kappa))
		c2 := p1.Sub(t1.Mul(kappa))
		if i == 3 {
			p1 = path.Pt(1, 0)
		}
		u.Curve4(c1.X, c1.Y, c2.X, c2.Y, p1.X, p1.Y)
	}
	u.Close()

	m := path.Scale(e.RX, e.RY).Then(path.Rotate(e.Rotation)).Then(path.Translate(e.CX, e.CY))
	return path.TransformElements(u.Elements(), m)
}

// Bounds returns the exact bounding box of the ellipse.
func (e Ellipse) Bounds() path.Rect {
	sin, cos := math.Sincos(e.Rotation)
	rx, ry := math.Abs(e.RX), math.Abs(e.RY)
	hx := math.Hypot(rx*cos, ry*sin)
	hy := math.Hypot(rx*sin, ry*cos)
	return path.Rect{MinX: e.CX - hx, MinY: e.CY - hy, MaxX: e.CX + hx, MaxY: e.CY + hy}
}
