package path

import (
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// Affine is a 2D affine transformation.
// The zero value is not usable; start from Identity.
type Affine struct {
	m mt.Transform
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{m: mt.Identity()}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Affine {
	m := mt.Identity()
	m[0][2] = tx
	m[1][2] = ty
	return Affine{m: m}
}

// Scale returns a scaling by (sx, sy) about the origin.
func Scale(sx, sy float64) Affine {
	m := mt.Identity()
	m[0][0] = sx
	m[1][1] = sy
	return Affine{m: m}
}

// Rotate returns a counter-clockwise rotation by angle radians about
// the origin.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	m := mt.Identity()
	m[0][0], m[0][1] = cos, -sin
	m[1][0], m[1][1] = sin, cos
	return Affine{m: m}
}

// Then returns the transformation that applies a first and b second.
func (a Affine) Then(b Affine) Affine {
	return Affine{m: mt.MultiplyTransforms(b.m, a.m)}
}

// Apply transforms a point.
func (a Affine) Apply(p Point) Point {
	x, y := a.m.Apply(p.X, p.Y)
	return Point{X: x, Y: y}
}

// TransformElements maps every point of an element list through a.
func TransformElements(elements []Element, a Affine) []Element {
	out := make([]Element, len(elements))
	for i, el := range elements {
		switch e := el.(type) {
		case MoveTo:
			out[i] = MoveTo{Point: a.Apply(e.Point)}
		case LineTo:
			out[i] = LineTo{Point: a.Apply(e.Point)}
		case QuadTo:
			out[i] = QuadTo{Control: a.Apply(e.Control), Point: a.Apply(e.Point)}
		case CubicTo:
			out[i] = CubicTo{
				Control1: a.Apply(e.Control1),
				Control2: a.Apply(e.Control2),
				Point:    a.Apply(e.Point),
			}
		default:
			out[i] = el
		}
	}
	return out
}

// Transform returns a new path with every point mapped through a.
func (p *Path) Transform(a Affine) *Path {
	result := NewPath()
	result.Append(TransformElements(p.elements, a))
	return result
}
