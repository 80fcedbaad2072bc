package path

import "math"

// arcRadiusEpsilon is the radius below which an arc degenerates to a line.
const arcRadiusEpsilon = 1e-30

// ArcTo appends an elliptical arc from the current point to (x, y),
// using SVG endpoint parametrization: radii rx and ry, x-axis rotation
// angle in radians, and the large-arc and sweep flags selecting one of
// the four candidate arcs.
//
// When the path is empty or its last subpath is closed, ArcTo starts a
// new subpath at (x, y). An end point equal to the current point omits
// the arc. A zero radius draws a straight line. Radii too small to span
// the two points are scaled up uniformly.
func (p *Path) ArcTo(rx, ry, angle float64, largeArc, sweep bool, x, y float64) {
	if !p.endsWithVertex() {
		p.MoveTo(x, y)
		return
	}

	end := Pt(x, y)
	if nearlyEqual(p.current, end) {
		return
	}

	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx < arcRadiusEpsilon || ry < arcRadiusEpsilon {
		p.LineTo(x, y)
		return
	}

	segs, ok := arcToCubics(p.current, rx, ry, angle, largeArc, sweep, end)
	if !ok {
		p.LineTo(x, y)
		return
	}
	for _, c := range segs {
		p.Curve4(c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.Point.X, c.Point.Y)
	}
}

// arcToCubics converts an endpoint-parametrized arc to center form and
// approximates it with cubic Beziers of at most 90 degrees each.
// See SVG 1.1 implementation notes F.6.5 and F.6.6.
func arcToCubics(p0 Point, rx, ry, phi float64, largeArc, sweep bool, p1 Point) ([]CubicTo, bool) {
	sinPhi, cosPhi := math.Sincos(phi)

	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	var coef float64
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta1 := math.Atan2(uy, ux)
	dtheta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}
	if math.IsNaN(cx) || math.IsNaN(cy) || math.IsNaN(dtheta) {
		return nil, false
	}

	// point and tangent on the rotated ellipse at parameter t
	at := func(t float64) (Point, Point) {
		sinT, cosT := math.Sincos(t)
		pt := Point{
			X: cx + rx*cosPhi*cosT - ry*sinPhi*sinT,
			Y: cy + rx*sinPhi*cosT + ry*cosPhi*sinT,
		}
		d := Point{
			X: -rx*cosPhi*sinT - ry*sinPhi*cosT,
			Y: -rx*sinPhi*sinT + ry*cosPhi*cosT,
		}
		return pt, d
	}

	n := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := dtheta / float64(n)
	alpha := 4.0 / 3.0 * math.Tan(step/4)

	out := make([]CubicTo, 0, n)
	t := theta1
	_, dFrom := at(t)
	from := p0
	for i := 0; i < n; i++ {
		to, dTo := at(t + step)
		if i == n-1 {
			to = p1
		}
		out = append(out, CubicTo{
			Control1: from.Add(dFrom.Mul(alpha)),
			Control2: to.Sub(dTo.Mul(alpha)),
			Point:    to,
		})
		t += step
		from, dFrom = to, dTo
	}
	return out, true
}
