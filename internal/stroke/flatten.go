package stroke

import "math"

// flattenQuad returns points approximating the quadratic curve, p0
// excluded and p2 included.
func flattenQuad(p0, p1, p2 point, tol float64) []point {
	var out []point
	flattenQuadRec(p0, p1, p2, tol, 0, &out)
	return out
}

func flattenQuadRec(p0, p1, p2 point, tol float64, depth int, out *[]point) {
	if depth >= maxDepth || distanceToSegment(p1, p0, p2) < tol {
		*out = append(*out, p2)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	m := q0.Lerp(q1, 0.5)
	flattenQuadRec(p0, q0, m, tol, depth+1, out)
	flattenQuadRec(m, q1, p2, tol, depth+1, out)
}

// flattenCubic returns points approximating the cubic curve, p0
// excluded and p3 included.
func flattenCubic(p0, p1, p2, p3 point, tol float64) []point {
	var out []point
	flattenCubicRec(p0, p1, p2, p3, tol, 0, &out)
	return out
}

func flattenCubicRec(p0, p1, p2, p3 point, tol float64, depth int, out *[]point) {
	d := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxDepth || d < tol {
		*out = append(*out, p3)
		return
	}
	// de Casteljau split at t=0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	flattenCubicRec(p0, q0, r0, s, tol, depth+1, out)
	flattenCubicRec(s, r1, q2, p3, tol, depth+1, out)
}

const maxDepth = 16

// distanceToSegment is the distance from p to the segment ab.
func distanceToSegment(p, a, b point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
