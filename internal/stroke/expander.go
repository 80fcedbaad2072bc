package stroke

import (
	"math"

	"github.com/ralic/gnu-gsl-shell/path"
)

type point = path.Point

// Cap specifies the shape of open subpath endpoints.
type Cap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt Cap = iota
	// CapRound ends the stroke with a half circle.
	CapRound
	// CapSquare extends the stroke by half the width past the endpoint.
	CapSquare
)

// Join specifies the shape of corners between segments.
type Join int

const (
	// JoinMiter extends the outer edges until they meet, up to MiterLimit.
	JoinMiter Join = iota
	// JoinRound rounds the corner with a circular arc.
	JoinRound
	// JoinBevel cuts the corner with a straight line.
	JoinBevel
)

// Style describes the stroke.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// DefaultStyle returns a 1-unit wide stroke with butt caps and miter
// joins limited at 4.
func DefaultStyle() Style {
	return Style{Width: 1, Cap: CapButt, Join: JoinMiter, MiterLimit: 4}
}

// Expander converts stroked outlines to fill outlines.
// An Expander is not safe for concurrent use.
type Expander struct {
	style     Style
	tolerance float64

	forward  *path.Path
	backward []point // backward offset points in drawing order
	out      *path.Path

	startPt   point
	startNorm point
	startTan  point
	lastPt    point
	lastTan   point
	lastNorm  point
	started   bool

	joinThresh float64
}

// NewExpander creates an expander for the given style. A non-positive
// width falls back to 1.
func NewExpander(style Style) *Expander {
	if style.Width <= 0 {
		style.Width = 1
	}
	if style.MiterLimit <= 0 {
		style.MiterLimit = 4
	}
	return &Expander{style: style, tolerance: 0.25}
}

// SetTolerance sets the curve flattening tolerance.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Style returns the stroke style.
func (e *Expander) Style() Style {
	return e.style
}

// Expand returns the fill outline of the stroked elements.
func (e *Expander) Expand(elements []path.Element) []path.Element {
	e.out = path.NewPath()
	e.resetSubpath()
	e.joinThresh = 2 * e.tolerance / e.style.Width

	for _, el := range elements {
		switch v := el.(type) {
		case path.MoveTo:
			e.finishOpen()
			e.startPt = v.Point
			e.lastPt = v.Point
		case path.LineTo:
			e.lineTo(v.Point)
		case path.QuadTo:
			pts := flattenQuad(e.lastPt, v.Control, v.Point, e.tolerance)
			for _, p := range pts {
				e.lineTo(p)
			}
		case path.CubicTo:
			pts := flattenCubic(e.lastPt, v.Control1, v.Control2, v.Point, e.tolerance)
			for _, p := range pts {
				e.lineTo(p)
			}
		case path.Close:
			if e.lastPt != e.startPt {
				e.lineTo(e.startPt)
			}
			e.finishClosed()
			e.lastPt = e.startPt
		}
	}
	e.finishOpen()
	return e.out.Elements()
}

func (e *Expander) resetSubpath() {
	e.forward = path.NewPath()
	e.backward = e.backward[:0]
	e.started = false
}

func perp(v point) point { return point{X: -v.Y, Y: v.X} }

// normal returns the left-hand normal of tan scaled to half the width.
func (e *Expander) normal(tan point) point {
	return perp(tan).Mul(0.5 * e.style.Width / tan.Length())
}

func (e *Expander) lineTo(p point) {
	tan := p.Sub(e.lastPt)
	if tan.Dot(tan) < 1e-20 {
		return
	}
	e.join(tan)
	norm := e.normal(tan)
	e.forward.LineTo(p.Sub(norm).X, p.Sub(norm).Y)
	e.backward = append(e.backward, p.Add(norm))
	e.lastPt = p
	e.lastTan = tan
	e.lastNorm = norm
}

// join connects the previous segment to one starting with tangent tan.
func (e *Expander) join(tan point) {
	norm := e.normal(tan)
	p0 := e.lastPt

	if !e.started {
		e.started = true
		fp := p0.Sub(norm)
		e.forward.MoveTo(fp.X, fp.Y)
		e.backward = append(e.backward, p0.Add(norm))
		e.startTan = tan
		e.startNorm = norm
		return
	}

	ab, cd := e.lastTan, tan
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.connect(p0, norm)
		return
	}

	switch e.style.Join {
	case JoinMiter:
		if 2*hypot < (hypot+dot)*e.style.MiterLimit*e.style.MiterLimit {
			e.miter(p0, norm, ab, cd, cross)
		}
	case JoinRound:
		angle := math.Atan2(cross, dot)
		if angle > 0 {
			e.arc(p0, e.lastNorm.Mul(-1), angle, func(q point) { e.forward.LineTo(q.X, q.Y) })
		} else {
			e.arc(p0, e.lastNorm, angle, func(q point) { e.backward = append(e.backward, q) })
		}
	}
	e.connect(p0, norm)
}

func (e *Expander) connect(p0, norm point) {
	fp := p0.Sub(norm)
	e.forward.LineTo(fp.X, fp.Y)
	e.backward = append(e.backward, p0.Add(norm))
}

// miter adds the intersection of the outer offset edges.
func (e *Expander) miter(p0, norm, ab, cd point, cross float64) {
	switch {
	case cross > 0:
		last, this := p0.Sub(e.lastNorm), p0.Sub(norm)
		h := ab.Cross(this.Sub(last)) / cross
		m := this.Sub(cd.Mul(h))
		e.forward.LineTo(m.X, m.Y)
	case cross < 0:
		last, this := p0.Add(e.lastNorm), p0.Add(norm)
		h := ab.Cross(this.Sub(last)) / cross
		e.backward = append(e.backward, this.Sub(cd.Mul(h)))
	}
}

// arc emits points on the circle around c, starting at c+from and
// turning by angle radians.
func (e *Expander) arc(c, from point, angle float64, emit func(point)) {
	r := from.Length()
	a0 := math.Atan2(from.Y, from.X)
	n := int(math.Ceil(math.Abs(angle) / (math.Pi / 8)))
	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(a0 + angle*float64(i)/float64(n))
		emit(point{X: c.X + r*cos, Y: c.Y + r*sin})
	}
}

// finishOpen emits the current open subpath with caps.
func (e *Expander) finishOpen() {
	if !e.started {
		e.resetSubpath()
		return
	}
	e.out.Append(e.forward.Elements())
	e.cap(e.lastPt, e.lastNorm.Mul(-1), e.lastTan)
	for i := len(e.backward) - 1; i >= 0; i-- {
		e.out.LineTo(e.backward[i].X, e.backward[i].Y)
	}
	e.cap(e.startPt, e.startNorm, e.startTan.Mul(-1))
	e.out.Close()
	e.resetSubpath()
}

// cap joins the two offset sides at center. norm points at the side
// being left, dir points away from the stroke.
func (e *Expander) cap(center, norm, dir point) {
	switch e.style.Cap {
	case CapRound:
		e.arc(center, norm, math.Pi*sign(norm.Cross(dir)), func(q point) { e.out.LineTo(q.X, q.Y) })
	case CapSquare:
		ext := dir.Mul(0.5 * e.style.Width / dir.Length())
		a, b := center.Add(norm).Add(ext), center.Sub(norm).Add(ext)
		e.out.LineTo(a.X, a.Y)
		e.out.LineTo(b.X, b.Y)
	}
	other := center.Sub(norm)
	e.out.LineTo(other.X, other.Y)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// finishClosed emits a closed subpath as two opposite contours.
func (e *Expander) finishClosed() {
	if !e.started {
		e.resetSubpath()
		return
	}
	e.join(e.startTan)

	e.out.Append(e.forward.Elements())
	e.out.Close()

	last := e.backward[len(e.backward)-1]
	e.out.MoveTo(last.X, last.Y)
	for i := len(e.backward) - 2; i >= 0; i-- {
		e.out.LineTo(e.backward[i].X, e.backward[i].Y)
	}
	e.out.Close()
	e.resetSubpath()
}
