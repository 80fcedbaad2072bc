package stroke

import (
	"math"
	"testing"

	"github.com/ralic/gnu-gsl-shell/path"
)

func line(x0, y0, x1, y1 float64) []path.Element {
	p := path.NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	return p.Elements()
}

func square(size float64) []path.Element {
	p := path.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(size, 0)
	p.LineTo(size, size)
	p.LineTo(0, size)
	p.Close()
	return p.Elements()
}

func nearRect(a, b path.Rect, tol float64) bool {
	return math.Abs(a.MinX-b.MinX) <= tol && math.Abs(a.MinY-b.MinY) <= tol &&
		math.Abs(a.MaxX-b.MaxX) <= tol && math.Abs(a.MaxY-b.MaxY) <= tol
}

func TestExpand_LineCaps(t *testing.T) {
	tests := []struct {
		name string
		cap  Cap
		want path.Rect
	}{
		{"butt", CapButt, path.Rect{MinX: 0, MinY: -1, MaxX: 10, MaxY: 1}},
		{"square", CapSquare, path.Rect{MinX: -1, MinY: -1, MaxX: 11, MaxY: 1}},
		{"round", CapRound, path.Rect{MinX: -1, MinY: -1, MaxX: 11, MaxY: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpander(Style{Width: 2, Cap: tt.cap})
			out := e.Expand(line(0, 0, 10, 0))

			if got := path.Bounds(out); !nearRect(got, tt.want, 1e-9) {
				t.Errorf("Bounds = %+v, want %+v", got, tt.want)
			}
			if _, ok := out[len(out)-1].(path.Close); !ok {
				t.Errorf("last element %T, want Close", out[len(out)-1])
			}
		})
	}
}

func TestExpand_ClosedSquareIsRing(t *testing.T) {
	e := NewExpander(Style{Width: 2, Join: JoinMiter, MiterLimit: 4})
	out := e.Expand(square(10))

	want := path.Rect{MinX: -1, MinY: -1, MaxX: 11, MaxY: 11}
	if got := path.Bounds(out); !nearRect(got, want, 1e-9) {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	p := path.NewPath()
	p.Append(out)
	subs := p.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("got %d contours, want 2", len(subs))
	}
	a0, a1 := signedArea(subs[0].Elements), signedArea(subs[1].Elements)
	if a0*a1 >= 0 {
		t.Errorf("contour areas %g and %g should have opposite signs", a0, a1)
	}
	if math.Abs(math.Abs(a0)-144) > 1e-9 {
		t.Errorf("outer contour area |%g|, want 144", a0)
	}
	if math.Abs(a1) >= math.Abs(a0) {
		t.Errorf("inner contour area |%g| not smaller than outer |%g|", a1, a0)
	}
}

func TestExpand_BevelJoinCutsCorner(t *testing.T) {
	p := path.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	corner := path.Pt(11, -1)

	miter := NewExpander(Style{Width: 2, Join: JoinMiter}).Expand(p.Elements())
	bevel := NewExpander(Style{Width: 2, Join: JoinBevel}).Expand(p.Elements())

	if !hasPoint(miter, corner) {
		t.Error("miter join should reach the outer corner")
	}
	if hasPoint(bevel, corner) {
		t.Error("bevel join should cut the outer corner")
	}
}

func hasPoint(elements []path.Element, want path.Point) bool {
	for _, el := range elements {
		if l, ok := el.(path.LineTo); ok && l.Point.Distance(want) < 1e-9 {
			return true
		}
	}
	return false
}

func TestExpand_CurvesAreFlattened(t *testing.T) {
	p := path.NewPath()
	p.MoveTo(0, 0)
	p.Curve4(0, 10, 10, 10, 10, 0)

	out := NewExpander(DefaultStyle()).Expand(p.Elements())
	for i, el := range out {
		switch el.(type) {
		case path.QuadTo, path.CubicTo:
			t.Fatalf("element %d is %T, want only lines", i, el)
		}
	}
	if len(out) < 8 {
		t.Errorf("got %d elements, expected a flattened curve", len(out))
	}
}

func TestExpand_DegenerateInput(t *testing.T) {
	e := NewExpander(DefaultStyle())
	p := path.NewPath()
	p.MoveTo(1, 1)
	p.MoveTo(2, 2)
	if out := e.Expand(p.Elements()); len(out) != 0 {
		t.Errorf("points without segments produced %d elements", len(out))
	}
}

func TestNewExpander_Defaults(t *testing.T) {
	e := NewExpander(Style{})
	if s := e.Style(); s.Width != 1 || s.MiterLimit != 4 {
		t.Errorf("Style() = %+v, want width 1 and miter limit 4", s)
	}
}

// signedArea is the shoelace area of a polygonal contour.
func signedArea(elements []path.Element) float64 {
	var pts []path.Point
	for _, el := range elements {
		switch e := el.(type) {
		case path.MoveTo:
			pts = append(pts, e.Point)
		case path.LineTo:
			pts = append(pts, e.Point)
		}
	}
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].Cross(pts[j])
	}
	return a / 2
}
