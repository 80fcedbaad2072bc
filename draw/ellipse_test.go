package draw

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ralic/gnu-gsl-shell/path"
)

func TestCircle_EqualsEllipse(t *testing.T) {
	reg := NewRegistry()
	ch, _ := reg.Circle(3, -1, 2.5)
	eh, _ := reg.Ellipse(3, -1, 2.5, 2.5)

	c, _ := ch.Ellipse()
	e, _ := eh.Ellipse()
	if c != e {
		t.Errorf("circle %+v != ellipse %+v", c, e)
	}
	if d := cmp.Diff(e.Elements(), c.Elements()); d != "" {
		t.Errorf("outlines differ (-ellipse +circle):\n%s", d)
	}
}

func TestEllipse_Elements(t *testing.T) {
	e := NewEllipse(10, 20, 4, 2)
	els := e.Elements()
	if len(els) != 6 {
		t.Fatalf("got %d elements, want move, 4 cubics and close", len(els))
	}
	if m, ok := els[0].(path.MoveTo); !ok || m.Point != path.Pt(14, 20) {
		t.Errorf("first element = %+v, want MoveTo(14, 20)", els[0])
	}
	for i := 1; i <= 4; i++ {
		c, ok := els[i].(path.CubicTo)
		if !ok {
			t.Fatalf("element %d is %T, want CubicTo", i, els[i])
		}
		// End points lie on the ellipse.
		dx, dy := (c.Point.X-10)/4, (c.Point.Y-20)/2
		if math.Abs(dx*dx+dy*dy-1) > 1e-9 {
			t.Errorf("element %d ends off the ellipse at %v", i, c.Point)
		}
	}
	if _, ok := els[5].(path.Close); !ok {
		t.Errorf("last element is %T, want Close", els[5])
	}
}

func TestEllipse_Clockwise(t *testing.T) {
	ccw := NewEllipse(0, 0, 1, 1)
	cw := ccw
	cw.Clockwise = true

	second := func(e Ellipse) path.Point { return e.Elements()[1].(path.CubicTo).Point }
	approx := cmpopts.EquateApprox(0, 1e-12)
	if d := cmp.Diff(path.Pt(0, 1), second(ccw), approx); d != "" {
		t.Errorf("counter-clockwise quarter (-want +got):\n%s", d)
	}
	if d := cmp.Diff(path.Pt(0, -1), second(cw), approx); d != "" {
		t.Errorf("clockwise quarter (-want +got):\n%s", d)
	}
}

func TestEllipse_Bounds(t *testing.T) {
	tests := []struct {
		name string
		e    Ellipse
		want path.Rect
	}{
		{"axis aligned", NewEllipse(1, 1, 3, 2), path.Rect{MinX: -2, MinY: -1, MaxX: 4, MaxY: 3}},
		{"rotated quarter", Ellipse{RX: 3, RY: 2, Rotation: math.Pi / 2}, path.Rect{MinX: -2, MinY: -3, MaxX: 2, MaxY: 3}},
		{"negative radius", NewEllipse(0, 0, -1, 1), path.Rect{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := cmp.Diff(tt.want, tt.e.Bounds(), cmpopts.EquateApprox(0, 1e-12)); d != "" {
				t.Errorf("(-want +got):\n%s", d)
			}
		})
	}
}
