package draw

import (
	"strings"
	"testing"

	"github.com/ralic/gnu-gsl-shell/marker"
	"github.com/ralic/gnu-gsl-shell/path"
)

func TestMarker_StrokeOnlySymbolIsStroked(t *testing.T) {
	reg := NewRegistry()
	h, err := reg.Marker(0, 0, "triangle", 10)
	if err != nil {
		t.Fatal(err)
	}
	ms, ok := h.MarkerShape()
	if !ok {
		t.Fatal("marker handle has no MarkerShape")
	}
	s, ok := ms.(*StrokedSymbol)
	if !ok {
		t.Fatalf("triangle marker is %T, want *StrokedSymbol", ms)
	}
	if !s.Stroked() || s.Width() != DefaultMarkerStrokeWidth {
		t.Errorf("Stroked() = %v, Width() = %g", s.Stroked(), s.Width())
	}
	if got := s.Marker(); got != (Marker{X: 0, Y: 0, Symbol: "triangle", Size: 10}) {
		t.Errorf("Marker() = %+v", got)
	}
	if sym := s.Symbol(); sym.Name != "triangle" || !sym.Stroke {
		t.Errorf("Symbol() = %q stroke=%v, want stroke-only triangle", sym.Name, sym.Stroke)
	}
}

func TestMarker_StrokedLeavesCentreEmpty(t *testing.T) {
	reg := NewRegistry()
	tri, _ := reg.Marker(16, 16, "triangle", 20)
	sq, _ := reg.Marker(16, 16, "square", 20)

	triMask := Rasterize(32, 32, tri.Drawable())
	sqMask := Rasterize(32, 32, sq.Drawable())

	if a := triMask.AlphaAt(16, 16).A; a != 0 {
		t.Errorf("stroked triangle centre alpha = %d, want 0", a)
	}
	if a := sqMask.AlphaAt(16, 16).A; a != 0xff {
		t.Errorf("filled square centre alpha = %d, want 255", a)
	}
	// The bottom edge of the triangle sits at y=21.
	if triMask.AlphaAt(16, 20).A == 0 && triMask.AlphaAt(16, 21).A == 0 {
		t.Error("stroked triangle edge not painted")
	}
}

func TestMarker_Defaults(t *testing.T) {
	reg := NewRegistry()
	h, _ := reg.Marker(1, 2)
	ms, _ := h.MarkerShape()
	p, ok := ms.(*PlainSymbol)
	if !ok {
		t.Fatalf("default marker is %T, want *PlainSymbol", ms)
	}
	want := Marker{X: 1, Y: 2, Symbol: marker.DefaultSymbol, Size: DefaultMarkerSize}
	if p.Marker() != want {
		t.Errorf("Marker() = %+v, want %+v", p.Marker(), want)
	}
	if sym := p.Symbol(); sym.Name != marker.DefaultSymbol || sym.Stroke || len(sym.Outline) == 0 {
		t.Errorf("Symbol() = %+v, want filled default symbol", sym)
	}
	b := p.Bounds()
	if !nearly(b.MinX, -1.5) || !nearly(b.MaxX, 3.5) || !nearly(b.MinY, -0.5) || !nearly(b.MaxY, 4.5) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestMarker_UnknownSymbolFallsBack(t *testing.T) {
	reg := NewRegistry()
	h, _ := reg.Marker(0, 0, "hexagon", 4)
	ms, _ := h.MarkerShape()
	if ms.Stroked() || ms.Marker().Symbol != marker.DefaultSymbol {
		t.Errorf("unknown symbol resolved to %+v", ms.Marker())
	}
}

func TestMarker_CustomCatalog(t *testing.T) {
	c, err := marker.LoadCatalog(strings.NewReader(`
default: square
symbols:
  - name: bar
    stroke: true
    data: "M -0.5 0 L 0.5 0"
`))
	if err != nil {
		t.Fatal(err)
	}
	reg := NewRegistry(WithCatalog(c))
	h, _ := reg.Marker(0, 0, "bar", 10)
	ms, _ := h.MarkerShape()
	if !ms.Stroked() {
		t.Fatal("bar should be stroked")
	}
	want := path.Rect{MinX: -5, MinY: -0.5, MaxX: 5, MaxY: 0.5}
	if got := ms.Bounds(); !nearly(got.MinX, want.MinX) || !nearly(got.MaxX, want.MaxX) ||
		!nearly(got.MinY, want.MinY) || !nearly(got.MaxY, want.MaxY) {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	d, _ := reg.Marker(0, 0)
	dm, _ := d.MarkerShape()
	if dm.Marker().Symbol != "square" {
		t.Errorf("default symbol = %q, want square", dm.Marker().Symbol)
	}
}

func nearly(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
