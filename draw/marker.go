package draw

import (
	"github.com/ralic/gnu-gsl-shell/internal/stroke"
	"github.com/ralic/gnu-gsl-shell/marker"
	"github.com/ralic/gnu-gsl-shell/path"
)

// DefaultMarkerSize is the marker size used when none is given.
const DefaultMarkerSize = 5.0

// DefaultMarkerStrokeWidth is the stroke width of stroke-only symbols.
const DefaultMarkerStrokeWidth = 1.0

// Marker places a catalog symbol of the given size at (X, Y).
type Marker struct {
	X, Y   float64
	Symbol string
	Size   float64
}

// Transform maps the unit symbol box onto the marker.
func (m Marker) Transform() path.Affine {
	return path.Scale(m.Size, m.Size).Then(path.Translate(m.X, m.Y))
}

// MarkerShape is a constructed marker: either *PlainSymbol or
// *StrokedSymbol.
type MarkerShape interface {
	Drawable
	Marker() Marker
	Stroked() bool
	isMarkerShape()
}

// NewMarkerShape resolves m.Symbol in c and returns the shape. Stroke-only
// symbols are wrapped in a StrokedSymbol. Marker.Symbol of the result
// holds the resolved name.
func NewMarkerShape(m Marker, c *marker.Catalog) MarkerShape {
	sym := c.Lookup(m.Symbol)
	m.Symbol = sym.Name
	plain := &PlainSymbol{marker: m, symbol: sym}
	if sym.Stroke {
		return NewStrokedSymbol(plain, DefaultMarkerStrokeWidth)
	}
	return plain
}

// PlainSymbol is a fillable marker.
type PlainSymbol struct {
	marker Marker
	symbol marker.Symbol
}

func (*PlainSymbol) isMarkerShape() {}

// Marker returns the placement.
func (s *PlainSymbol) Marker() Marker { return s.marker }

// Symbol returns the resolved catalog symbol.
func (s *PlainSymbol) Symbol() marker.Symbol { return s.symbol }

// Stroked reports false.
func (s *PlainSymbol) Stroked() bool { return false }

// Elements returns the symbol outline placed on the marker.
func (s *PlainSymbol) Elements() []path.Element {
	return path.TransformElements(s.symbol.Outline, s.marker.Transform())
}

// Bounds returns the bounds of the placed outline.
func (s *PlainSymbol) Bounds() path.Rect {
	return path.Bounds(s.Elements())
}

// StrokedSymbol renders its symbol as a stroke of the given width. It
// owns the wrapped symbol.
type StrokedSymbol struct {
	inner *PlainSymbol
	style stroke.Style
}

// NewStrokedSymbol wraps s in a stroke of the given width.
func NewStrokedSymbol(s *PlainSymbol, width float64) *StrokedSymbol {
	style := stroke.DefaultStyle()
	style.Width = width
	return &StrokedSymbol{inner: s, style: style}
}

func (*StrokedSymbol) isMarkerShape() {}

// Marker returns the placement.
func (s *StrokedSymbol) Marker() Marker { return s.inner.marker }

// Symbol returns the resolved catalog symbol.
func (s *StrokedSymbol) Symbol() marker.Symbol { return s.inner.symbol }

// Stroked reports true.
func (s *StrokedSymbol) Stroked() bool { return true }

// Width returns the stroke width.
func (s *StrokedSymbol) Width() float64 { return s.style.Width }

// Elements returns the fill outline of the stroked symbol.
func (s *StrokedSymbol) Elements() []path.Element {
	return stroke.NewExpander(s.style).Expand(s.inner.Elements())
}

// Bounds returns the bounds of the stroke outline.
func (s *StrokedSymbol) Bounds() path.Rect {
	return path.Bounds(s.Elements())
}
