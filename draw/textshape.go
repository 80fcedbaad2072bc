package draw

import (
	"golang.org/x/text/unicode/norm"

	"github.com/ralic/gnu-gsl-shell/path"
)

// TextMetrics describes a measured line of text. Ascent and Descent are
// positive distances from the baseline.
type TextMetrics struct {
	Advance float64
	Ascent  float64
	Descent float64
}

// TextMeasurer measures and outlines a single line of text at a font
// size in units per em. Outlines start at the origin with the baseline
// on y=0 and y growing downward.
type TextMeasurer interface {
	Measure(text string, size float64) (TextMetrics, error)
	Outline(text string, size float64) ([]path.Element, error)
}

// TextShape is a line of text with its baseline starting at (X, Y).
// Scale is the font size. Text is stored in Unicode NFC.
type TextShape struct {
	X, Y  float64
	Text  string
	Scale float64

	measurer TextMeasurer
}

// NewTextShape returns a text shape measured by m, or by
// DefaultTextMeasurer when m is nil.
func NewTextShape(x, y float64, text string, scale float64, m TextMeasurer) *TextShape {
	return &TextShape{
		X:        x,
		Y:        y,
		Text:     norm.NFC.String(text),
		Scale:    scale,
		measurer: m,
	}
}

func (t *TextShape) textMeasurer() TextMeasurer {
	if t.measurer != nil {
		return t.measurer
	}
	return DefaultTextMeasurer()
}

// Metrics measures the text.
func (t *TextShape) Metrics() (TextMetrics, error) {
	return t.textMeasurer().Measure(t.Text, t.Scale)
}

// Bounds returns the line box: the advance horizontally and the font
// ascent and descent vertically. A shape that cannot be measured has
// an empty box at its origin.
func (t *TextShape) Bounds() path.Rect {
	m, err := t.Metrics()
	if err != nil {
		Logger().Warn("draw: text measurement failed", "text", t.Text, "err", err)
		return path.Rect{MinX: t.X, MinY: t.Y, MaxX: t.X, MaxY: t.Y}
	}
	return path.Rect{
		MinX: t.X,
		MinY: t.Y - m.Ascent,
		MaxX: t.X + m.Advance,
		MaxY: t.Y + m.Descent,
	}
}

// Elements returns the glyph outlines placed at (X, Y).
func (t *TextShape) Elements() []path.Element {
	els, err := t.textMeasurer().Outline(t.Text, t.Scale)
	if err != nil {
		Logger().Warn("draw: text outline failed", "text", t.Text, "err", err)
		return nil
	}
	return path.TransformElements(els, path.Translate(t.X, t.Y))
}
