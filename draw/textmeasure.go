package draw

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/ralic/gnu-gsl-shell/internal/cache"
	"github.com/ralic/gnu-gsl-shell/path"
)

// textCacheSize bounds the measured and outlined strings kept per
// measurer.
const textCacheSize = 256

type textKey struct {
	text string
	size float64
}

// GoTextMeasurer shapes text with the HarfBuzz shaper from
// go-text/typesetting and reads glyph outlines and vertical metrics with
// x/image/font/sfnt. It is safe for concurrent use.
type GoTextMeasurer struct {
	font *font.Font     // go-text font, read-only
	sfnt *opentype.Font // x/image font, read-only

	// HarfbuzzShaper and sfnt.Buffer are not safe for concurrent use.
	shapers sync.Pool
	buffers sync.Pool

	metrics  *cache.Cache[textKey, TextMetrics]
	outlines *cache.Cache[textKey, []path.Element]
}

// NewGoTextMeasurer parses a TrueType or OpenType font.
func NewGoTextMeasurer(data []byte) (*GoTextMeasurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("draw: failed to parse font: %w", err)
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("draw: failed to parse font: %w", err)
	}
	return &GoTextMeasurer{
		font:    face.Font,
		sfnt:    sf,
		shapers: sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
		buffers: sync.Pool{New: func() any { return &sfnt.Buffer{} }},

		metrics:  cache.New[textKey, TextMetrics](textCacheSize),
		outlines: cache.New[textKey, []path.Element](textCacheSize),
	}, nil
}

var (
	defaultMeasurerOnce sync.Once
	defaultMeasurer     TextMeasurer
)

// DefaultTextMeasurer returns a shared GoTextMeasurer over the Go
// Regular font.
func DefaultTextMeasurer() TextMeasurer {
	defaultMeasurerOnce.Do(func() {
		m, err := NewGoTextMeasurer(goregular.TTF)
		if err != nil {
			Logger().Warn("draw: default font unavailable", "err", err)
			defaultMeasurer = failedMeasurer{err}
			return
		}
		defaultMeasurer = m
	})
	return defaultMeasurer
}

type failedMeasurer struct{ err error }

func (f failedMeasurer) Measure(string, float64) (TextMetrics, error)   { return TextMetrics{}, f.err }
func (f failedMeasurer) Outline(string, float64) ([]path.Element, error) { return nil, f.err }

func (m *GoTextMeasurer) shape(text string, size float64) []shaping.Glyph {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		// font.Face is not safe for concurrent use; it is cheap to wrap.
		Face:     font.NewFace(m.font),
		Size:     fixed.Int26_6(size * 64),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}
	hb := m.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shapers.Put(hb)
	return out.Glyphs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Measure implements TextMeasurer.
func (m *GoTextMeasurer) Measure(text string, size float64) (TextMetrics, error) {
	key := textKey{text, size}
	if tm, ok := m.metrics.Get(key); ok {
		return tm, nil
	}
	tm, err := m.measure(text, size)
	if err != nil {
		return TextMetrics{}, err
	}
	m.metrics.Set(key, tm)
	return tm, nil
}

func (m *GoTextMeasurer) measure(text string, size float64) (TextMetrics, error) {
	var tm TextMetrics
	for _, g := range m.shape(text, size) {
		tm.Advance += fixedToFloat(g.Advance)
	}

	buf := m.buffers.Get().(*sfnt.Buffer)
	defer m.buffers.Put(buf)
	fm, err := m.sfnt.Metrics(buf, fixed.Int26_6(size*64), xfont.HintingNone)
	if err != nil {
		return TextMetrics{}, fmt.Errorf("draw: font metrics: %w", err)
	}
	tm.Ascent = math.Abs(fixedToFloat(fm.Ascent))
	tm.Descent = math.Abs(fixedToFloat(fm.Descent))
	return tm, nil
}

// Outline implements TextMeasurer. The returned slice is shared and
// must not be modified.
func (m *GoTextMeasurer) Outline(text string, size float64) ([]path.Element, error) {
	key := textKey{text, size}
	if els, ok := m.outlines.Get(key); ok {
		return els, nil
	}
	els, err := m.outline(text, size)
	if err != nil {
		return nil, err
	}
	m.outlines.Set(key, els)
	return els, nil
}

func (m *GoTextMeasurer) outline(text string, size float64) ([]path.Element, error) {
	glyphs := m.shape(text, size)
	buf := m.buffers.Get().(*sfnt.Buffer)
	defer m.buffers.Put(buf)

	ppem := fixed.Int26_6(size * 64)
	p := path.NewPath()
	var pen float64
	for _, g := range glyphs {
		segs, err := m.sfnt.LoadGlyph(buf, sfnt.GlyphIndex(g.GlyphID), ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("draw: glyph %d: %w", g.GlyphID, err)
		}
		dx := pen + fixedToFloat(g.XOffset)
		dy := -fixedToFloat(g.YOffset)
		pt := func(a fixed.Point26_6) (float64, float64) {
			return dx + fixedToFloat(a.X), dy + fixedToFloat(a.Y)
		}
		for _, s := range segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				if p.TotalVertices() > 0 {
					p.Close()
				}
				x, y := pt(s.Args[0])
				p.MoveTo(x, y)
			case sfnt.SegmentOpLineTo:
				x, y := pt(s.Args[0])
				p.LineTo(x, y)
			case sfnt.SegmentOpQuadTo:
				cx, cy := pt(s.Args[0])
				x, y := pt(s.Args[1])
				p.Curve3(cx, cy, x, y)
			case sfnt.SegmentOpCubeTo:
				c1x, c1y := pt(s.Args[0])
				c2x, c2y := pt(s.Args[1])
				x, y := pt(s.Args[2])
				p.Curve4(c1x, c1y, c2x, c2y, x, y)
			}
		}
		pen += fixedToFloat(g.Advance)
	}
	if p.TotalVertices() > 0 {
		p.Close()
	}
	return p.Elements(), nil
}
