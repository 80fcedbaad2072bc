package draw

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/ralic/gnu-gsl-shell/path"
)

// Rasterize renders the filled outlines of shapes into a coverage mask
// of the given size. Each shape is filled with the nonzero rule and
// composited over the previous ones. Open subpaths are closed
// implicitly.
func Rasterize(width, height int, shapes ...Drawable) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return mask
	}
	ras := vector.NewRasterizer(width, height)
	for _, s := range shapes {
		els := s.Elements()
		if len(els) == 0 {
			continue
		}
		ras.Reset(width, height)
		fillElements(ras, els)
		ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	}
	return mask
}

// BoundsOf returns the union of the bounds of shapes. Shapes without
// outline are skipped; with none left the result is empty.
func BoundsOf(shapes ...Drawable) path.Rect {
	var (
		b    path.Rect
		seen bool
	)
	for _, s := range shapes {
		if len(s.Elements()) == 0 {
			continue
		}
		if !seen {
			b, seen = s.Bounds(), true
			continue
		}
		b = b.Union(s.Bounds())
	}
	return b
}

func fillElements(ras *vector.Rasterizer, elements []path.Element) {
	f := func(p path.Point) (float32, float32) { return float32(p.X), float32(p.Y) }
	open := false
	for _, el := range elements {
		switch e := el.(type) {
		case path.MoveTo:
			if open {
				ras.ClosePath()
			}
			x, y := f(e.Point)
			ras.MoveTo(x, y)
			open = true
		case path.LineTo:
			x, y := f(e.Point)
			ras.LineTo(x, y)
		case path.QuadTo:
			cx, cy := f(e.Control)
			x, y := f(e.Point)
			ras.QuadTo(cx, cy, x, y)
		case path.CubicTo:
			c1x, c1y := f(e.Control1)
			c2x, c2y := f(e.Control2)
			x, y := f(e.Point)
			ras.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case path.Close:
			if open {
				ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		ras.ClosePath()
	}
}
