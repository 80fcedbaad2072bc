package marker

import (
	"math"

	"github.com/ralic/gnu-gsl-shell/path"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

func builtins() []Symbol {
	return []Symbol{
		{Name: "circle", Outline: circle()},
		{Name: "square", Outline: polygon(-0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5)},
		{Name: "diamond", Outline: polygon(0, -0.5, 0.5, 0, 0, 0.5, -0.5, 0)},
		{Name: "triangle", Stroke: true, Outline: triangle()},
		{Name: "plus", Stroke: true, Outline: segments(-0.5, 0, 0.5, 0, 0, -0.5, 0, 0.5)},
		{Name: "cross", Stroke: true, Outline: segments(-0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5)},
		{Name: "asterisk", Stroke: true, Outline: asterisk()},
		{Name: "wedge", Stroke: true, Outline: wedge()},
	}
}

func circle() []path.Element {
	const r, k = 0.5, 0.5 * kappa
	p := path.NewPath()
	p.MoveTo(r, 0)
	p.Curve4(r, k, k, r, 0, r)
	p.Curve4(-k, r, -r, k, -r, 0)
	p.Curve4(-r, -k, -k, -r, 0, -r)
	p.Curve4(k, -r, r, -k, r, 0)
	p.Close()
	return p.Elements()
}

// polygon returns a closed outline through the coordinate pairs.
func polygon(xy ...float64) []path.Element {
	p := path.NewPath()
	for i := 0; i+1 < len(xy); i += 2 {
		p.LineTo(xy[i], xy[i+1])
	}
	p.Close()
	return p.Elements()
}

// segments returns one open subpath per group of four coordinates.
func segments(xy ...float64) []path.Element {
	p := path.NewPath()
	for i := 0; i+3 < len(xy); i += 4 {
		p.MoveTo(xy[i], xy[i+1])
		p.LineTo(xy[i+2], xy[i+3])
	}
	return p.Elements()
}

func triangle() []path.Element {
	h := 0.5 * math.Sqrt(3) / 2
	return polygon(0, -0.5, h, 0.25, -h, 0.25)
}

func asterisk() []path.Element {
	p := path.NewPath()
	for i := 0; i < 3; i++ {
		sin, cos := math.Sincos(math.Pi/2 + float64(i)*math.Pi/3)
		p.MoveTo(-0.5*cos, -0.5*sin)
		p.LineTo(0.5*cos, 0.5*sin)
	}
	return p.Elements()
}

func wedge() []path.Element {
	p := path.NewPath()
	p.MoveTo(-0.5, -0.5)
	p.LineTo(0, 0.5)
	p.LineTo(0.5, -0.5)
	return p.Elements()
}
