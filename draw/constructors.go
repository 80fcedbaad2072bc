package draw

import (
	"math"

	"github.com/ralic/gnu-gsl-shell/path"
)

// args reads constructor arguments by 1-based position.
type args struct {
	op   string
	vals []any
}

func (a args) has(pos int) bool {
	return pos <= len(a.vals) && a.vals[pos-1] != nil
}

func (a args) number(pos int) (float64, error) {
	if !a.has(pos) {
		return 0, &ArgumentError{Op: a.op, Position: pos, Want: "number", Err: ErrMissingArgument}
	}
	v, ok := toFloat(a.vals[pos-1])
	if !ok {
		return 0, &ArgumentError{Op: a.op, Position: pos, Want: "number", Got: a.vals[pos-1], Err: ErrMissingArgument}
	}
	return v, nil
}

func (a args) finite(pos int) (float64, error) {
	v, err := a.number(pos)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ArgumentError{Op: a.op, Position: pos, Want: "finite number", Got: v, Err: ErrInvalidArgument}
	}
	return v, nil
}

func (a args) str(pos int) (string, error) {
	if !a.has(pos) {
		return "", &ArgumentError{Op: a.op, Position: pos, Want: "string", Err: ErrMissingArgument}
	}
	s, ok := a.vals[pos-1].(string)
	if !ok {
		return "", &ArgumentError{Op: a.op, Position: pos, Want: "string", Got: a.vals[pos-1], Err: ErrMissingArgument}
	}
	return s, nil
}

// numbers reads n numbers starting at position 1.
func (a args) numbers(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := a.number(i + 1)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Path creates a path. With two finite numbers it starts with a move_to
// to that point; with none it starts empty.
func (r *Registry) Path(vals ...any) (*Handle, error) {
	a := args{op: "path", vals: vals}
	buf := path.NewPath()
	if a.has(1) || a.has(2) {
		x, err := a.finite(1)
		if err != nil {
			return nil, err
		}
		y, err := a.finite(2)
		if err != nil {
			return nil, err
		}
		buf.MoveTo(x, y)
	}
	ph := &PathHandle{buf: buf, lock: r.lock}
	return r.register(KindPath, nil, ph), nil
}

// Ellipse creates an ellipse from x, y, rx and ry.
func (r *Registry) Ellipse(vals ...any) (*Handle, error) {
	n, err := args{op: "ellipse", vals: vals}.numbers(4)
	if err != nil {
		return nil, err
	}
	return r.register(KindEllipse, NewEllipse(n[0], n[1], n[2], n[3]), nil), nil
}

// Circle creates a circle from x, y and r.
func (r *Registry) Circle(vals ...any) (*Handle, error) {
	n, err := args{op: "circle", vals: vals}.numbers(3)
	if err != nil {
		return nil, err
	}
	return r.register(KindEllipse, NewCircle(n[0], n[1], n[2]), nil), nil
}

// TextShape creates a text shape from x, y, text and scale.
func (r *Registry) TextShape(vals ...any) (*Handle, error) {
	a := args{op: "textshape", vals: vals}
	x, err := a.number(1)
	if err != nil {
		return nil, err
	}
	y, err := a.number(2)
	if err != nil {
		return nil, err
	}
	text, err := a.str(3)
	if err != nil {
		return nil, err
	}
	scale, err := a.number(4)
	if err != nil {
		return nil, err
	}
	return r.register(KindTextShape, NewTextShape(x, y, text, scale, r.measurer), nil), nil
}

// Marker creates a marker from x, y and an optional symbol name and
// size. The size defaults to DefaultMarkerSize and the symbol to the
// catalog default.
func (r *Registry) Marker(vals ...any) (*Handle, error) {
	a := args{op: "marker", vals: vals}
	m := Marker{Size: DefaultMarkerSize}
	var err error
	if m.X, err = a.number(1); err != nil {
		return nil, err
	}
	if m.Y, err = a.number(2); err != nil {
		return nil, err
	}
	if a.has(3) {
		if m.Symbol, err = a.str(3); err != nil {
			return nil, err
		}
	}
	if a.has(4) {
		if m.Size, err = a.number(4); err != nil {
			return nil, err
		}
	}
	return r.register(KindMarker, NewMarkerShape(m, r.catalog), nil), nil
}
