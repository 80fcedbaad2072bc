package marker

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ralic/gnu-gsl-shell/path"
)

func TestCatalog_Builtins(t *testing.T) {
	c := NewCatalog()
	want := []string{"asterisk", "circle", "cross", "diamond", "plus", "square", "triangle", "wedge"}
	if d := cmp.Diff(want, c.Names()); d != "" {
		t.Errorf("Names() (-want +got):\n%s", d)
	}

	tests := []struct {
		name   string
		stroke bool
	}{
		{"circle", false},
		{"square", false},
		{"diamond", false},
		{"triangle", true},
		{"plus", true},
		{"cross", true},
		{"asterisk", true},
		{"wedge", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := c.Lookup(tt.name)
			if s.Name != tt.name {
				t.Fatalf("Lookup(%q).Name = %q", tt.name, s.Name)
			}
			if s.Stroke != tt.stroke {
				t.Errorf("Stroke = %v, want %v", s.Stroke, tt.stroke)
			}
			b := path.Bounds(s.Outline)
			if b.MinX < -0.5-1e-9 || b.MinY < -0.5-1e-9 || b.MaxX > 0.5+1e-9 || b.MaxY > 0.5+1e-9 {
				t.Errorf("outline bounds %+v exceed the unit box", b)
			}
		})
	}
}

func TestCatalog_LookupFallback(t *testing.T) {
	c := NewCatalog()
	for _, name := range []string{"", "no-such-symbol"} {
		if got := c.Lookup(name).Name; got != DefaultSymbol {
			t.Errorf("Lookup(%q).Name = %q, want %q", name, got, DefaultSymbol)
		}
	}
	if c.Has("") {
		t.Error("Has(\"\") = true")
	}
}

func TestCatalog_Add(t *testing.T) {
	c := NewCatalog()
	c.Add(Symbol{Name: "dot", Outline: []path.Element{path.MoveTo{}, path.Close{}}})
	if !c.Has("dot") {
		t.Fatal("added symbol not found")
	}
	if got := c.Lookup("dot").Name; got != "dot" {
		t.Errorf("Lookup(dot).Name = %q", got)
	}
}

func TestLoadCatalog(t *testing.T) {
	const doc = `
default: square
symbols:
  - name: bar
    stroke: true
    data: "M -0.5 0 L 0.5 0"
  - name: circle
    data: "M -0.5 -0.5 L 0.5 -0.5 L 0 0.5 Z"
`
	c, err := LoadCatalog(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadCatalog error: %v", err)
	}
	if c.Default() != "square" {
		t.Errorf("Default() = %q, want square", c.Default())
	}
	if got := c.Lookup("unknown").Name; got != "square" {
		t.Errorf("fallback = %q, want square", got)
	}

	bar := c.Lookup("bar")
	want := []path.Element{
		path.MoveTo{Point: path.Pt(-0.5, 0)},
		path.LineTo{Point: path.Pt(0.5, 0)},
	}
	if !bar.Stroke {
		t.Error("bar should be stroke-only")
	}
	if d := cmp.Diff(want, bar.Outline); d != "" {
		t.Errorf("bar outline (-want +got):\n%s", d)
	}

	// Built-ins can be overridden.
	if n := len(c.Lookup("circle").Outline); n != 4 {
		t.Errorf("overridden circle has %d elements, want 4", n)
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadCatalog error: %v", err)
	}
	if c.Default() != DefaultSymbol || len(c.Names()) != 8 {
		t.Errorf("empty document should yield the built-in catalog")
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", "symbols:\n  - data: \"M 0 0 L 1 1\"\n"},
		{"bad data", "symbols:\n  - name: x\n    data: \"L 1 1\"\n"},
		{"unknown default", "default: star\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("error = %v, want ErrInvalidCatalog", err)
			}
		})
	}

	if _, err := LoadCatalog(strings.NewReader("symbols: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}
