// Package marker provides the named symbols placed by markers.
//
// Each symbol outline lives in a unit box centred on the origin, so a
// marker of size s covers s×s units around its position. Symbols are
// either fillable or stroke-only; stroke-only symbols (open strokes such
// as plus or cross) are meant to be rendered through a stroke expander.
package marker

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ralic/gnu-gsl-shell/path"
)

// DefaultSymbol is the symbol used when a name is empty or unknown.
const DefaultSymbol = "circle"

// ErrInvalidCatalog is returned for malformed catalog definitions.
var ErrInvalidCatalog = errors.New("marker: invalid catalog")

// Symbol is a named marker outline.
type Symbol struct {
	Name string
	// Stroke reports a stroke-only symbol whose outline encloses no area
	// worth filling.
	Stroke  bool
	Outline []path.Element
}

// Catalog maps symbol names to outlines. It is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	symbols  map[string]Symbol
	fallback string
}

// NewCatalog returns a catalog holding the built-in symbols.
func NewCatalog() *Catalog {
	c := &Catalog{symbols: make(map[string]Symbol), fallback: DefaultSymbol}
	for _, s := range builtins() {
		c.symbols[s.Name] = s
	}
	return c
}

// Add registers s, replacing any symbol of the same name.
func (c *Catalog) Add(s Symbol) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.symbols[s.Name] = s
}

// Lookup returns the named symbol. Empty and unknown names resolve to
// the catalog default.
func (c *Catalog) Lookup(name string) Symbol {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if s, ok := c.symbols[name]; ok {
		return s
	}
	return c.symbols[c.fallback]
}

// Has reports whether name is a known symbol.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.symbols[name]
	return ok
}

// Default returns the name of the fallback symbol.
func (c *Catalog) Default() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fallback
}

// Names returns the symbol names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.symbols))
	for name := range c.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type catalogFile struct {
	Default string       `yaml:"default"`
	Symbols []symbolFile `yaml:"symbols"`
}

type symbolFile struct {
	Name   string `yaml:"name"`
	Stroke bool   `yaml:"stroke"`
	Data   string `yaml:"data"`
}

// LoadCatalog reads YAML symbol definitions on top of the built-in
// symbols:
//
//	default: square
//	symbols:
//	  - name: bar
//	    stroke: true
//	    data: "M -0.5 0 L 0.5 0"
//
// Outlines are SVG path data in the unit box.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("marker: failed to decode catalog: %w", err)
	}

	c := NewCatalog()
	for i, sf := range f.Symbols {
		if sf.Name == "" {
			return nil, fmt.Errorf("%w: symbol %d has no name", ErrInvalidCatalog, i)
		}
		p, err := path.ParseData(sf.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: symbol %q: %w", ErrInvalidCatalog, sf.Name, err)
		}
		c.symbols[sf.Name] = Symbol{Name: sf.Name, Stroke: sf.Stroke, Outline: p.Elements()}
	}
	if f.Default != "" {
		if _, ok := c.symbols[f.Default]; !ok {
			return nil, fmt.Errorf("%w: unknown default symbol %q", ErrInvalidCatalog, f.Default)
		}
		c.fallback = f.Default
	}
	return c, nil
}
