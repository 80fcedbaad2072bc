// Command gsldraw runs drawing programs and prints the resulting path
// vertex streams, optionally rendering every live primitive to a PNG
// coverage mask.
//
// Usage:
//
//	gsldraw [flags] [program.yaml ...]
//
// Programs given as arguments run concurrently against one registry.
// Without programs a built-in demo runs.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/ralic/gnu-gsl-shell/draw"
	"github.com/ralic/gnu-gsl-shell/marker"
	"github.com/ralic/gnu-gsl-shell/script"
)

// demoProgram is run when no -program is given.
const demoProgram = `
objects:
  - {name: frame, new: path, args: [20, 20]}
  - {name: wave, new: path}
  - {name: dot, new: circle, args: [200, 150, 40]}
  - {name: oval, new: ellipse, args: [320, 150, 50, 25]}
  - {name: tri, new: marker, args: [100, 240, triangle, 30]}
  - {name: box, new: marker, args: [160, 240, square, 24]}
  - {name: star, new: marker, args: [220, 240, asterisk, 30]}
  - {name: label, new: textshape, args: [260, 260, "gsl shell", 28]}
calls:
  - {target: frame, command: line_to, args: [380, 20]}
  - {target: frame, command: line_to, args: [380, 60]}
  - {target: frame, command: arc_to, args: [20, 20, 0, false, true, 340, 60]}
  - {target: frame, command: line_to, args: [20, 60]}
  - {target: frame, command: close}
  - {target: wave, data: "M 20 120 C 60 70 100 170 140 120 Q 160 100 180 120 Z"}
`

func main() {
	var (
		program = flag.String("program", "", "drawing program (YAML)")
		workers = flag.Int("workers", 0, "programs run concurrently (0 = GOMAXPROCS)")
		catalog = flag.String("catalog", "", "marker symbol catalog (YAML)")
		output  = flag.String("output", "", "write a PNG coverage mask of all primitives")
		width   = flag.Int("width", 0, "image width (0 = fit drawing)")
		height  = flag.Int("height", 0, "image height (0 = fit drawing)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		draw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []draw.RegistryOption
	if *catalog != "" {
		c, err := loadCatalog(*catalog)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		opts = append(opts, draw.WithCatalog(c))
	}

	names := flag.Args()
	if *program != "" {
		names = append([]string{*program}, names...)
	}
	progs, err := loadPrograms(names)
	if err != nil {
		log.Fatalf("Failed to load program: %v", err)
	}

	reg := draw.NewRegistry(opts...)
	defer reg.Close()

	envs, err := script.RunAll(reg, *workers, progs...)
	if err != nil {
		log.Fatalf("Program failed: %v", err)
	}

	for i, env := range envs {
		if len(envs) > 1 {
			fmt.Printf("# %s\n", names[i])
		}
		printPaths(os.Stdout, env)
	}

	if *output != "" {
		w, h, err := savePNG(*output, *width, *height, reg)
		if err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Mask saved to %s (%dx%d)\n", *output, w, h)
	}
}

func loadCatalog(name string) (*marker.Catalog, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return marker.LoadCatalog(f)
}

func loadPrograms(names []string) ([]*script.Program, error) {
	if len(names) == 0 {
		p, err := script.Load(strings.NewReader(demoProgram))
		if err != nil {
			return nil, err
		}
		return []*script.Program{p}, nil
	}
	progs := make([]*script.Program, 0, len(names))
	for _, name := range names {
		p, err := loadProgram(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		progs = append(progs, p)
	}
	return progs, nil
}

func loadProgram(name string) (*script.Program, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return script.Load(f)
}

func printPaths(w io.Writer, env *script.Env) {
	for _, name := range env.Names() {
		h, _ := env.Lookup(name)
		p, ok := h.Path()
		if !ok || h.Released() {
			continue
		}
		snap := p.Snapshot()
		fmt.Fprintf(w, "%s: %d vertices\n", name, snap.TotalVertices())
		for _, v := range snap.Vertices() {
			fmt.Fprintf(w, "  %-7s %8.3f %8.3f\n", v.Verb, v.X, v.Y)
		}
	}
}

// A fitted mask keeps fitMargin blank pixels right of and below the
// drawing and never exceeds fitLimit pixels per side.
const (
	fitMargin = 10
	fitLimit  = 4096
)

func fitSide(extent float64) int {
	if math.IsNaN(extent) || extent <= 0 {
		return fitMargin
	}
	return int(math.Min(math.Ceil(extent)+fitMargin, fitLimit))
}

func savePNG(name string, width, height int, reg *draw.Registry) (int, int, error) {
	var shapes []draw.Drawable
	for _, h := range reg.Live() {
		shapes = append(shapes, h.Drawable())
	}
	if width <= 0 || height <= 0 {
		b := draw.BoundsOf(shapes...)
		if width <= 0 {
			width = fitSide(b.MaxX)
		}
		if height <= 0 {
			height = fitSide(b.MaxY)
		}
	}
	mask := draw.Rasterize(width, height, shapes...)

	f, err := os.Create(name)
	if err != nil {
		return 0, 0, err
	}
	if err := png.Encode(f, mask); err != nil {
		f.Close()
		return 0, 0, err
	}
	return width, height, f.Close()
}
