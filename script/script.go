// Package script runs drawing programs written in YAML against a
// draw.Registry.
//
// A program creates named objects, issues path commands and releases
// objects:
//
//	objects:
//	  - name: p
//	    new: path
//	    args: [0, 0]
//	calls:
//	  - target: p
//	    command: line_to
//	    args: [1, 1]
//	  - target: p
//	    data: "A 5 5 0 0 1 10 0"
//	release: [p]
//
// Arguments are passed to the draw package as decoded by YAML, so
// numbers arrive as int or float64 and .nan or .inf reach the
// dispatcher's validation unchanged.
package script

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ralic/gnu-gsl-shell/draw"
	"github.com/ralic/gnu-gsl-shell/internal/parallel"
)

// Sentinel errors for the script package.
var (
	// ErrUnknownObject is returned when a call or release names an
	// object the program never created.
	ErrUnknownObject = errors.New("script: unknown object")

	// ErrDuplicateObject is returned when two objects share a name.
	ErrDuplicateObject = errors.New("script: duplicate object name")

	// ErrNotPath is returned when a command targets a primitive that is
	// not a path.
	ErrNotPath = errors.New("script: target is not a path")

	// ErrEmptyCall is returned for calls with neither command nor data.
	ErrEmptyCall = errors.New("script: call has no command or data")
)

// Program is a decoded drawing program.
type Program struct {
	Objects []Object `yaml:"objects"`
	Calls   []Call   `yaml:"calls"`
	Release []string `yaml:"release"`
}

// Object creates a primitive through draw.Registry.Call.
type Object struct {
	Name string `yaml:"name"`
	New  string `yaml:"new"`
	Args []any  `yaml:"args"`
}

// Call runs a path command, or replays SVG path data when Data is set.
type Call struct {
	Target  string `yaml:"target"`
	Command string `yaml:"command"`
	Args    []any  `yaml:"args"`
	Data    string `yaml:"data"`
}

// StepError reports the program step that failed.
type StepError struct {
	Section string // "objects", "calls" or "release"
	Index   int    // 0-based within Section
	Name    string // object or target name
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("script: %s[%d] (%s): %v", e.Section, e.Index, e.Name, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Load decodes a program.
func Load(r io.Reader) (*Program, error) {
	var p Program
	if err := yaml.NewDecoder(r).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("script: failed to decode program: %w", err)
	}
	return &p, nil
}

// Env maps object names to the handles a run created.
type Env struct {
	handles map[string]*draw.Handle
	order   []string
}

// Lookup returns the named handle.
func (e *Env) Lookup(name string) (*draw.Handle, bool) {
	h, ok := e.handles[name]
	return h, ok
}

// Names returns object names in creation order.
func (e *Env) Names() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Run executes the program. It stops at the first failing step and
// returns the environment built so far together with a *StepError.
func (p *Program) Run(reg *draw.Registry) (*Env, error) {
	env := &Env{handles: make(map[string]*draw.Handle)}

	for i, o := range p.Objects {
		if _, dup := env.handles[o.Name]; dup {
			return env, &StepError{"objects", i, o.Name, ErrDuplicateObject}
		}
		h, err := reg.Call(o.New, o.Args...)
		if err != nil {
			return env, &StepError{"objects", i, o.Name, err}
		}
		env.handles[o.Name] = h
		env.order = append(env.order, o.Name)
	}

	for i, c := range p.Calls {
		if err := env.call(c); err != nil {
			return env, &StepError{"calls", i, c.Target, err}
		}
	}

	for i, name := range p.Release {
		h, ok := env.handles[name]
		if !ok {
			return env, &StepError{"release", i, name, ErrUnknownObject}
		}
		h.Release()
	}
	return env, nil
}

func (e *Env) call(c Call) error {
	h, ok := e.handles[c.Target]
	if !ok {
		return ErrUnknownObject
	}
	ph, ok := h.Path()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotPath, h.Kind())
	}
	switch {
	case c.Data != "":
		return ph.AppendData(c.Data)
	case c.Command != "":
		return ph.Exec(c.Command, c.Args...)
	}
	return ErrEmptyCall
}

// RunAll runs programs concurrently on up to workers goroutines against
// one registry; 0 workers means GOMAXPROCS. Object names are scoped to
// their program. envs is indexed like progs. The error joins the
// failures of all programs.
func RunAll(reg *draw.Registry, workers int, progs ...*Program) ([]*Env, error) {
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	envs := make([]*Env, len(progs))
	errs := make([]error, len(progs))
	work := make([]func(), len(progs))
	for i, p := range progs {
		i, p := i, p
		work[i] = func() {
			env, err := p.Run(reg)
			envs[i] = env
			if err != nil {
				errs[i] = fmt.Errorf("program %d: %w", i, err)
			}
		}
	}
	pool.ExecuteAll(work)
	return envs, errors.Join(errs...)
}
