package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ralic/gnu-gsl-shell/draw"
	"github.com/ralic/gnu-gsl-shell/path"
)

func run(t *testing.T, src string) (*draw.Registry, *Env, error) {
	t.Helper()
	prog, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	reg := draw.NewRegistry(draw.WithGeometryLock(&draw.GeometryLock{}))
	env, err := prog.Run(reg)
	return reg, env, err
}

func TestRun_ClosedPath(t *testing.T) {
	_, env, err := run(t, `
objects:
  - name: p
    new: path
    args: [0, 0]
calls:
  - target: p
    command: line_to
    args: [1, 1]
  - target: p
    command: close
`)
	require.NoError(t, err)

	h, ok := env.Lookup("p")
	require.True(t, ok)
	p, ok := h.Path()
	require.True(t, ok)

	subs := p.Snapshot().Subpaths()
	require.Len(t, subs, 1)
	require.True(t, subs[0].Closed)
	require.Equal(t, []path.Element{
		path.MoveTo{Point: path.Pt(0, 0)},
		path.LineTo{Point: path.Pt(1, 1)},
	}, subs[0].Elements)
}

func TestRun_ObjectsAndRelease(t *testing.T) {
	reg, env, err := run(t, `
objects:
  - name: p
    new: path
  - name: e
    new: ellipse
    args: [0, 0, 2, 1]
  - name: c
    new: circle
    args: [0, 0, 1.5]
  - name: t
    new: textshape
    args: [1, 2, hi, 3]
  - name: m
    new: marker
    args: [0, 0, triangle, 10]
calls:
  - target: p
    data: "M 0 0 A 5 5 0 0 1 10 0"
release: [m, t, t]
`)
	require.NoError(t, err)
	require.Equal(t, []string{"p", "e", "c", "t", "m"}, env.Names())

	m, _ := env.Lookup("m")
	require.True(t, m.Released())
	ms, ok := m.MarkerShape()
	require.True(t, ok)
	require.True(t, ms.Stroked())

	counts := reg.LiveByKind()
	require.Equal(t, 1, counts[draw.KindPath])
	require.Equal(t, 2, counts[draw.KindEllipse])
	require.Zero(t, counts[draw.KindTextShape])
	require.Zero(t, counts[draw.KindMarker])

	p, _ := env.Lookup("p")
	ph, _ := p.Path()
	require.InDelta(t, 10, ph.Snapshot().CurrentPoint().X, 1e-9)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		section string
		index   int
		is      error
	}{
		{
			"non-finite arc angle",
			"objects: [{name: p, new: path, args: [0, 0]}]\ncalls:\n  - {target: p, command: arc_to, args: [1, 1, .nan, false, true, 2, 2]}\n",
			"calls", 0, draw.ErrInvalidArgument,
		},
		{
			"unknown command",
			"objects: [{name: p, new: path}]\ncalls: [{target: p, command: spline}]\n",
			"calls", 0, draw.ErrUnknownCommand,
		},
		{
			"unknown constructor",
			"objects: [{name: p, new: polygon}]\n",
			"objects", 0, draw.ErrUnknownConstructor,
		},
		{
			"missing argument",
			"objects: [{name: a, new: path}, {name: c, new: circle, args: [0, 0]}]\n",
			"objects", 1, draw.ErrMissingArgument,
		},
		{
			"duplicate name",
			"objects: [{name: a, new: path}, {name: a, new: path}]\n",
			"objects", 1, ErrDuplicateObject,
		},
		{
			"unknown target",
			"calls: [{target: q, command: close}]\n",
			"calls", 0, ErrUnknownObject,
		},
		{
			"not a path",
			"objects: [{name: e, new: circle, args: [0, 0, 1]}]\ncalls: [{target: e, command: close}]\n",
			"calls", 0, ErrNotPath,
		},
		{
			"empty call",
			"objects: [{name: p, new: path}]\ncalls: [{target: p}]\n",
			"calls", 0, ErrEmptyCall,
		},
		{
			"bad data",
			"objects: [{name: p, new: path}]\ncalls: [{target: p, data: \"Q 1\"}]\n",
			"calls", 0, path.ErrInvalidData,
		},
		{
			"release unknown",
			"release: [ghost]\n",
			"release", 0, ErrUnknownObject,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.src)
			require.ErrorIs(t, err, tt.is)

			var se *StepError
			require.ErrorAs(t, err, &se)
			require.Equal(t, tt.section, se.Section)
			require.Equal(t, tt.index, se.Index)
		})
	}
}

func TestRun_RejectedCallKeepsBuffer(t *testing.T) {
	_, env, err := run(t, `
objects:
  - {name: p, new: path, args: [0, 0]}
calls:
  - {target: p, command: line_to, args: [5, 0]}
  - {target: p, command: arc_to, args: [1, 1, .inf, false, true, 2, 2]}
`)
	var ae *draw.ArgumentError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 3, ae.Position)

	h, _ := env.Lookup("p")
	p, _ := h.Path()
	require.Equal(t, 2, p.TotalVertices())
}

func TestLoad(t *testing.T) {
	prog, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, prog.Objects)

	_, err = Load(strings.NewReader("objects: {"))
	require.Error(t, err)
}

func TestRun_DataContinuesPath(t *testing.T) {
	_, env, err := run(t, `
objects:
  - name: p
    new: path
    args: [0, 0]
calls:
  - target: p
    command: line_to
    args: [1, 1]
  - target: p
    data: "A 5 5 0 0 1 10 0 l 0 2"
`)
	require.NoError(t, err)

	h, ok := env.Lookup("p")
	require.True(t, ok)
	p, _ := h.Path()
	snap := p.Snapshot()
	require.Equal(t, path.Pt(10, 2), snap.CurrentPoint())
	els := snap.Elements()
	require.IsType(t, path.CubicTo{}, els[2], "arc appended after the line")
	require.Equal(t, path.LineTo{Point: path.Pt(10, 2)}, els[len(els)-1])
}

func TestRunAll_ConcurrentPrograms(t *testing.T) {
	const n = 6
	var progs []*Program
	for i := 0; i < n; i++ {
		var b strings.Builder
		b.WriteString("objects: [{name: p, new: path, args: [0, 0]}]\ncalls:\n")
		for j := 1; j <= 50; j++ {
			b.WriteString("  - {target: p, command: line_to, args: [1, 1]}\n")
		}
		prog, err := Load(strings.NewReader(b.String()))
		require.NoError(t, err)
		progs = append(progs, prog)
	}

	reg := draw.NewRegistry(draw.WithGeometryLock(&draw.GeometryLock{}))
	envs, err := RunAll(reg, 3, progs...)
	require.NoError(t, err)
	require.Len(t, envs, n)

	for i, env := range envs {
		h, ok := env.Lookup("p")
		require.True(t, ok, "program %d", i)
		p, _ := h.Path()
		require.Equal(t, 51, p.TotalVertices(), "program %d", i)
	}
	require.Equal(t, n, reg.LiveByKind()[draw.KindPath])
}

func TestRunAll_JoinsErrors(t *testing.T) {
	good, err := Load(strings.NewReader("objects: [{name: p, new: path}]\n"))
	require.NoError(t, err)
	bad, err := Load(strings.NewReader("objects: [{name: p, new: spiral}]\n"))
	require.NoError(t, err)

	envs, err := RunAll(draw.NewRegistry(), 2, good, bad)
	require.ErrorIs(t, err, draw.ErrUnknownConstructor)
	require.Contains(t, err.Error(), "program 1")
	require.NotContains(t, err.Error(), "program 0")
	_, ok := envs[0].Lookup("p")
	require.True(t, ok)
}
