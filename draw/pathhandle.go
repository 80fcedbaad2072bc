package draw

import (
	"github.com/ralic/gnu-gsl-shell/path"
)

// PathHandle is a registered path buffer. Every command and snapshot
// runs under the registry's geometry lock.
type PathHandle struct {
	buf    *path.Path
	lock   *GeometryLock
	handle *Handle
}

// Handle returns the registry handle owning the path.
func (p *PathHandle) Handle() *Handle { return p.handle }

// BoundCommand is a command resolved against one path.
type BoundCommand struct {
	cmd    Command
	target *PathHandle
}

// Index resolves a command name against the path. The result can be
// called any number of times.
func (p *PathHandle) Index(name string) (*BoundCommand, error) {
	c, err := LookupCommand(name)
	if err != nil {
		return nil, err
	}
	return &BoundCommand{cmd: c, target: p}, nil
}

// Command returns the resolved command descriptor.
func (b *BoundCommand) Command() Command { return b.cmd }

// Call validates args and applies the command. A rejected call leaves
// the path untouched.
func (b *BoundCommand) Call(args ...any) error {
	fr, err := b.cmd.decode(args)
	if err != nil {
		return err
	}
	p := b.target
	p.lock.Do(func() {
		if p.handle != nil && p.handle.Released() {
			err = ErrReleased
			return
		}
		b.cmd.apply(p.buf, fr)
	})
	if err != nil {
		return err
	}
	Logger().Debug("draw: command", "id", p.id(), "command", b.cmd.Name)
	return nil
}

func (p *PathHandle) id() uint64 {
	if p.handle == nil {
		return 0
	}
	return p.handle.id
}

// Exec resolves name and calls it with args.
func (p *PathHandle) Exec(name string, args ...any) error {
	b, err := p.Index(name)
	if err != nil {
		return err
	}
	return b.Call(args...)
}

// AppendData replays SVG path data through the command dispatcher,
// continuing from the current point of the buffer. Data appended to an
// empty path must start with a move. Commands decoded before an error
// remain applied.
func (p *PathHandle) AppendData(d string) error {
	var (
		start, cur path.Point
		has        bool
		released   bool
	)
	p.lock.Do(func() {
		released = p.handle != nil && p.handle.Released()
		start, cur, has = p.buf.SubpathStart(), p.buf.CurrentPoint(), p.buf.HasCurrentPoint()
	})
	if released {
		return ErrReleased
	}
	return path.ScanDataFrom(start, cur, has, d, p.Exec)
}

// Snapshot returns a copy of the buffer taken under the geometry lock.
func (p *PathHandle) Snapshot() *path.Path {
	var c *path.Path
	p.lock.Do(func() { c = p.buf.Clone() })
	return c
}

// Elements implements Drawable.
func (p *PathHandle) Elements() []path.Element {
	return p.Snapshot().Elements()
}

// Bounds implements Drawable.
func (p *PathHandle) Bounds() path.Rect {
	return p.Snapshot().Bounds()
}

// TotalVertices returns the vertex count of the buffer.
func (p *PathHandle) TotalVertices() int {
	var n int
	p.lock.Do(func() { n = p.buf.TotalVertices() })
	return n
}
