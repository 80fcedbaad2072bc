package draw

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/ralic/gnu-gsl-shell/marker"
)

// Kind tags the primitive behind a Handle.
type Kind int

// Primitive kinds.
const (
	KindPath Kind = iota
	KindEllipse
	KindTextShape
	KindMarker
)

var kindNames = [...]string{"path", "ellipse", "textshape", "marker"}

// String returns the kind name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Registry creates primitives and tracks their lifetime. It is safe for
// concurrent use.
type Registry struct {
	lock     *GeometryLock
	catalog  *marker.Catalog
	measurer TextMeasurer

	nextID atomic.Uint64

	mu   sync.Mutex
	live map[uint64]*Handle
}

// NewRegistry creates a registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := defaultRegistryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		o.catalog = marker.NewCatalog()
	}
	return &Registry{
		lock:     o.lock,
		catalog:  o.catalog,
		measurer: o.measurer,
		live:     make(map[uint64]*Handle),
	}
}

// GeometryLock returns the lock serializing path commands.
func (r *Registry) GeometryLock() *GeometryLock { return r.lock }

// Catalog returns the marker symbol catalog.
func (r *Registry) Catalog() *marker.Catalog { return r.catalog }

// Handle is an opaque reference to a registered primitive.
type Handle struct {
	id       uint64
	kind     Kind
	reg      *Registry
	released atomic.Bool

	path  *PathHandle
	shape Drawable
}

func (r *Registry) register(kind Kind, shape Drawable, ph *PathHandle) *Handle {
	h := &Handle{
		id:    r.nextID.Add(1),
		kind:  kind,
		reg:   r,
		path:  ph,
		shape: shape,
	}
	if ph != nil {
		ph.handle = h
	}
	r.mu.Lock()
	r.live[h.id] = h
	r.mu.Unlock()
	Logger().Debug("draw: primitive created", "id", h.id, "kind", kind)
	return h
}

// ID returns the handle identifier, unique within its registry.
func (h *Handle) ID() uint64 { return h.id }

// Kind returns the primitive kind.
func (h *Handle) Kind() Kind { return h.kind }

// Released reports whether Release has been called.
func (h *Handle) Released() bool { return h.released.Load() }

// Path returns the path behind a KindPath handle.
func (h *Handle) Path() (*PathHandle, bool) {
	return h.path, h.path != nil
}

// Drawable returns the primitive's outline capability. For paths it
// reads snapshots under the geometry lock.
func (h *Handle) Drawable() Drawable {
	if h.path != nil {
		return h.path
	}
	return h.shape
}

// Ellipse returns the ellipse behind a KindEllipse handle.
func (h *Handle) Ellipse() (Ellipse, bool) {
	e, ok := h.shape.(Ellipse)
	return e, ok
}

// TextShape returns the text behind a KindTextShape handle.
func (h *Handle) TextShape() (*TextShape, bool) {
	t, ok := h.shape.(*TextShape)
	return t, ok
}

// MarkerShape returns the marker behind a KindMarker handle.
func (h *Handle) MarkerShape() (MarkerShape, bool) {
	m, ok := h.shape.(MarkerShape)
	return m, ok
}

// Release destroys the primitive. Only the first call has an effect;
// later calls are no-ops.
func (h *Handle) Release() {
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	if h.path != nil {
		h.reg.lock.Do(h.path.buf.Clear)
	}
	h.reg.mu.Lock()
	delete(h.reg.live, h.id)
	h.reg.mu.Unlock()
	Logger().Debug("draw: primitive released", "id", h.id, "kind", h.kind)
}

// Live returns the unreleased handles ordered by id.
func (r *Registry) Live() []*Handle {
	r.mu.Lock()
	out := make([]*Handle, 0, len(r.live))
	for _, h := range r.live {
		out = append(out, h)
	}
	r.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// LiveByKind counts unreleased handles per kind.
func (r *Registry) LiveByKind() map[Kind]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[Kind]int)
	for _, h := range r.live {
		counts[h.kind]++
	}
	return counts
}

// Close releases every live handle.
func (r *Registry) Close() {
	for _, h := range r.Live() {
		h.Release()
	}
}

// Call constructs a primitive by constructor name: path, ellipse,
// circle, textshape or marker.
func (r *Registry) Call(name string, args ...any) (*Handle, error) {
	switch name {
	case "path":
		return r.Path(args...)
	case "ellipse":
		return r.Ellipse(args...)
	case "circle":
		return r.Circle(args...)
	case "textshape":
		return r.TextShape(args...)
	case "marker":
		return r.Marker(args...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownConstructor, name)
}
