package draw

import "sync"

// GeometryLock serializes mutations of path buffers. The zero value is
// ready to use. A GeometryLock must not be copied after first use.
type GeometryLock struct {
	mu sync.Mutex
}

// DefaultGeometryLock is shared by registries created without
// WithGeometryLock.
var DefaultGeometryLock = &GeometryLock{}

// Do runs fn with the lock held. The lock is released when fn returns
// or panics.
func (l *GeometryLock) Do(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}
