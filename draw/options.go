package draw

import "github.com/ralic/gnu-gsl-shell/marker"

// RegistryOption configures a Registry during creation.
//
// Example:
//
//	lock := &draw.GeometryLock{}
//	reg := draw.NewRegistry(draw.WithGeometryLock(lock))
type RegistryOption func(*registryOptions)

type registryOptions struct {
	lock     *GeometryLock
	catalog  *marker.Catalog
	measurer TextMeasurer
}

func defaultRegistryOptions() registryOptions {
	return registryOptions{
		lock:     DefaultGeometryLock,
		catalog:  nil, // built-in catalog
		measurer: nil, // DefaultTextMeasurer
	}
}

// WithGeometryLock sets the lock that serializes path commands of the
// registry. Registries sharing a lock serialize against each other.
func WithGeometryLock(l *GeometryLock) RegistryOption {
	return func(o *registryOptions) {
		if l != nil {
			o.lock = l
		}
	}
}

// WithCatalog sets the symbol catalog used by Marker.
func WithCatalog(c *marker.Catalog) RegistryOption {
	return func(o *registryOptions) {
		o.catalog = c
	}
}

// WithTextMeasurer sets the measurer used by TextShape.
func WithTextMeasurer(m TextMeasurer) RegistryOption {
	return func(o *registryOptions) {
		o.measurer = m
	}
}
