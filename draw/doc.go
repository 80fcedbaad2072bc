// Package draw hosts the drawable primitives of the plotting shell:
// paths, ellipses, text shapes and markers.
//
// Primitives are created through a [Registry] and referenced by opaque
// [Handle] values tagged with a [Kind]. Paths are mutated only through
// the command dispatcher, which validates arguments against a static
// command table and applies commands under a [GeometryLock]:
//
//	reg := draw.NewRegistry()
//	h, _ := reg.Path(0, 0)
//	p, _ := h.Path()
//	lineTo, _ := p.Index("line_to")
//	_ = lineTo.Call(1, 1)
//	_ = p.Exec("close")
//	h.Release()
//
// Arguments are Go values as a host language would pass them: any
// numeric type for numbers, bool for flags and string for names.
package draw
