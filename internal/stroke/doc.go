// Package stroke converts an outline into the fill outline of its stroke.
//
// Each subpath is offset by half the line width on both sides. The
// forward offset is emitted as drawn, the backward offset is reversed,
// and caps (open subpaths) or a second contour (closed subpaths) connect
// the two. Filling the result with the nonzero rule paints the stroke.
//
// Curves are flattened to line segments within a tolerance before
// offsetting.
//
//	e := stroke.NewExpander(stroke.Style{Width: 2, Join: stroke.JoinRound})
//	outline := e.Expand(p.Elements())
package stroke
