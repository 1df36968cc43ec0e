package x11

// Geom is an absolute rectangle in root window coordinates.
type Geom struct {
	X, Y uint32
	W, H uint32
}

// Shrink insets the rectangle by n pixels on every side. Negative results
// are clamped to a single pixel so degenerate frames never get configured
// with a zero or negative extent.
func (g Geom) Shrink(n uint32) Geom {
	out := Geom{X: g.X + n, Y: g.Y + n, W: g.W, H: g.H}
	if out.W > 2*n {
		out.W -= 2 * n
	} else {
		out.W = 1
	}
	if out.H > 2*n {
		out.H -= 2 * n
	} else {
		out.H = 1
	}
	return out
}

// Inset shrinks the rectangle by a distinct amount per edge.
func (g Geom) Inset(d Dimensions) Geom {
	out := Geom{
		X: g.X + d.Left,
		Y: g.Y + d.Top,
	}
	if g.W > d.Left+d.Right {
		out.W = g.W - d.Left - d.Right
	} else {
		out.W = 1
	}
	if g.H > d.Top+d.Bottom {
		out.H = g.H - d.Top - d.Bottom
	} else {
		out.H = 1
	}
	return out
}

// Center returns the rectangle's midpoint, used by the directional focus
// search and to pick the monitor a dock window sits on.
func (g Geom) Center() (x, y int32) {
	return int32(g.X) + int32(g.W)/2, int32(g.Y) + int32(g.H)/2
}

// Dimensions describes a decoration inset: border/titlebar pixels reserved
// on each of the four edges of a frame.
type Dimensions struct {
	Top, Right, Bottom, Left uint32
}
