package geom

// Rect is an axis-aligned box. Y grows downward, so Top < Bottom.
type Rect struct {
	X, Y float64 // top-left corner
	W, H float64
}

// RectFromCenter builds a box centered on c with the given half extents.
func RectFromCenter(c Vec2, halfW, halfH float64) Rect {
	return Rect{X: c.X - halfW, Y: c.Y - halfH, W: halfW * 2, H: halfH * 2}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the box.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether r and o intersect with positive area.
// Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}
