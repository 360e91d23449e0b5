// Package render draws a world through a camera that follows the player.
package render

import (
	"sort"

	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

// Camera is a viewport of fixed size in world units
type Camera struct {
	Width  float64
	Height float64
}

// Offset returns the world position of the screen's top-left corner when
// the camera is centered on focus.
func (c Camera) Offset(focus geom.Vec2) geom.Vec2 {
	return geom.V(focus.X-c.Width/2, focus.Y-c.Height/2)
}

// Visible reports whether box intersects the viewport at offset
func (c Camera) Visible(box geom.Rect, offset geom.Vec2) bool {
	view := geom.Rect{X: offset.X, Y: offset.Y, W: c.Width, H: c.Height}
	return box.Overlaps(view)
}

// DepthSort returns a copy of ds ordered by box center Y, so things lower
// on screen are drawn over things above them. Equal keys keep their order.
func DepthSort(ds []entity.Drawable) []entity.Drawable {
	out := make([]entity.Drawable, len(ds))
	copy(out, ds)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Box().Center().Y < out[j].Box().Center().Y
	})
	return out
}
