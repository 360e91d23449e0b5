package entity

import "github.com/Kassicus/colorsurvivor/internal/domain/geom"

// Body is the shared motion state of every entity.
// Pos is the center of the bounding box.
type Body struct {
	ID    EntityID
	Pos   geom.Vec2
	Vel   geom.Vec2
	HalfW float64
	HalfH float64
	Look  Look
}

// NewBody creates a square body of the given full size centered on pos
func NewBody(pos geom.Vec2, size float64, look Look) Body {
	return Body{
		Pos:   pos,
		HalfW: size / 2,
		HalfH: size / 2,
		Look:  look,
	}
}

// Integrate advances position by velocity over dt seconds
func (b *Body) Integrate(dt float64) {
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt
}

// Box returns the axis-aligned bounding box
func (b *Body) Box() geom.Rect {
	return geom.RectFromCenter(b.Pos, b.HalfW, b.HalfH)
}

// Appearance implements Drawable
func (b *Body) Appearance() Look {
	return b.Look
}

// Entity returns the embedded body, giving callers a common handle
// on any entity kind.
func (b *Body) Entity() *Body {
	return b
}
