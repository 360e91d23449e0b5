package system

import (
	"math"

	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

// DefaultTolerance is the edge band used to decide which side of a wall
// an entity came from.
const DefaultTolerance = 15

// ResolveWall pushes b out of wall if they overlap. Each of the four edge
// checks is independent, so a body in a corner can be snapped on both axes
// in the same call. It returns true if b overlapped the wall.
func ResolveWall(b *entity.Body, wall geom.Rect, tolerance float64) bool {
	box := b.Box()
	if !box.Overlaps(wall) {
		return false
	}

	// Approached from the right
	if math.Abs(box.Left()-wall.Right()) < tolerance {
		b.Vel.X = 0
		b.Pos.X = wall.Right() + b.HalfW
	}
	// Approached from the left
	if math.Abs(box.Right()-wall.Left()) < tolerance {
		b.Vel.X = 0
		b.Pos.X = wall.Left() - b.HalfW
	}
	// Approached from below
	if math.Abs(box.Top()-wall.Bottom()) < tolerance {
		b.Vel.Y = 0
		b.Pos.Y = wall.Bottom() + b.HalfH
	}
	// Approached from above
	if math.Abs(box.Bottom()-wall.Top()) < tolerance {
		b.Vel.Y = 0
		b.Pos.Y = wall.Top() - b.HalfH
	}
	return true
}

// ResolveWalls applies ResolveWall for every collidable in order.
// It returns the number of walls b was touching.
func ResolveWalls(b *entity.Body, walls []geom.Rect, tolerance float64) int {
	touched := 0
	for _, w := range walls {
		if ResolveWall(b, w, tolerance) {
			touched++
		}
	}
	return touched
}

// OutOfBounds reports whether box lies entirely outside bounds
func OutOfBounds(box, bounds geom.Rect) bool {
	return !box.Overlaps(bounds)
}
