package entity

import (
	"image/color"

	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

// ProjectileSpec holds the configured shape and flight of a projectile
type ProjectileSpec struct {
	Speed  float64
	Size   float64
	Color  color.RGBA
	MaxAge int // ticks; 0 means the projectile lives until it hits
}

// Projectile is a straight-line munition. Its velocity is fixed at spawn
// and never re-tracks the target.
type Projectile struct {
	Body

	Damage   int
	Friendly bool // shot by the player
	Age      int
	MaxAge   int
}

// NewProjectile creates a projectile at from heading toward to.
// If from == to the projectile sits still.
func NewProjectile(from, to geom.Vec2, damage int, friendly bool, spec ProjectileSpec) *Projectile {
	p := &Projectile{
		Body:     NewBody(from, spec.Size, Look{Fill: spec.Color}),
		Damage:   damage,
		Friendly: friendly,
		MaxAge:   spec.MaxAge,
	}
	p.Vel = geom.Direction(from, to, spec.Speed)
	return p
}

// Update integrates motion and ages the projectile by one tick
func (p *Projectile) Update(dt float64) {
	p.Integrate(dt)
	p.Age++
}

// Expired returns true once a bounded projectile has outlived MaxAge
func (p *Projectile) Expired() bool {
	return p.MaxAge > 0 && p.Age >= p.MaxAge
}
