package world

import (
	"image/color"

	"github.com/Kassicus/colorsurvivor/internal/application/system"
	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
)

var wallFill = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Player returns the controlled entity
func (w *World) Player() *entity.Player {
	return w.player
}

// Projectiles returns live friendly projectiles in insertion order
func (w *World) Projectiles() []*entity.Projectile {
	return w.projectiles.Items()
}

// GroundItems returns drops waiting to be picked up
func (w *World) GroundItems() []*entity.Drop {
	return w.groundItems.Items()
}

// Particles returns live particles
func (w *World) Particles() []*entity.Particle {
	return w.particles.Items()
}

// Walls returns every collidable
func (w *World) Walls() []*entity.Wall {
	return w.collidables.Items()
}

// Drawables returns everything the camera should draw
func (w *World) Drawables() []entity.Drawable {
	return w.camera.Items()
}

// InCamera reports whether d is in the drawable set
func (w *World) InCamera(d entity.Drawable) bool {
	return w.camera.Has(d)
}

// Counts returns the size of every container by name
func (w *World) Counts() map[string]int {
	return w.registry.Counts()
}

// Events returns what happened during the most recent tick
func (w *World) Events() []system.Event {
	return w.events
}

// Tick returns the number of completed updates
func (w *World) Tick() uint64 {
	return w.tick
}

// Background returns the stage background image key, if any
func (w *World) Background() string {
	return w.layout.Background
}

// Layout returns the stage the world was built from
func (w *World) Layout() *system.Layout {
	return w.layout
}
