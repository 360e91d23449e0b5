package entity

import (
	"errors"
	"image/color"
	"math/rand"

	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

// EntityID is a unique identifier for an entity
type EntityID uint64

// Fixed image keys the world requires before it can be built
const (
	ImageHealth = "health"
	ImageCoin   = "coin"
)

// ErrEmptyDropTable is returned when a successful loot roll has nothing to drop
var ErrEmptyDropTable = errors.New("empty drop table")

// Look describes how an entity is drawn: a named image, or a solid fill
// when Key is empty.
type Look struct {
	Key  string
	Fill color.RGBA
}

// Drawable is the render contract: a world-space box and how to draw it.
type Drawable interface {
	Box() geom.Rect
	Appearance() Look
}

// Arena is the narrow view of the world that entities act on during
// their own update: target lookup plus spawn sinks.
type Arena interface {
	// Enemies returns live enemies in insertion order
	Enemies() []*Enemy
	SpawnProjectile(p *Projectile)
	SpawnParticle(p *Particle)
	Rand() *rand.Rand
}

// Steering is the polled four-direction key state
type Steering struct {
	Left, Right, Up, Down bool
}
