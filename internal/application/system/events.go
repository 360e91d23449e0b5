package system

import (
	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

// Event is something notable that happened during a tick
type Event interface {
	isEvent()
}

// EnemyKilled is emitted once per enemy death
type EnemyKilled struct {
	EntityID entity.EntityID
	Kind     entity.Kind
	Pos      geom.Vec2
	Dropped  bool
	Drop     entity.DropKind
}

func (EnemyKilled) isEvent() {}

// ProjectileHit is emitted when a projectile damages an enemy
type ProjectileHit struct {
	ProjectileID entity.EntityID
	EnemyID      entity.EntityID
	Damage       int
}

func (ProjectileHit) isEvent() {}

// ProjectileFired is emitted for every projectile a weapon spawns
type ProjectileFired struct {
	ProjectileID entity.EntityID
	Pos          geom.Vec2
}

func (ProjectileFired) isEvent() {}

// DropPicked is emitted when the player walks over a ground item
type DropPicked struct {
	EntityID entity.EntityID
	Kind     entity.DropKind
	Amount   int
}

func (DropPicked) isEvent() {}

// ProjectileExpired is emitted when a projectile is removed without hitting
type ProjectileExpired struct {
	ProjectileID entity.EntityID
}

func (ProjectileExpired) isEvent() {}

// PlayerDamaged is emitted when an enemy hurts the player on contact
type PlayerDamaged struct {
	EnemyID entity.EntityID
	Damage  int
	Health  int // after the hit
}

func (PlayerDamaged) isEvent() {}
