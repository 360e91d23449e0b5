package entity

import (
	"fmt"

	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

// Kind defines the enemy variant
type Kind int

const (
	GroundFollower Kind = iota
	FlyerFollower
)

// Behavior is the capability set a Kind grants
type Behavior struct {
	Follows           bool // chases the player
	CollidesWithWalls bool
}

var behaviors = map[Kind]Behavior{
	GroundFollower: {Follows: true, CollidesWithWalls: true},
	FlyerFollower:  {Follows: true, CollidesWithWalls: false},
}

var kindNames = map[Kind]string{
	GroundFollower: "ground_follower",
	FlyerFollower:  "flyer_follower",
}

// Behavior returns the capabilities for k
func (k Kind) Behavior() Behavior {
	return behaviors[k]
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a config name to a Kind
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// LootTable is what an enemy may leave behind on death.
// A roll in [0, DrawRange) below Chance drops one uniformly chosen kind.
type LootTable struct {
	Kinds     []DropKind
	Chance    int
	DrawRange int
}

// EnemyStats holds the configured attributes for one enemy kind
type EnemyStats struct {
	Kind   Kind
	Speed  float64
	Size   float64
	Health int
	Loot   LootTable
	Look   Look

	ContactDamage   int // dealt to the player on overlap, 0 = harmless
	ContactCooldown int // ticks between contact hits
}

// Enemy represents an enemy entity
type Enemy struct {
	Body

	Kind    Kind
	Speed   float64
	Health  int
	Loot    LootTable
	Emitter *Emitter

	ContactDamage   int
	ContactCooldown int

	contactWait int
	dead        bool
}

// NewEnemy creates a new enemy centered on pos
func NewEnemy(pos geom.Vec2, stats EnemyStats) *Enemy {
	return &Enemy{
		Body:   NewBody(pos, stats.Size, stats.Look),
		Kind:   stats.Kind,
		Speed:  stats.Speed,
		Health: stats.Health,
		Loot:   stats.Loot,

		ContactDamage:   stats.ContactDamage,
		ContactCooldown: stats.ContactCooldown,
	}
}

// TakeDamage applies damage and reports whether the enemy is now dying
func (e *Enemy) TakeDamage(damage int) bool {
	e.Health -= damage
	return e.Health <= 0
}

// IsAlive returns true if enemy has health and has not been killed
func (e *Enemy) IsAlive() bool {
	return e.Health > 0 && !e.dead
}

// Kill marks the enemy dead. It returns true only the first time,
// so death effects run exactly once.
func (e *Enemy) Kill() bool {
	if e.dead {
		return false
	}
	e.dead = true
	return true
}

// Chase points velocity at target with the enemy's own speed
func (e *Enemy) Chase(target geom.Vec2) {
	e.Vel = geom.Direction(e.Pos, target, e.Speed)
}

// Strike deals contact damage to p once the contact cooldown has run
// out. It reports whether p was hurt.
func (e *Enemy) Strike(p *Player) bool {
	if e.ContactDamage <= 0 || e.contactWait > 0 || !e.IsAlive() {
		return false
	}
	p.TakeDamage(e.ContactDamage)
	e.contactWait = e.ContactCooldown
	return true
}

// Update integrates motion, counts down the contact cooldown and keeps
// the emitter topped up
func (e *Enemy) Update(dt float64, arena Arena) {
	e.Integrate(dt)
	if e.contactWait > 0 {
		e.contactWait--
	}
	if e.Emitter != nil {
		for _, particle := range e.Emitter.Refill(e.Pos, arena.Rand()) {
			arena.SpawnParticle(particle)
		}
	}
}
