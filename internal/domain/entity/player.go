package entity

import (
	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
	"github.com/Kassicus/colorsurvivor/internal/ecs"
)

// PlayerStats holds the configured player attributes
type PlayerStats struct {
	Speed     float64
	Size      float64
	Health    int
	MaxHealth int
	Look      Look
}

// Player represents the controlled entity
type Player struct {
	Body

	Speed     float64
	Health    int
	MaxHealth int
	Coins     int

	Weapons   []Weapon
	Inventory *ecs.Set[*Drop] // picked-up items awaiting processing
	Emitter   *Emitter
}

// NewPlayer creates a new player centered on pos
func NewPlayer(pos geom.Vec2, stats PlayerStats) *Player {
	health := stats.Health
	if health == 0 {
		health = stats.MaxHealth
	}
	return &Player{
		Body:      NewBody(pos, stats.Size, stats.Look),
		Speed:     stats.Speed,
		Health:    health,
		MaxHealth: stats.MaxHealth,
		Inventory: ecs.NewSet[*Drop]("inventory"),
	}
}

// Steer sets velocity from key state. Opposing keys cancel and
// diagonals are not normalized.
func (p *Player) Steer(s Steering) {
	p.Vel = geom.Vec2{}
	if s.Left {
		p.Vel.X -= p.Speed
	}
	if s.Right {
		p.Vel.X += p.Speed
	}
	if s.Up {
		p.Vel.Y -= p.Speed
	}
	if s.Down {
		p.Vel.Y += p.Speed
	}
}

// Update runs the player's own per-tick work
func (p *Player) Update(dt float64, arena Arena) {
	p.Integrate(dt)

	if p.Emitter != nil {
		for _, particle := range p.Emitter.Refill(p.Pos, arena.Rand()) {
			arena.SpawnParticle(particle)
		}
	}

	p.drainInventory()

	for _, w := range p.Weapons {
		w.Tick(p.Pos, arena)
	}

	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// drainInventory credits coins and empties the inventory
func (p *Player) drainInventory() {
	for _, d := range p.Inventory.Items() {
		if d.Kind == DropCoin {
			p.Coins += d.Amount
		}
		p.Inventory.Remove(d)
	}
}

// TakeDamage lowers health. Health may go below zero.
func (p *Player) TakeDamage(damage int) {
	p.Health -= damage
}

// IsAlive returns true while health is above zero
func (p *Player) IsAlive() bool {
	return p.Health > 0
}
