package entity

import (
	"fmt"

	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

// DropKind defines the type of ground item
type DropKind int

const (
	DropHealth DropKind = iota
	DropCoin
)

var dropKindNames = map[DropKind]string{
	DropHealth: ImageHealth,
	DropCoin:   ImageCoin,
}

func (k DropKind) String() string {
	if name, ok := dropKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DropKind(%d)", int(k))
}

// ParseDropKind maps a config name to a DropKind
func ParseDropKind(name string) (DropKind, bool) {
	for k, n := range dropKindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Drop is an item lying in the world until the player walks over it
type Drop struct {
	Body

	Kind   DropKind
	Amount int // health restored or coin value
}

// Pickup transfers the drop's effect to p. Health applies at once and is
// clamped by the player's next update; coins go through the inventory.
func (d *Drop) Pickup(p *Player) {
	switch d.Kind {
	case DropHealth:
		p.Health += d.Amount
	case DropCoin:
		p.Inventory.Add(d)
	}
}

// DropSpec is the configured payload and hitbox for one drop kind
type DropSpec struct {
	Amount int
	Size   float64
}

// DropSpawner builds a drop of a fixed kind at pos
type DropSpawner func(pos geom.Vec2) *Drop

// DropFactory maps each loot kind to the function that spawns it
type DropFactory map[DropKind]DropSpawner

// NewDropFactory builds spawners for the given specs. Each drop is drawn
// with the image named after its kind.
func NewDropFactory(specs map[DropKind]DropSpec) DropFactory {
	f := make(DropFactory, len(specs))
	for kind, spec := range specs {
		f[kind] = func(pos geom.Vec2) *Drop {
			return &Drop{
				Body:   NewBody(pos, spec.Size, Look{Key: kind.String()}),
				Kind:   kind,
				Amount: spec.Amount,
			}
		}
	}
	return f
}

// Spawn creates a drop of kind at pos
func (f DropFactory) Spawn(kind DropKind, pos geom.Vec2) (*Drop, error) {
	spawn, ok := f[kind]
	if !ok {
		return nil, fmt.Errorf("no spawner for drop %s", kind)
	}
	return spawn(pos), nil
}
