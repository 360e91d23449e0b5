package entity

import (
	"fmt"

	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

// Cooldown is a frame-counted fire timer
type Cooldown struct {
	Current int
	Max     int
}

// NewCooldown starts cooling from max
func NewCooldown(max int) Cooldown {
	return Cooldown{Current: max, Max: max}
}

// Tick counts down one frame. It returns true when the weapon should
// fire, and resets to Max when it does.
func (c *Cooldown) Tick() bool {
	c.Current--
	if c.Current <= 0 {
		c.Current = c.Max
		return true
	}
	return false
}

// Weapon is anything the player carries that acts once per tick
type Weapon interface {
	// Tick advances the cooldown and fires from the wielder's position
	// when it expires. It returns true if the weapon fired.
	Tick(wielder geom.Vec2, arena Arena) bool
	Label() string
}

// Facing is a cardinal direction for melee swings
type Facing int

const (
	North Facing = iota
	South
	East
	West
)

// ParseFacing accepts "n", "s", "e", "w"
func ParseFacing(s string) (Facing, error) {
	switch s {
	case "n":
		return North, nil
	case "s":
		return South, nil
	case "e":
		return East, nil
	case "w":
		return West, nil
	}
	return 0, fmt.Errorf("unknown facing %q", s)
}

// DefaultMeleeWidth is the thickness of a melee hitbox
const DefaultMeleeWidth = 20

// Melee damages every enemy inside a directional box when it fires
type Melee struct {
	Name     string
	Damage   int
	Range    float64
	Width    float64
	Facing   Facing
	Cooldown Cooldown

	LastBox geom.Rect // hitbox of the most recent swing
}

// NewMelee creates a melee weapon with the default width
func NewMelee(name string, damage int, rng float64, facing Facing, cooldown int) *Melee {
	return &Melee{
		Name:     name,
		Damage:   damage,
		Range:    rng,
		Width:    DefaultMeleeWidth,
		Facing:   facing,
		Cooldown: NewCooldown(cooldown),
	}
}

func (m *Melee) Label() string { return m.Name }

// Hitbox returns the swing box anchored at the wielder
func (m *Melee) Hitbox(at geom.Vec2) geom.Rect {
	half := m.Width / 2
	switch m.Facing {
	case North:
		return geom.Rect{X: at.X - half, Y: at.Y - m.Range, W: m.Width, H: m.Range}
	case South:
		return geom.Rect{X: at.X - half, Y: at.Y, W: m.Width, H: m.Range}
	case West:
		return geom.Rect{X: at.X - m.Range, Y: at.Y - half, W: m.Range, H: m.Width}
	default:
		return geom.Rect{X: at.X, Y: at.Y - half, W: m.Range, H: m.Width}
	}
}

func (m *Melee) Tick(wielder geom.Vec2, arena Arena) bool {
	if !m.Cooldown.Tick() {
		return false
	}
	m.Fire(wielder, arena)
	return true
}

// Fire swings immediately and returns the number of enemies hit
func (m *Melee) Fire(wielder geom.Vec2, arena Arena) int {
	m.LastBox = m.Hitbox(wielder)
	hits := 0
	for _, e := range arena.Enemies() {
		if e.Box().Overlaps(m.LastBox) {
			e.TakeDamage(m.Damage)
			hits++
		}
	}
	return hits
}

// Ranged fires seeking projectiles at up to Multishot enemies in range
type Ranged struct {
	Name       string
	Damage     int
	Range      float64
	Multishot  int
	Projectile ProjectileSpec
	Cooldown   Cooldown
}

// NewRanged creates a ranged weapon. A multishot below 1 is treated as 1.
func NewRanged(name string, damage int, rng float64, multishot, cooldown int, spec ProjectileSpec) *Ranged {
	if multishot < 1 {
		multishot = 1
	}
	return &Ranged{
		Name:       name,
		Damage:     damage,
		Range:      rng,
		Multishot:  multishot,
		Projectile: spec,
		Cooldown:   NewCooldown(cooldown),
	}
}

func (r *Ranged) Label() string { return r.Name }

func (r *Ranged) Tick(wielder geom.Vec2, arena Arena) bool {
	if !r.Cooldown.Tick() {
		return false
	}
	r.Fire(wielder, arena)
	return true
}

// Fire spawns one projectile per distinct live enemy within range, in
// enemy insertion order, stopping at Multishot. It returns the number fired.
func (r *Ranged) Fire(wielder geom.Vec2, arena Arena) int {
	targeted := make(map[*Enemy]struct{}, r.Multishot)
	for _, e := range arena.Enemies() {
		if len(targeted) >= r.Multishot {
			break
		}
		if _, ok := targeted[e]; ok || !e.IsAlive() {
			continue
		}
		if geom.Distance(wielder, e.Pos) > r.Range {
			continue
		}
		arena.SpawnProjectile(NewProjectile(wielder, e.Pos, r.Damage, true, r.Projectile))
		targeted[e] = struct{}{}
	}
	return len(targeted)
}
