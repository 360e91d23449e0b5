package config

import "fmt"

// Enemy kind names accepted in entities.json
const (
	KindGroundFollower = "ground_follower"
	KindFlyerFollower  = "flyer_follower"
)

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player   PlayerConfig             `json:"player"`
	Enemies  map[string]EnemyConfig   `json:"enemies"`
	Weapons  map[string]WeaponConfig  `json:"weapons"`
	Drops    map[string]DropConfig    `json:"drops"`
	Emitters map[string]EmitterConfig `json:"emitters"`
}

type PlayerConfig struct {
	Image     string   `json:"image"`
	Speed     float64  `json:"speed"`
	Size      float64  `json:"size"`
	MaxHealth int      `json:"maxHealth"`
	Emitter   string   `json:"emitter,omitempty"`
	Weapons   []string `json:"weapons"`
}

type EnemyConfig struct {
	Kind    string     `json:"kind"`
	Image   string     `json:"image"`
	Speed   float64    `json:"speed"`
	Size    float64    `json:"size"`
	Health  int        `json:"health"`
	Emitter string     `json:"emitter,omitempty"`
	Loot    LootConfig `json:"loot"`

	ContactDamage   int `json:"contactDamage,omitempty"`
	ContactCooldown int `json:"contactCooldown,omitempty"` // ticks
}

type LootConfig struct {
	Drops     []string `json:"drops"`
	Chance    int      `json:"chance"`
	DrawRange int      `json:"drawRange"`
}

type WeaponConfig struct {
	Type       string           `json:"type"` // "melee" or "ranged"
	Damage     int              `json:"damage"`
	Range      float64          `json:"range"`
	Cooldown   int              `json:"cooldown"` // ticks
	Facing     string           `json:"facing,omitempty"`
	Width      float64          `json:"width,omitempty"`
	Multishot  int              `json:"multishot,omitempty"`
	Projectile ProjectileConfig `json:"projectile"`
}

type ProjectileConfig struct {
	Speed float64 `json:"speed"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

type DropConfig struct {
	Amount int     `json:"amount"`
	Size   float64 `json:"size"`
}

type EmitterConfig struct {
	Max        int     `json:"max"`
	MinSize    int     `json:"minSize"`
	MaxSize    int     `json:"maxSize"`
	Offset     int     `json:"offset"`
	MinLife    int     `json:"minLife"`
	MaxLife    int     `json:"maxLife"`
	MinVel     float64 `json:"minVel"`
	MaxVel     float64 `json:"maxVel"`
	Color      string  `json:"color"` // "gray" or "red"
	ColorFloor uint8   `json:"colorFloor"`
}

// Validate checks cross references between sections
func (c *EntitiesConfig) Validate() error {
	for _, name := range c.Player.Weapons {
		if _, ok := c.Weapons[name]; !ok {
			return fmt.Errorf("player weapon %q is not defined", name)
		}
	}
	if err := c.checkEmitter("player", c.Player.Emitter); err != nil {
		return err
	}

	for name, e := range c.Enemies {
		switch e.Kind {
		case KindGroundFollower, KindFlyerFollower:
		default:
			return fmt.Errorf("enemy %q: %w: %q", name, ErrUnknownEnemyKind, e.Kind)
		}
		if err := c.checkEmitter(name, e.Emitter); err != nil {
			return err
		}
		if e.ContactDamage < 0 || e.ContactCooldown < 0 {
			return fmt.Errorf("enemy %q has negative contact damage or cooldown", name)
		}
		for _, drop := range e.Loot.Drops {
			if _, ok := c.Drops[drop]; !ok {
				return fmt.Errorf("enemy %q drops undefined item %q", name, drop)
			}
		}
	}

	for name, w := range c.Weapons {
		if w.Type != "melee" && w.Type != "ranged" {
			return fmt.Errorf("weapon %q has unknown type %q", name, w.Type)
		}
	}
	return nil
}

func (c *EntitiesConfig) checkEmitter(owner, name string) error {
	if name == "" {
		return nil
	}
	if _, ok := c.Emitters[name]; !ok {
		return fmt.Errorf("%s emitter %q is not defined", owner, name)
	}
	return nil
}
