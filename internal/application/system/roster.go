package system

import (
	"fmt"

	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/config"
)

// EnemyTemplate is everything needed to spawn one enemy type
type EnemyTemplate struct {
	Stats   entity.EnemyStats
	Emitter *entity.EmitterSpec
}

// Roster is the entity configuration translated into domain specs
type Roster struct {
	Player        entity.PlayerStats
	PlayerEmitter *entity.EmitterSpec
	Enemies       map[string]EnemyTemplate
	Drops         map[entity.DropKind]entity.DropSpec

	weapons          []config.WeaponConfig
	weaponNames      []string
	projectileMaxAge int
}

// BuildRoster validates and converts entities.json
func BuildRoster(cfg *config.EntitiesConfig, sim config.SimulationConfig) (*Roster, error) {
	r := &Roster{
		Player: entity.PlayerStats{
			Speed:     cfg.Player.Speed,
			Size:      cfg.Player.Size,
			MaxHealth: cfg.Player.MaxHealth,
			Look:      entity.Look{Key: cfg.Player.Image},
		},
		Enemies:          make(map[string]EnemyTemplate, len(cfg.Enemies)),
		Drops:            make(map[entity.DropKind]entity.DropSpec, len(cfg.Drops)),
		projectileMaxAge: sim.ProjectileMaxAge,
	}

	if cfg.Player.Emitter != "" {
		spec, err := emitterSpec(cfg.Emitters, cfg.Player.Emitter)
		if err != nil {
			return nil, err
		}
		r.PlayerEmitter = spec
	}

	for name, d := range cfg.Drops {
		kind, ok := entity.ParseDropKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown drop %q", name)
		}
		r.Drops[kind] = entity.DropSpec{Amount: d.Amount, Size: d.Size}
	}

	for name, e := range cfg.Enemies {
		tmpl, err := enemyTemplate(cfg, name, e)
		if err != nil {
			return nil, err
		}
		r.Enemies[name] = tmpl
	}

	for _, name := range cfg.Player.Weapons {
		w, ok := cfg.Weapons[name]
		if !ok {
			return nil, fmt.Errorf("player weapon %q is not defined", name)
		}
		// NewWeapons rebuilds from the same data and skips errors.
		if _, err := buildWeapon(name, w, sim.ProjectileMaxAge); err != nil {
			return nil, err
		}
		r.weapons = append(r.weapons, w)
		r.weaponNames = append(r.weaponNames, name)
	}

	return r, nil
}

// NewWeapons returns fresh weapon instances with full cooldowns
func (r *Roster) NewWeapons() []entity.Weapon {
	out := make([]entity.Weapon, 0, len(r.weapons))
	for i, w := range r.weapons {
		weapon, err := buildWeapon(r.weaponNames[i], w, r.projectileMaxAge)
		if err != nil {
			continue // validated in BuildRoster
		}
		out = append(out, weapon)
	}
	return out
}

func enemyTemplate(cfg *config.EntitiesConfig, name string, e config.EnemyConfig) (EnemyTemplate, error) {
	kind, ok := entity.ParseKind(e.Kind)
	if !ok {
		return EnemyTemplate{}, fmt.Errorf("enemy %q: %w: %q", name, config.ErrUnknownEnemyKind, e.Kind)
	}

	loot := entity.LootTable{Chance: e.Loot.Chance, DrawRange: e.Loot.DrawRange}
	for _, d := range e.Loot.Drops {
		dk, ok := entity.ParseDropKind(d)
		if !ok {
			return EnemyTemplate{}, fmt.Errorf("enemy %q drops unknown item %q", name, d)
		}
		loot.Kinds = append(loot.Kinds, dk)
	}

	tmpl := EnemyTemplate{
		Stats: entity.EnemyStats{
			Kind:   kind,
			Speed:  e.Speed,
			Size:   e.Size,
			Health: e.Health,
			Loot:   loot,
			Look:   entity.Look{Key: e.Image},

			ContactDamage:   e.ContactDamage,
			ContactCooldown: e.ContactCooldown,
		},
	}
	if e.Emitter != "" {
		spec, err := emitterSpec(cfg.Emitters, e.Emitter)
		if err != nil {
			return EnemyTemplate{}, err
		}
		tmpl.Emitter = spec
	}
	return tmpl, nil
}

func emitterSpec(emitters map[string]config.EmitterConfig, name string) (*entity.EmitterSpec, error) {
	c, ok := emitters[name]
	if !ok {
		return nil, fmt.Errorf("emitter %q is not defined", name)
	}

	var policy entity.ColorPolicy
	switch c.Color {
	case "gray", "":
		policy = entity.ColorGray
	case "red":
		policy = entity.ColorRed
	default:
		return nil, fmt.Errorf("emitter %q has unknown color policy %q", name, c.Color)
	}

	return &entity.EmitterSpec{
		Max:        c.Max,
		MinSize:    c.MinSize,
		MaxSize:    c.MaxSize,
		Offset:     c.Offset,
		MinLife:    c.MinLife,
		MaxLife:    c.MaxLife,
		MinVel:     c.MinVel,
		MaxVel:     c.MaxVel,
		Policy:     policy,
		ColorFloor: c.ColorFloor,
	}, nil
}

func buildWeapon(name string, w config.WeaponConfig, maxAge int) (entity.Weapon, error) {
	switch w.Type {
	case "melee":
		facing, err := entity.ParseFacing(w.Facing)
		if err != nil {
			return nil, fmt.Errorf("weapon %q: %w", name, err)
		}
		m := entity.NewMelee(name, w.Damage, w.Range, facing, w.Cooldown)
		if w.Width > 0 {
			m.Width = w.Width
		}
		return m, nil
	case "ranged":
		c, err := config.ParseColor(w.Projectile.Color)
		if err != nil {
			return nil, fmt.Errorf("weapon %q: %w", name, err)
		}
		spec := entity.ProjectileSpec{
			Speed:  w.Projectile.Speed,
			Size:   w.Projectile.Size,
			Color:  c,
			MaxAge: maxAge,
		}
		return entity.NewRanged(name, w.Damage, w.Range, w.Multishot, w.Cooldown, spec), nil
	}
	return nil, fmt.Errorf("weapon %q has unknown type %q", name, w.Type)
}
