// Package world owns every entity container and advances the simulation
// one tick at a time in a fixed order.
package world

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Kassicus/colorsurvivor/internal/application/system"
	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
	"github.com/Kassicus/colorsurvivor/internal/ecs"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/assets"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/config"
)

// ImageSet is the part of the asset library the world checks at build time
type ImageSet interface {
	Has(key string) bool
}

// Observer receives a summary after every tick
type Observer interface {
	ObserveTick(events []system.Event, counts map[string]int, elapsed time.Duration)
}

// Config is what a world is built from
type Config struct {
	Roster     *system.Roster
	Layout     *system.Layout
	Simulation config.SimulationConfig
	Images     ImageSet
	Rand       *rand.Rand
}

// Option configures a World
type Option func(*World)

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) Option {
	return func(w *World) {
		w.logger = l
	}
}

// WithObserver attaches a tick observer
func WithObserver(o Observer) Option {
	return func(w *World) {
		w.observer = o
	}
}

// World is the simulation orchestrator. It implements entity.Arena, the
// target lookup and spawn sink handed to weapons and emitters.
type World struct {
	logger   *slog.Logger
	observer Observer
	rng      *rand.Rand

	sim    config.SimulationConfig
	roster *system.Roster
	drops  entity.DropFactory
	layout *system.Layout

	player *entity.Player

	camera      *ecs.Set[entity.Drawable]
	enemies     *ecs.Set[*entity.Enemy]
	projectiles *ecs.Set[*entity.Projectile]
	groundItems *ecs.Set[*entity.Drop]
	particles   *ecs.Set[*entity.Particle]
	collidables *ecs.Set[*entity.Wall]
	registry    *ecs.Registry

	wallBoxes []geom.Rect
	events    []system.Event
	tick      uint64
}

// New builds a world: walls from the layout, the player at the spawn
// point, and every placed enemy. The "health" and "coin" images must be
// present.
func New(cfg Config, opts ...Option) (*World, error) {
	if cfg.Roster == nil || cfg.Layout == nil {
		return nil, fmt.Errorf("world needs a roster and a layout")
	}
	if cfg.Images == nil {
		return nil, fmt.Errorf("world needs an image set")
	}
	for _, key := range []string{entity.ImageHealth, entity.ImageCoin} {
		if !cfg.Images.Has(key) {
			return nil, fmt.Errorf("%w: %q", assets.ErrMissingImage, key)
		}
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sim := cfg.Simulation
	if sim.CellSize <= 0 {
		sim.CellSize = entity.CellSize
	}
	if sim.CollisionTolerance <= 0 {
		sim.CollisionTolerance = system.DefaultTolerance
	}

	w := &World{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		rng:         rng,
		sim:         sim,
		roster:      cfg.Roster,
		drops:       entity.NewDropFactory(cfg.Roster.Drops),
		layout:      cfg.Layout,
		camera:      ecs.NewSet[entity.Drawable]("camera"),
		enemies:     ecs.NewSet[*entity.Enemy]("enemies"),
		projectiles: ecs.NewSet[*entity.Projectile]("projectiles"),
		groundItems: ecs.NewSet[*entity.Drop]("ground_items"),
		particles:   ecs.NewSet[*entity.Particle]("particles"),
		collidables: ecs.NewSet[*entity.Wall]("collidables"),
	}
	w.registry = ecs.NewRegistry(w.camera, w.enemies, w.projectiles, w.groundItems, w.particles, w.collidables)
	for _, opt := range opts {
		opt(w)
	}

	for _, p := range cfg.Layout.Walls {
		w.AddWall(p)
	}

	w.player = entity.NewPlayer(cfg.Layout.Spawn, cfg.Roster.Player)
	w.player.ID = entity.EntityID(w.registry.NewEntity())
	w.player.Weapons = cfg.Roster.NewWeapons()
	if cfg.Roster.PlayerEmitter != nil {
		w.player.Emitter = entity.NewEmitter(*cfg.Roster.PlayerEmitter)
	}
	w.camera.Add(w.player)

	for _, e := range cfg.Layout.Enemies {
		if _, err := w.SpawnEnemy(e.Type, e.Pos); err != nil {
			return nil, err
		}
	}

	w.logger.Info("world created",
		"stage", cfg.Layout.Name,
		"walls", w.collidables.Len(),
		"enemies", w.enemies.Len(),
	)
	return w, nil
}

// Update advances the simulation by dt seconds. The order is fixed:
// player, particles, enemies, projectiles, pickups, projectile hits,
// enemy separation, player walls, enemy walls, contact damage, chase AI.
// A non-nil error is a configuration fault and is fatal.
func (w *World) Update(dt float64) error {
	start := time.Now()
	w.events = w.events[:0]
	w.tick++

	// 1. Player self-update
	w.player.Update(dt, w)

	// 2. Particles
	for _, p := range w.particles.Items() {
		if !p.Update(dt) {
			w.Despawn(p)
		}
	}

	// 3. Enemies
	for _, e := range w.enemies.Items() {
		e.Update(dt, w)
	}
	if err := w.reapEnemies(); err != nil {
		return err
	}

	// 4. Friendly projectiles
	for _, p := range w.projectiles.Items() {
		p.Update(dt)
		if p.Expired() || w.outOfBounds(p.Box()) {
			w.Despawn(p)
			w.emit(system.ProjectileExpired{ProjectileID: p.ID})
		}
	}

	// 5. Ground items
	for _, d := range system.CollectDrops(w.player, w.groundItems.Items()) {
		d.Pickup(w.player)
		w.Despawn(d)
		w.emit(system.DropPicked{EntityID: d.ID, Kind: d.Kind, Amount: d.Amount})
		w.logger.Debug("drop picked", "kind", d.Kind.String(), "amount", d.Amount)
	}

	// 6. Projectile vs enemy
	for _, hit := range system.ResolveProjectileHits(w.enemies.Items(), w.projectiles.Items()) {
		w.Despawn(hit.Projectile)
		w.emit(system.ProjectileHit{
			ProjectileID: hit.Projectile.ID,
			EnemyID:      hit.Enemy.ID,
			Damage:       hit.Projectile.Damage,
		})
	}
	if err := w.reapEnemies(); err != nil {
		return err
	}

	// 7. Enemy vs enemy
	system.SeparateEnemies(w.enemies.Items(), w.sim.Jitter, w.rng)

	// 8. Player vs walls
	system.ResolveWalls(&w.player.Body, w.wallBoxes, w.sim.CollisionTolerance)

	// 9. Enemies vs walls
	for _, e := range w.enemies.Items() {
		if e.Kind.Behavior().CollidesWithWalls {
			system.ResolveWalls(&e.Body, w.wallBoxes, w.sim.CollisionTolerance)
		}
	}

	// Contact damage, once positions are settled
	for _, e := range system.ContactHits(w.player, w.enemies.Items()) {
		w.emit(system.PlayerDamaged{EnemyID: e.ID, Damage: e.ContactDamage, Health: w.player.Health})
		w.logger.Debug("player hit", "enemy", e.ID, "damage", e.ContactDamage, "health", w.player.Health)
	}

	// 10. AI
	system.Chase(w.enemies.Items(), w.player.Pos)

	if w.observer != nil {
		w.observer.ObserveTick(w.events, w.registry.Counts(), time.Since(start))
	}
	return nil
}

// reapEnemies kills every enemy whose health has run out
func (w *World) reapEnemies() error {
	for _, e := range w.enemies.Items() {
		if e.Health > 0 {
			continue
		}
		if err := w.kill(e); err != nil {
			return err
		}
	}
	return nil
}

// kill rolls loot once and removes e from every container
func (w *World) kill(e *entity.Enemy) error {
	if !e.Kill() {
		return nil
	}

	ev := system.EnemyKilled{EntityID: e.ID, Kind: e.Kind, Pos: e.Pos}
	kind, ok, err := system.RollLoot(e.Loot, w.rng)
	if err != nil {
		w.logger.Error("loot roll failed", "enemy", e.ID, "kind", e.Kind.String(), "error", err)
		return fmt.Errorf("enemy %d (%s): %w", e.ID, e.Kind, err)
	}
	if ok {
		if _, err := w.SpawnDrop(kind, e.Pos); err != nil {
			return fmt.Errorf("enemy %d (%s): %w", e.ID, e.Kind, err)
		}
		ev.Dropped = true
		ev.Drop = kind
	}

	w.Despawn(e)
	w.emit(ev)
	w.logger.Debug("enemy killed", "id", e.ID, "kind", e.Kind.String(), "dropped", ev.Dropped)
	return nil
}

func (w *World) outOfBounds(box geom.Rect) bool {
	if !w.sim.DespawnOutOfBounds || w.layout.Bounds == nil {
		return false
	}
	return system.OutOfBounds(box, *w.layout.Bounds)
}

func (w *World) emit(e system.Event) {
	w.events = append(w.events, e)
}

// Despawn removes v from every container that holds it, including the
// emitter that spawned it.
func (w *World) Despawn(v any) {
	w.registry.Destroy(v)
	if p, ok := v.(*entity.Particle); ok && p.Owner() != nil {
		p.Owner().Detach(p)
	}
}

// SpawnEnemy places an enemy of the named type
func (w *World) SpawnEnemy(typeName string, pos geom.Vec2) (*entity.Enemy, error) {
	tmpl, ok := w.roster.Enemies[typeName]
	if !ok {
		return nil, fmt.Errorf("spawn %q: %w", typeName, config.ErrUnknownEnemyKind)
	}
	e := entity.NewEnemy(pos, tmpl.Stats)
	e.ID = entity.EntityID(w.registry.NewEntity())
	if tmpl.Emitter != nil {
		e.Emitter = entity.NewEmitter(*tmpl.Emitter)
	}
	w.enemies.Add(e)
	w.camera.Add(e)
	return e, nil
}

// SpawnDrop places a ground item
func (w *World) SpawnDrop(kind entity.DropKind, pos geom.Vec2) (*entity.Drop, error) {
	d, err := w.drops.Spawn(kind, pos)
	if err != nil {
		return nil, err
	}
	d.ID = entity.EntityID(w.registry.NewEntity())
	w.groundItems.Add(d)
	w.camera.Add(d)
	return d, nil
}

// AddWall places a static wall
func (w *World) AddWall(p system.WallPlacement) *entity.Wall {
	wall := entity.NewWall(p.X, p.Y, p.W, p.H, w.sim.CellSize, entity.Look{Key: "wall", Fill: wallFill})
	wall.ID = entity.EntityID(w.registry.NewEntity())
	w.collidables.Add(wall)
	w.camera.Add(wall)
	w.wallBoxes = append(w.wallBoxes, wall.Box())
	return wall
}

// Enemies returns live enemies in insertion order
func (w *World) Enemies() []*entity.Enemy {
	return w.enemies.Items()
}

// SpawnProjectile adds a projectile to the projectile and camera sets
func (w *World) SpawnProjectile(p *entity.Projectile) {
	p.ID = entity.EntityID(w.registry.NewEntity())
	w.projectiles.Add(p)
	w.camera.Add(p)
	w.emit(system.ProjectileFired{ProjectileID: p.ID, Pos: p.Pos})
}

// SpawnParticle adds a particle to the particle and camera sets
func (w *World) SpawnParticle(p *entity.Particle) {
	p.ID = entity.EntityID(w.registry.NewEntity())
	w.particles.Add(p)
	w.camera.Add(p)
}

// Rand returns the world's seeded RNG
func (w *World) Rand() *rand.Rand {
	return w.rng
}
