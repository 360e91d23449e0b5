package entity

import (
	"math/rand"

	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// stubArena records spawns instead of placing them in a world
type stubArena struct {
	enemies     []*Enemy
	projectiles []*Projectile
	particles   []*Particle
	rng         *rand.Rand
}

func newStubArena(enemies ...*Enemy) *stubArena {
	return &stubArena{enemies: enemies, rng: testRNG()}
}

func (a *stubArena) Enemies() []*Enemy              { return a.enemies }
func (a *stubArena) SpawnProjectile(p *Projectile) { a.projectiles = append(a.projectiles, p) }
func (a *stubArena) SpawnParticle(p *Particle)     { a.particles = append(a.particles, p) }
func (a *stubArena) Rand() *rand.Rand              { return a.rng }

func testEnemyAt(x, y float64) *Enemy {
	return NewEnemy(geom.V(x, y), EnemyStats{
		Kind:   GroundFollower,
		Speed:  100,
		Size:   40,
		Health: 5,
	})
}
