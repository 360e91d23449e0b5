package system

import (
	"math/rand"

	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

// Hit is one projectile striking one enemy
type Hit struct {
	Projectile *entity.Projectile
	Enemy      *entity.Enemy
}

// ResolveProjectileHits damages enemies with overlapping projectiles.
// A projectile hits at most one enemy; once it has hit, it is skipped for
// the rest of the pass. The caller removes the returned projectiles.
func ResolveProjectileHits(enemies []*entity.Enemy, projectiles []*entity.Projectile) []Hit {
	var hits []Hit
	spent := make(map[*entity.Projectile]struct{})

	for _, e := range enemies {
		box := e.Box()
		for _, p := range projectiles {
			if _, ok := spent[p]; ok {
				continue
			}
			if !box.Overlaps(p.Box()) {
				continue
			}
			e.TakeDamage(p.Damage)
			spent[p] = struct{}{}
			hits = append(hits, Hit{Projectile: p, Enemy: e})
		}
	}
	return hits
}

// SeparateEnemies nudges every pair of distinct overlapping enemies by an
// independent random offset in [-jitter, jitter] on both axes. It returns
// the number of overlapping pairs.
func SeparateEnemies(enemies []*entity.Enemy, jitter float64, rng *rand.Rand) int {
	pairs := 0
	for i, a := range enemies {
		for _, b := range enemies[i+1:] {
			if a == b || !a.Box().Overlaps(b.Box()) {
				continue
			}
			a.Pos = a.Pos.Add(jitterOffset(jitter, rng))
			b.Pos = b.Pos.Add(jitterOffset(jitter, rng))
			pairs++
		}
	}
	return pairs
}

func jitterOffset(jitter float64, rng *rand.Rand) geom.Vec2 {
	return geom.V(
		(rng.Float64()*2-1)*jitter,
		(rng.Float64()*2-1)*jitter,
	)
}

// RollLoot decides what a dying enemy leaves behind. ok is false when
// the roll misses. A successful roll on an empty table is a configuration
// error.
func RollLoot(table entity.LootTable, rng *rand.Rand) (kind entity.DropKind, ok bool, err error) {
	if table.DrawRange <= 0 {
		return 0, false, nil
	}
	if rng.Intn(table.DrawRange) >= table.Chance {
		return 0, false, nil
	}
	if len(table.Kinds) == 0 {
		return 0, false, entity.ErrEmptyDropTable
	}
	return table.Kinds[rng.Intn(len(table.Kinds))], true, nil
}

// CollectDrops returns the ground items overlapping the player, in order
func CollectDrops(player *entity.Player, drops []*entity.Drop) []*entity.Drop {
	var picked []*entity.Drop
	box := player.Box()
	for _, d := range drops {
		if box.Overlaps(d.Box()) {
			picked = append(picked, d)
		}
	}
	return picked
}

// ContactHits lets every live enemy overlapping the player strike it,
// in enemy order, and returns the enemies that dealt damage.
func ContactHits(player *entity.Player, enemies []*entity.Enemy) []*entity.Enemy {
	var struck []*entity.Enemy
	box := player.Box()
	for _, e := range enemies {
		if box.Overlaps(e.Box()) && e.Strike(player) {
			struck = append(struck, e)
		}
	}
	return struck
}
