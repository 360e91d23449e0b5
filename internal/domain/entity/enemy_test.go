package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

func TestKind_Behavior(t *testing.T) {
	tests := []struct {
		kind  Kind
		walls bool
	}{
		{GroundFollower, true},
		{FlyerFollower, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			b := tt.kind.Behavior()
			assert.True(t, b.Follows)
			assert.Equal(t, tt.walls, b.CollidesWithWalls)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("flyer_follower")
	require.True(t, ok)
	assert.Equal(t, FlyerFollower, k)

	_, ok = ParseKind("follower")
	assert.False(t, ok)

	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestEnemy_TakeDamage(t *testing.T) {
	enemy := testEnemyAt(0, 0)

	dying := enemy.TakeDamage(3)
	assert.False(t, dying)
	assert.Equal(t, 2, enemy.Health)
	assert.True(t, enemy.IsAlive())

	dying = enemy.TakeDamage(5)
	assert.True(t, dying)
	assert.Equal(t, -3, enemy.Health)
	assert.False(t, enemy.IsAlive())
}

func TestEnemy_StrikeCooldown(t *testing.T) {
	player := testPlayer()
	enemy := testEnemyAt(0, 0)
	enemy.ContactDamage = 4
	enemy.ContactCooldown = 2
	arena := newStubArena()

	assert.True(t, enemy.Strike(player))
	assert.Equal(t, player.MaxHealth-4, player.Health)
	assert.False(t, enemy.Strike(player), "cooling down")

	enemy.Update(0, arena)
	assert.False(t, enemy.Strike(player))
	enemy.Update(0, arena)
	assert.True(t, enemy.Strike(player))
	assert.Equal(t, player.MaxHealth-8, player.Health)
}

func TestEnemy_StrikeHarmlessOrDead(t *testing.T) {
	player := testPlayer()

	harmless := testEnemyAt(0, 0)
	assert.False(t, harmless.Strike(player))

	dead := testEnemyAt(0, 0)
	dead.ContactDamage = 4
	dead.Health = 0
	assert.False(t, dead.Strike(player))

	assert.Equal(t, player.MaxHealth, player.Health)
}

func TestEnemy_KillOnce(t *testing.T) {
	enemy := testEnemyAt(0, 0)
	enemy.Health = 0

	assert.True(t, enemy.Kill())
	assert.False(t, enemy.Kill())
	assert.False(t, enemy.Kill())

	enemy.Health = 10
	assert.False(t, enemy.IsAlive(), "a killed enemy stays dead")
}

func TestEnemy_Chase(t *testing.T) {
	enemy := testEnemyAt(100, 100)

	enemy.Chase(geom.V(0, 0))

	assert.Less(t, enemy.Vel.X, 0.0)
	assert.Less(t, enemy.Vel.Y, 0.0)
	assert.InDelta(t, enemy.Speed, enemy.Vel.Length(), 1e-9)
}

func TestEnemy_ChaseOnTopOfTarget(t *testing.T) {
	enemy := testEnemyAt(50, 50)
	enemy.Vel = geom.V(3, 3)

	enemy.Chase(geom.V(50, 50))

	assert.Equal(t, geom.Vec2{}, enemy.Vel)
}

func TestEnemy_UpdateRefillsEmitter(t *testing.T) {
	enemy := testEnemyAt(0, 0)
	enemy.Emitter = NewEmitter(EmitterSpec{Max: 4, MinSize: 2, MaxSize: 3, MinLife: 5, MaxLife: 10, Policy: ColorRed})
	arena := newStubArena()

	enemy.Vel = geom.V(10, 0)
	enemy.Update(0.5, arena)

	assert.Equal(t, 5.0, enemy.Pos.X)
	assert.Len(t, arena.particles, 4)
	for _, p := range arena.particles {
		assert.Zero(t, p.Look.Fill.G)
		assert.Zero(t, p.Look.Fill.B)
		assert.Same(t, enemy.Emitter, p.Owner())
	}
}
