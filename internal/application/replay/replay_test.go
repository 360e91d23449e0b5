package replay

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kassicus/colorsurvivor/internal/application/system"
	"github.com/Kassicus/colorsurvivor/internal/application/world"
	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/assets"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/config"
)

func buildTestWorld(seed int64) (*world.World, error) {
	roster := &system.Roster{
		Player: entity.PlayerStats{Speed: 250, Size: 40, MaxHealth: 100},
		PlayerEmitter: &entity.EmitterSpec{
			Max: 20, MinSize: 3, MaxSize: 5, Offset: 15,
			MinLife: 5, MaxLife: 30, MinVel: -40, MaxVel: 40,
		},
		Enemies: map[string]system.EnemyTemplate{
			"follower": {Stats: entity.EnemyStats{Kind: entity.GroundFollower, Speed: 100, Size: 40, Health: 5}},
		},
		Drops: map[entity.DropKind]entity.DropSpec{
			entity.DropHealth: {Amount: 5, Size: 5},
			entity.DropCoin:   {Amount: 1, Size: 5},
		},
	}
	layout := &system.Layout{
		Name:  "test",
		Spawn: geom.V(500, 500),
		Walls: []system.WallPlacement{{X: 14, Y: 8, W: 2, H: 4}},
		Enemies: []system.EnemyPlacement{
			{Type: "follower", Pos: geom.V(100, 100)},
			{Type: "follower", Pos: geom.V(110, 100)},
			{Type: "follower", Pos: geom.V(900, 900)},
		},
	}
	return world.New(world.Config{
		Roster:     roster,
		Layout:     layout,
		Simulation: config.SimulationConfig{CollisionTolerance: 15, CellSize: 50, Jitter: 1},
		Images:     assets.Placeholder(4, entity.ImageHealth, entity.ImageCoin),
		Rand:       rand.New(rand.NewSource(seed)),
	})
}

func TestFrameInput_Input(t *testing.T) {
	in := system.InputState{Left: true, Down: true, Pause: true}
	f := NewFrameInput(7, in, 0.008)

	assert.Equal(t, 7, f.F)
	assert.Equal(t, 0.008, f.DT)
	assert.Equal(t, system.InputState{Left: true, Down: true}, f.Input())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(42, "demo")
	assert.True(t, r.IsRecording())

	r.RecordFrame(system.InputState{Right: true}, 0.01)
	r.RecordFrame(system.InputState{Up: true}, 0.02)
	r.Stop()
	r.RecordFrame(system.InputState{Down: true}, 0.03)

	data := r.Data()
	assert.Equal(t, 2, r.FrameCount())
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "demo", data.Stage)
	assert.Len(t, data.SessionID, 36)
	assert.Equal(t, FrameInput{F: 0, R: true, DT: 0.01}, data.Frames[0])
	assert.Equal(t, FrameInput{F: 1, U: true, DT: 0.02}, data.Frames[1])
	assert.Contains(t, r.GenerateFilename(), data.SessionID[:8])
}

func TestSaveLoad(t *testing.T) {
	data := CreateTestReplayData(30, 1.0/120)
	data.Frames[3].L = true

	for _, name := range []string{"run.json", "run.json.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, data))

			loaded, err := LoadReplay(path)
			require.NoError(t, err)
			assert.Equal(t, data, *loaded)
		})
	}
}

func TestSave_NoFrames(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "empty.json"), ReplayData{})
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open file")

	_, err = Decode(bytes.NewBufferString("{"), false)
	assert.ErrorContains(t, err, "failed to decode replay")

	_, err = Decode(bytes.NewBufferString("not zstd at all"), true)
	assert.Error(t, err)
}

func TestEncode_CompressedIsSmaller(t *testing.T) {
	data := CreateTestReplayData(2000, 1.0/120)

	var plain, packed bytes.Buffer
	require.NoError(t, Encode(&plain, data, false))
	require.NoError(t, Encode(&packed, data, true))

	assert.Less(t, packed.Len(), plain.Len())
}

func TestReplayer_Next(t *testing.T) {
	data := CreateTestReplayData(3, 0.5)
	data.Frames[1].R = true
	r := NewReplayer(data)

	assert.Equal(t, 3, r.TotalFrames())
	assert.Equal(t, int64(12345), r.Seed())

	_, dt, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 0.5, dt)

	in, _, ok := r.Next()
	require.True(t, ok)
	assert.True(t, in.Right)

	_, _, ok = r.Next()
	require.True(t, ok)
	_, _, ok = r.Next()
	assert.False(t, ok)
	assert.Equal(t, 3, r.CurrentFrame())

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
}

func TestReplayer_RunIsDeterministic(t *testing.T) {
	rec := NewRecorder(777, "test")
	for i := 0; i < 600; i++ {
		in := system.InputState{Right: i%200 < 100, Down: i%300 < 50}
		rec.RecordFrame(in, 1.0/120)
	}

	first, err := NewReplayer(rec.Data()).Run(buildTestWorld)
	require.NoError(t, err)
	second, err := NewReplayer(rec.Data()).Run(buildTestWorld)
	require.NoError(t, err)

	assert.Equal(t, 600, first.Frames)
	assert.Equal(t, uint64(600), first.Tick)
	assert.InDelta(t, 5.0, first.Elapsed, 1e-9)
	assert.Equal(t, first, second)
}

func TestReplayer_RunIdlePlayerStaysPut(t *testing.T) {
	res, err := NewReplayer(CreateTestReplayData(120, 1.0/120)).Run(buildTestWorld)
	require.NoError(t, err)

	assert.Equal(t, geom.V(500, 500), res.Position)
	assert.True(t, res.Alive)
	assert.Equal(t, 100, res.Health)
}
