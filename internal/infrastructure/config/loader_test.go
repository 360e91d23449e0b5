package config

import (
	"errors"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewFSLoader(os.DirFS("../../../cmd/game/configs"))

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Display.ScreenWidth)
	assert.Equal(t, 1080, cfg.Display.ScreenHeight)
	assert.Equal(t, 120, cfg.Display.TPS)
	assert.Equal(t, 15.0, cfg.Simulation.CollisionTolerance)
	assert.Equal(t, 50.0, cfg.Simulation.CellSize)
	assert.Equal(t, 1.0, cfg.Simulation.Jitter)
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewFSLoader(os.DirFS("../../../cmd/game/configs"))

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, 250.0, cfg.Player.Speed)
	assert.Equal(t, 40.0, cfg.Player.Size)
	assert.Contains(t, cfg.Player.Weapons, "knife")

	knife, ok := cfg.Weapons["knife"]
	require.True(t, ok)
	assert.Equal(t, "melee", knife.Type)
	assert.Equal(t, 200.0, knife.Range)
	assert.Equal(t, "e", knife.Facing)
	assert.Equal(t, 5, knife.Damage)
	assert.Equal(t, 300, knife.Cooldown)

	follower, ok := cfg.Enemies["follower"]
	require.True(t, ok)
	assert.Equal(t, KindGroundFollower, follower.Kind)
	assert.Equal(t, 100.0, follower.Speed)
	assert.Equal(t, 5, follower.Health)

	assert.Equal(t, 5, cfg.Drops["health"].Amount)
	assert.Equal(t, 1, cfg.Drops["coin"].Amount)
	assert.Equal(t, 100, cfg.Emitters["playerTrail"].Max)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewFSLoader(os.DirFS("../../../cmd/game/configs"))

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.NotEmpty(t, cfg.Walls)
	assert.NotEmpty(t, cfg.Enemies)
	require.NotNil(t, cfg.Bounds)
	assert.Equal(t, 960.0, cfg.PlayerSpawn.X)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewFSLoader(os.DirFS("../../../cmd/game/configs"))

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Game)
	assert.NotNil(t, cfg.Entities)
}

func TestLoader_GameDefaultsFillGaps(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": {Data: []byte(`{"display": {"tps": 60}}`)},
	}

	cfg, err := NewFSLoader(fsys).LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Display.TPS)
	assert.Equal(t, 1920, cfg.Display.ScreenWidth)
	assert.Equal(t, 15.0, cfg.Simulation.CollisionTolerance)
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json":          {Data: []byte(`{not json`)},
		"stages/broken.json": {Data: []byte(`[`)},
	}
	loader := NewFSLoader(fsys)

	_, err := loader.LoadGame()
	assert.ErrorContains(t, err, "failed to parse game.json")

	_, err = loader.LoadEntities()
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = loader.LoadStage("missing")
	assert.ErrorContains(t, err, "failed to read stage missing")

	_, err = loader.LoadStage("broken")
	assert.ErrorContains(t, err, "failed to parse stage broken")

	_, err = loader.LoadAll()
	assert.Error(t, err)
}

func TestEntitiesConfig_Validate(t *testing.T) {
	valid := func() *EntitiesConfig {
		return &EntitiesConfig{
			Player:  PlayerConfig{Weapons: []string{"knife"}},
			Weapons: map[string]WeaponConfig{"knife": {Type: "melee"}},
			Enemies: map[string]EnemyConfig{
				"grunt": {Kind: KindGroundFollower, Loot: LootConfig{Drops: []string{"coin"}}},
			},
			Drops: map[string]DropConfig{"coin": {Amount: 1}},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *EntitiesConfig)
		is     error
	}{
		{"unknown kind", func(c *EntitiesConfig) {
			c.Enemies["grunt"] = EnemyConfig{Kind: "walker"}
		}, ErrUnknownEnemyKind},
		{"missing weapon", func(c *EntitiesConfig) {
			c.Player.Weapons = []string{"axe"}
		}, nil},
		{"missing drop", func(c *EntitiesConfig) {
			c.Enemies["grunt"] = EnemyConfig{Kind: KindFlyerFollower, Loot: LootConfig{Drops: []string{"gem"}}}
		}, nil},
		{"missing emitter", func(c *EntitiesConfig) {
			c.Player.Emitter = "sparkles"
		}, nil},
		{"negative contact damage", func(c *EntitiesConfig) {
			c.Enemies["grunt"] = EnemyConfig{Kind: KindGroundFollower, ContactDamage: -1}
		}, nil},
		{"bad weapon type", func(c *EntitiesConfig) {
			c.Weapons["knife"] = WeaponConfig{Type: "magic"}
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}, false},
		{"3cb4ff", color.RGBA{R: 0x3c, G: 0xb4, B: 0xff, A: 255}, false},
		{"#00000080", color.RGBA{A: 0x80}, false},
		{"#fff", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSettings(t *testing.T) {
	s, err := ParseSettings([]byte("stage: arena\nlog_level: debug\nwindow_scale: 0.75\nseed: 42\n"))
	require.NoError(t, err)

	assert.Equal(t, "arena", s.GetStage())
	assert.Equal(t, slog.LevelDebug, s.GetLogLevel())
	assert.Equal(t, 0.75, s.GetWindowScale())
	assert.Equal(t, int64(42), s.GetSeed())

	_, err = ParseSettings([]byte("stage: [unclosed"))
	assert.Error(t, err)
}

func TestSettings_EnvFallback(t *testing.T) {
	t.Setenv("SURVIVOR_STAGE", "caves")
	t.Setenv("SURVIVOR_METRICS_ADDR", ":2112")
	t.Setenv("SURVIVOR_WINDOW_SCALE", "2")
	t.Setenv("SURVIVOR_SEED", "7")
	t.Setenv("SURVIVOR_LOG_LEVEL", "warn")

	s := &Settings{}
	assert.Equal(t, "caves", s.GetStage())
	assert.Equal(t, ":2112", s.GetMetricsAddr())
	assert.Equal(t, 2.0, s.GetWindowScale())
	assert.Equal(t, int64(7), s.GetSeed())
	assert.Equal(t, slog.LevelWarn, s.GetLogLevel())

	s.Stage = "demo"
	assert.Equal(t, "demo", s.GetStage(), "file value wins over env")
}

func TestSettings_Defaults(t *testing.T) {
	for _, env := range []string{"SURVIVOR_STAGE", "SURVIVOR_METRICS_ADDR", "SURVIVOR_RECORD", "SURVIVOR_ASSETS", "SURVIVOR_WINDOW_SCALE", "SURVIVOR_SEED", "SURVIVOR_LOG_LEVEL"} {
		t.Setenv(env, "")
	}

	s := &Settings{}
	assert.Equal(t, "demo", s.GetStage())
	assert.Equal(t, "", s.GetMetricsAddr())
	assert.Equal(t, "", s.GetRecordPath())
	assert.Equal(t, "assets.json", s.GetAssetManifest())
	assert.Equal(t, 0.5, s.GetWindowScale())
	assert.Equal(t, int64(0), s.GetSeed())
	assert.Equal(t, slog.LevelInfo, s.GetLogLevel())
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("SURVIVOR_SETTINGS", "")
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("record_path: run.json.zst\n"), 0o644))

	s, err = LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "run.json.zst", s.GetRecordPath())

	_, err = LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read settings")
}

func TestShippedSettingsParse(t *testing.T) {
	data, err := os.ReadFile("../../../cmd/game/configs/settings.yaml")
	require.NoError(t, err)

	s, err := ParseSettings(data)
	require.NoError(t, err)
	assert.Equal(t, "demo", s.Stage)
}
