package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// GameConfig is the root config for game.json
type GameConfig struct {
	Display    DisplayConfig    `json:"display"`
	Simulation SimulationConfig `json:"simulation"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Title        string `json:"title"`
	TPS          int    `json:"tps"` // tick cap
	Background   string `json:"background"`
}

type SimulationConfig struct {
	CollisionTolerance float64 `json:"collisionTolerance"`
	CellSize           float64 `json:"cellSize"`
	Jitter             float64 `json:"jitter"`
	ProjectileMaxAge   int     `json:"projectileMaxAge"` // ticks, 0 = until hit
	DespawnOutOfBounds bool    `json:"despawnOutOfBounds"`
	MaxDeltaTime       float64 `json:"maxDeltaTime"` // seconds, 0 = uncapped
}

// DefaultGameConfig returns the values used when game.json omits a field
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  1920,
			ScreenHeight: 1080,
			Title:        "Color Survivor",
			TPS:          120,
			Background:   "#000000",
		},
		Simulation: SimulationConfig{
			CollisionTolerance: 15,
			CellSize:           50,
			Jitter:             1,
		},
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa"
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
