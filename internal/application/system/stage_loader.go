package system

import (
	"math"

	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/config"
)

// WallPlacement is a wall in grid cells
type WallPlacement struct {
	X, Y, W, H int
}

// EnemyPlacement is one enemy to spawn at stage start
type EnemyPlacement struct {
	Type string
	Pos  geom.Vec2
}

// Layout is the static description a world is built from
type Layout struct {
	Name       string
	Background string
	Bounds     *geom.Rect
	Spawn      geom.Vec2
	Walls      []WallPlacement
	Enemies    []EnemyPlacement
}

// LoadStage converts a StageConfig into a Layout. Walls from the ASCII
// layer are merged horizontally into runs before being appended to the
// explicit placements.
func LoadStage(cfg *config.StageConfig) *Layout {
	layout := &Layout{
		Name:       cfg.Name,
		Background: cfg.Background,
		Spawn:      geom.V(cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y),
	}
	if cfg.Bounds != nil {
		layout.Bounds = &geom.Rect{X: cfg.Bounds.X, Y: cfg.Bounds.Y, W: cfg.Bounds.W, H: cfg.Bounds.H}
	}

	for _, w := range cfg.Walls {
		if w.W <= 0 || w.H <= 0 {
			continue
		}
		layout.Walls = append(layout.Walls, WallPlacement{X: w.X, Y: w.Y, W: w.W, H: w.H})
	}
	layout.Walls = append(layout.Walls, wallRuns(cfg.Layers.Walls)...)

	for _, spawn := range cfg.Enemies {
		layout.Enemies = append(layout.Enemies, ring(spawn)...)
	}

	return layout
}

// wallRuns turns '#' cells into one-row-high runs
func wallRuns(rows []string) []WallPlacement {
	var walls []WallPlacement
	for y, row := range rows {
		start := -1
		for x := 0; x <= len(row); x++ {
			solid := x < len(row) && row[x] == '#'
			switch {
			case solid && start < 0:
				start = x
			case !solid && start >= 0:
				walls = append(walls, WallPlacement{X: start, Y: y, W: x - start, H: 1})
				start = -1
			}
		}
	}
	return walls
}

// ring spreads Count enemies evenly on a circle of radius Spread
func ring(spawn config.EnemySpawnConfig) []EnemyPlacement {
	count := spawn.Count
	if count <= 0 {
		count = 1
	}
	center := geom.V(spawn.X, spawn.Y)
	out := make([]EnemyPlacement, 0, count)
	for i := 0; i < count; i++ {
		pos := center
		if count > 1 && spawn.Spread > 0 {
			angle := 2 * math.Pi * float64(i) / float64(count)
			pos = center.Add(geom.V(math.Cos(angle)*spawn.Spread, math.Sin(angle)*spawn.Spread))
		}
		out = append(out, EnemyPlacement{Type: spawn.Type, Pos: pos})
	}
	return out
}
