package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Background  string             `json:"background"` // image key, optional
	Bounds      *RectConfig        `json:"bounds,omitempty"`
	PlayerSpawn PositionConfig     `json:"playerSpawn"`
	Walls       []WallConfig       `json:"walls"`
	Layers      LayersConfig       `json:"layers"`
	Enemies     []EnemySpawnConfig `json:"enemies"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WallConfig places a wall in grid cells
type WallConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// LayersConfig holds optional ASCII art layers. In Walls, '#' marks a
// wall cell and every other character is empty.
type LayersConfig struct {
	Walls []string `json:"walls,omitempty"`
}

// EnemySpawnConfig spawns Count enemies of Type around (X, Y)
type EnemySpawnConfig struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Count  int     `json:"count,omitempty"`
	Spread float64 `json:"spread,omitempty"`
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}
