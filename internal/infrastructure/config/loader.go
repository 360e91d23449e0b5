package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

// ErrUnknownEnemyKind is returned when an enemy config names no known kind
var ErrUnknownEnemyKind = errors.New("unknown enemy kind")

// Bundle holds all loaded configurations
type Bundle struct {
	Game     *GameConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

func (l *Loader) readJSON(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadGame loads game.json over the built-in defaults
func (l *Loader) LoadGame() (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := l.readJSON("game.json", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.readJSON("entities.json", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid entities.json: %w", err)
	}
	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (game, entities)
func (l *Loader) LoadAll() (*Bundle, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Game:     game,
		Entities: entities,
	}, nil
}
