package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"

	"github.com/Kassicus/colorsurvivor/internal/application/scene/playing"
	"github.com/Kassicus/colorsurvivor/internal/application/system"
	"github.com/Kassicus/colorsurvivor/internal/application/world"
	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/assets"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// embeddedConfigs returns the shipped configs directory as its own root
func embeddedConfigs() (fs.FS, error) {
	return fs.Sub(configFS, "configs")
}

// session is everything loaded once per process and shared by every world
type session struct {
	stage  string // key under stages/, stored in recordings
	game   *config.GameConfig
	roster *system.Roster
	layout *system.Layout
	images *assets.Library
	logger *slog.Logger
}

// loadSession reads game, entity, stage and asset configuration from fsys
func loadSession(fsys fs.FS, stage, manifest string, logger *slog.Logger) (*session, error) {
	loader := config.NewFSLoader(fsys)
	bundle, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}

	stageCfg, err := loader.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	roster, err := system.BuildRoster(bundle.Entities, bundle.Game.Simulation)
	if err != nil {
		return nil, fmt.Errorf("invalid entities: %w", err)
	}

	m, err := assets.LoadManifest(fsys, manifest)
	if err != nil {
		return nil, err
	}
	images, err := assets.Load(fsys, m)
	if err != nil {
		return nil, err
	}
	if err := images.Require(entity.ImageHealth, entity.ImageCoin); err != nil {
		return nil, err
	}

	layout := system.LoadStage(stageCfg)
	logger.Info("configuration loaded",
		"stage", layout.Name,
		"enemy_types", len(roster.Enemies),
		"images", len(images.Keys()),
	)

	return &session{
		stage:  stage,
		game:   bundle.Game,
		roster: roster,
		layout: layout,
		images: images,
		logger: logger,
	}, nil
}

// options returns the gameplay scene options for this session
func (s *session) options(settings *config.Settings) playing.Options {
	return playing.Options{
		Stage:        s.stage,
		Seed:         settings.GetSeed(),
		RecordPath:   settings.GetRecordPath(),
		MaxDeltaTime: s.game.Simulation.MaxDeltaTime,
		Debug:        settings.Debug,
		Logger:       s.logger,
	}
}

// builder returns a function that creates a fresh world for a seed
func (s *session) builder(opts ...world.Option) playing.Builder {
	return func(seed int64) (*world.World, error) {
		all := append([]world.Option{world.WithLogger(s.logger)}, opts...)
		return world.New(world.Config{
			Roster:     s.roster,
			Layout:     s.layout,
			Simulation: s.game.Simulation,
			Images:     s.images,
			Rand:       rand.New(rand.NewSource(seed)),
		}, all...)
	}
}
