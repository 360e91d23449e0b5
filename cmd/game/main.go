package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Kassicus/colorsurvivor/internal/application/game"
	"github.com/Kassicus/colorsurvivor/internal/application/render"
	"github.com/Kassicus/colorsurvivor/internal/application/scene/playing"
	"github.com/Kassicus/colorsurvivor/internal/application/system"
	"github.com/Kassicus/colorsurvivor/internal/application/world"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/config"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/metrics"
)

func main() {
	settingsFlag := flag.String("settings", "", "YAML settings file (default: $SURVIVOR_SETTINGS)")
	stageFlag := flag.String("stage", "", "Stage to load (overrides settings)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json.zst)")
	replayFlag := flag.String("replay", "", "Play back a recording without a window and print the outcome")
	seedFlag := flag.Int64("seed", 0, "World seed (0 = time based)")
	debugFlag := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *stageFlag != "" {
		settings.Stage = *stageFlag
	}
	if *recordFlag != "" {
		settings.RecordPath = *recordFlag
	}
	if *seedFlag != 0 {
		settings.Seed = *seedFlag
	}
	if *debugFlag {
		settings.Debug = true
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.GetLogLevel()}))
	slog.SetDefault(logger)

	if *replayFlag != "" {
		if err := runReplay(os.Stdout, *replayFlag, settings, logger); err != nil {
			logger.Error("replay failed", "path", *replayFlag, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(settings, logger); err != nil {
		logger.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}

func run(settings *config.Settings, logger *slog.Logger) error {
	fsys, err := embeddedConfigs()
	if err != nil {
		return fmt.Errorf("failed to get config subfs: %w", err)
	}
	sess, err := loadSession(fsys, settings.GetStage(), settings.GetAssetManifest(), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var opts []world.Option
	if addr := settings.GetMetricsAddr(); addr != "" {
		sim := metrics.New()
		opts = append(opts, world.WithObserver(sim))
		go func() {
			if err := sim.Serve(ctx, addr, logger); err != nil {
				logger.Error("metrics endpoint stopped", "addr", addr, "error", err)
			}
		}()
	}

	display := sess.game.Display
	background, err := config.ParseColor(display.Background)
	if err != nil {
		return fmt.Errorf("display background: %w", err)
	}
	renderer := render.NewRenderer(sess.images, display.ScreenWidth, display.ScreenHeight, background)

	scene, err := playing.New(sess.builder(opts...), renderer, system.NewInputSystem(), sess.options(settings))
	if err != nil {
		return err
	}

	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.TPS)

	scale := settings.GetWindowScale()
	ebiten.SetWindowSize(int(float64(display.ScreenWidth)*scale), int(float64(display.ScreenHeight)*scale))
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.TPS)

	return ebiten.RunGame(g)
}
