package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/Kassicus/colorsurvivor/internal/application/replay"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/config"
)

// runReplay plays a recording against the embedded configs and writes a
// summary of the final state to out.
func runReplay(out io.Writer, path string, settings *config.Settings, logger *slog.Logger) error {
	fsys, err := embeddedConfigs()
	if err != nil {
		return fmt.Errorf("failed to get config subfs: %w", err)
	}
	return replayFrom(out, fsys, path, settings.GetAssetManifest(), logger)
}

func replayFrom(out io.Writer, fsys fs.FS, path, manifest string, logger *slog.Logger) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	sess, err := loadSession(fsys, data.Stage, manifest, logger)
	if err != nil {
		return err
	}

	logger.Info("replaying", "session", data.SessionID, "seed", data.Seed, "frames", len(data.Frames))
	res, err := replay.NewReplayer(*data).Run(sess.builder())
	if err != nil {
		return err
	}

	writeResult(out, data, res)
	return nil
}

func writeResult(out io.Writer, data *replay.ReplayData, res replay.Result) {
	fmt.Fprintf(out, "session:  %s\n", data.SessionID)
	fmt.Fprintf(out, "stage:    %s (seed %d)\n", data.Stage, data.Seed)
	fmt.Fprintf(out, "frames:   %d/%d (%.2fs simulated)\n", res.Frames, len(data.Frames), res.Elapsed)
	fmt.Fprintf(out, "player:   (%.1f, %.1f) health %d alive %t\n", res.Position.X, res.Position.Y, res.Health, res.Alive)
	fmt.Fprintf(out, "coins:    %d\n", res.Coins)

	names := make([]string, 0, len(res.Counts))
	for name := range res.Counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%-9s %d\n", name+":", res.Counts[name])
	}
}
