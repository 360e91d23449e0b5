package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kassicus/colorsurvivor/internal/application/replay"
	"github.com/Kassicus/colorsurvivor/internal/application/scene/playing"
	"github.com/Kassicus/colorsurvivor/internal/application/system"
	"github.com/Kassicus/colorsurvivor/internal/infrastructure/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadSession_Embedded(t *testing.T) {
	fsys, err := embeddedConfigs()
	require.NoError(t, err)

	sess, err := loadSession(fsys, "demo", "assets.json", discardLogger())
	require.NoError(t, err)

	assert.NotEmpty(t, sess.layout.Walls)
	assert.NotEmpty(t, sess.layout.Enemies)
	assert.Contains(t, sess.roster.Enemies, "follower")
	assert.True(t, sess.images.Has("coin"))

	w, err := sess.builder()(1)
	require.NoError(t, err)
	assert.Equal(t, len(sess.layout.Enemies), len(w.Enemies()))
}

// keyScript holds each input for a number of frames, then quits
type keyScript struct {
	steps []system.InputState
	hold  int
	frame int
}

func (k *keyScript) GetInput() system.InputState {
	i := k.frame / k.hold
	k.frame++
	if i >= len(k.steps) {
		return system.InputState{Quit: true}
	}
	return k.steps[i]
}

func TestLoadSession_Errors(t *testing.T) {
	fsys, err := embeddedConfigs()
	require.NoError(t, err)

	_, err = loadSession(fsys, "nowhere", "assets.json", discardLogger())
	assert.ErrorContains(t, err, "failed to read stage nowhere")

	_, err = loadSession(fsys, "demo", "missing.json", discardLogger())
	assert.ErrorContains(t, err, "failed to read missing.json")
}

func TestReplayFrom(t *testing.T) {
	fsys, err := embeddedConfigs()
	require.NoError(t, err)

	rec := replay.NewRecorder(2024, "demo")
	for i := 0; i < 240; i++ {
		rec.RecordFrame(system.InputState{Left: i < 120, Down: i >= 120}, 1.0/120)
	}
	path := filepath.Join(t.TempDir(), "demo.json.zst")
	require.NoError(t, rec.Save(path))

	var first, second bytes.Buffer
	require.NoError(t, replayFrom(&first, fsys, path, "assets.json", discardLogger()))
	require.NoError(t, replayFrom(&second, fsys, path, "assets.json", discardLogger()))

	out := first.String()
	assert.Contains(t, out, "stage:    demo (seed 2024)")
	assert.Contains(t, out, "frames:   240/240 (2.00s simulated)")
	assert.Contains(t, out, "enemies:")
	assert.Equal(t, out, second.String(), "playback must be deterministic")
}

func TestReplayFrom_MissingFile(t *testing.T) {
	fsys, err := embeddedConfigs()
	require.NoError(t, err)

	err = replayFrom(io.Discard, fsys, filepath.Join(t.TempDir(), "none.json"), "assets.json", discardLogger())
	assert.ErrorContains(t, err, "failed to open file")
}

func TestReplayFrom_SessionRecording(t *testing.T) {
	fsys, err := embeddedConfigs()
	require.NoError(t, err)
	sess, err := loadSession(fsys, "demo", "assets.json", discardLogger())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "session.json.zst")
	input := &keyScript{
		steps: []system.InputState{{Left: true}, {Up: true}, {Right: true, Down: true}},
		hold:  40,
	}
	p, err := playing.New(sess.builder(), nil, input, sess.options(&config.Settings{RecordPath: path}))
	require.NoError(t, err)

	for {
		_, err := p.Update(1.0 / 120)
		if err != nil {
			require.ErrorIs(t, err, ebiten.Termination)
			break
		}
	}

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", data.Stage, "recordings store the stage key")
	require.NotEmpty(t, data.Frames)

	var out bytes.Buffer
	require.NoError(t, replayFrom(&out, fsys, path, "assets.json", discardLogger()))

	pos := p.World().Player().Pos
	assert.Contains(t, out.String(), fmt.Sprintf("stage:    demo (seed %d)", p.Seed()))
	assert.Contains(t, out.String(), fmt.Sprintf("player:   (%.1f, %.1f)", pos.X, pos.Y))
}
