// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Kassicus/colorsurvivor/internal/application/render"
	"github.com/Kassicus/colorsurvivor/internal/application/replay"
	"github.com/Kassicus/colorsurvivor/internal/application/scene"
	"github.com/Kassicus/colorsurvivor/internal/application/state"
	"github.com/Kassicus/colorsurvivor/internal/application/system"
	"github.com/Kassicus/colorsurvivor/internal/application/world"
)

var (
	colorPause    = color.RGBA{0, 0, 0, 128}
	colorGameOver = color.RGBA{100, 0, 0, 180}
)

// InputSource yields one input snapshot per tick
type InputSource interface {
	GetInput() system.InputState
}

// Builder creates a fresh world for the given seed
type Builder func(seed int64) (*world.World, error)

// Options configures a Playing scene
type Options struct {
	Stage        string  // stage key, stored in recordings
	Seed         int64   // 0 picks a time-based seed
	RecordPath   string  // non-empty enables recording
	MaxDeltaTime float64 // 0 disables clamping
	Debug        bool
	Logger       *slog.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	build    Builder
	world    *world.World
	renderer *render.Renderer
	input    InputSource
	state    state.GameState
	logger   *slog.Logger

	stage      string
	seed       int64
	fixedSeed  bool
	maxDT      float64
	debug      bool
	recordPath string
	recorder   *replay.Recorder
}

// New creates a new Playing scene and builds its first world
func New(build Builder, renderer *render.Renderer, input InputSource, opts Options) (*Playing, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := &Playing{
		build:      build,
		renderer:   renderer,
		input:      input,
		state:      state.StatePlaying,
		logger:     logger,
		stage:      opts.Stage,
		seed:       opts.Seed,
		fixedSeed:  opts.Seed != 0,
		maxDT:      opts.MaxDeltaTime,
		debug:      opts.Debug,
		recordPath: opts.RecordPath,
	}
	if err := p.reset(); err != nil {
		return nil, err
	}
	return p, nil
}

// reset builds a new world and, if enabled, a new recording
func (p *Playing) reset() error {
	if !p.fixedSeed {
		p.seed = time.Now().UnixNano()
	}

	w, err := p.build(p.seed)
	if err != nil {
		return fmt.Errorf("failed to build world: %w", err)
	}
	p.world = w
	p.state = state.StatePlaying

	if p.recordPath != "" {
		p.recorder = replay.NewRecorder(p.seed, p.stage)
		p.logger.Info("recording enabled", "path", p.recordPath, "seed", p.seed)
	}
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := p.input.GetInput()

	if in.Quit {
		p.saveRecording()
		return nil, ebiten.Termination
	}
	if in.ToggleDebug {
		p.debug = !p.debug
	}
	if in.SaveReplay {
		p.saveRecording()
	}
	if in.Restart {
		p.saveRecording()
		if err := p.reset(); err != nil {
			return nil, err
		}
		p.logger.Info("session restarted", "seed", p.seed)
		return nil, nil
	}
	if in.Pause {
		p.state = p.state.TogglePause()
		p.logger.Debug("state changed", "state", p.state.String(), "tick", p.world.Tick())
	}

	if !p.state.Simulating() {
		return nil, nil
	}

	if p.maxDT > 0 && dt > p.maxDT {
		dt = p.maxDT
	}

	player := p.world.Player()
	player.Steer(in.Steering())
	if p.recorder != nil {
		p.recorder.RecordFrame(in, dt)
	}

	if err := p.world.Update(dt); err != nil {
		p.logger.Error("simulation failed", "tick", p.world.Tick(), "error", err)
		return nil, fmt.Errorf("tick %d: %w", p.world.Tick(), err)
	}

	if !player.IsAlive() {
		p.state = state.StateGameOver
		p.logger.Info("game over", "tick", p.world.Tick(), "coins", player.Coins)
		p.saveRecording()
	}

	return nil, nil // nil = stay on this scene
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = p.recorder.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "path", filename, "error", err)
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	p.renderer.Draw(screen, p.world)
	p.renderer.DrawHUD(screen, p.world.Player())

	switch p.state {
	case state.StatePaused:
		p.renderer.DrawBanner(screen, colorPause, "PAUSED", "", "Press ESC to resume")
	case state.StateGameOver:
		p.renderer.DrawBanner(screen, colorGameOver,
			"GAME OVER", "",
			fmt.Sprintf("Coins collected: %d", p.world.Player().Coins), "",
			"Press R to restart")
	}

	if p.debug {
		p.renderer.DrawDebug(screen, p.world.Tick(), p.world.Counts())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("session started", "stage", p.stage, "seed", p.seed)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// World returns the world being played
func (p *Playing) World() *world.World {
	return p.world
}

// State returns the current session state
func (p *Playing) State() state.GameState {
	return p.state
}

// Seed returns the seed of the current world
func (p *Playing) Seed() int64 {
	return p.seed
}

// Debug reports whether the debug overlay is shown
func (p *Playing) Debug() bool {
	return p.debug
}
