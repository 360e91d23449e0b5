// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Kassicus/colorsurvivor/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
// Each Update hands the current scene the wall-clock time since the
// previous one, unless a fixed step has been set.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	nominal float64 // first frame and fallback step
	fixed   float64
	now     func() time.Time
	last    time.Time
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		nominal: 1.0 / float64(tps),
		now:     time.Now,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.delta())
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// delta returns the seconds since the previous Update
func (g *Game) delta() float64 {
	if g.fixed > 0 {
		return g.fixed
	}
	t := g.now()
	defer func() { g.last = t }()
	if g.last.IsZero() {
		return g.nominal
	}
	dt := t.Sub(g.last).Seconds()
	if dt <= 0 {
		return g.nominal
	}
	return dt
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT fixes the delta time used for updates.
// Zero restores wall-clock timing.
func (g *Game) SetDT(dt float64) {
	g.fixed = dt
}

// SetClock replaces the time source used to measure frame time
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}
