// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds of wall-clock time.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game; ebiten.Termination ends it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}
