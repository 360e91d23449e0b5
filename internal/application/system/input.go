package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
)

// InputSystem polls the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	// Edge-triggered controls
	Pause       bool
	ToggleDebug bool
	Quit        bool
	Restart     bool
	SaveReplay  bool
}

// GetInput reads the current input state. WASD and arrow keys both steer.
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:          ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Pause:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		SaveReplay:  inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}

// Steering extracts the movement keys
func (in InputState) Steering() entity.Steering {
	return entity.Steering{
		Left:  in.Left,
		Right: in.Right,
		Up:    in.Up,
		Down:  in.Down,
	}
}
