package replay

import "github.com/Kassicus/colorsurvivor/internal/application/system"

// Version is written into every saved replay
const Version = "2.0"

// FrameInput records input state and frame time for a single tick
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	L  bool    `json:"l,omitempty"` // Left
	R  bool    `json:"r,omitempty"` // Right
	U  bool    `json:"u,omitempty"` // Up
	D  bool    `json:"d,omitempty"` // Down
	DT float64 `json:"dt"`          // Seconds simulated this frame
}

// NewFrameInput captures the movement keys of in
func NewFrameInput(frame int, in system.InputState, dt float64) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		DT: dt,
	}
}

// Input converts the frame back into an input state
func (f FrameInput) Input() system.InputState {
	return system.InputState{
		Left:  f.L,
		Right: f.R,
		Up:    f.U,
		Down:  f.D,
	}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	SessionID string       `json:"sessionId"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
