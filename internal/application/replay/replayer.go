// Package replay records per-tick input and plays it back against a
// freshly seeded world.
package replay

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Kassicus/colorsurvivor/internal/application/system"
	"github.com/Kassicus/colorsurvivor/internal/application/world"
	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

// Recorder accumulates frames for one session
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder starts a recording for a world seeded with seed
func NewRecorder(seed int64, stage string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			SessionID: uuid.NewString(),
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 7200), // ~1 minute at 120 TPS
		},
		recording: true,
	}
}

// RecordFrame appends one tick's input and dt
func (r *Recorder) RecordFrame(in system.InputState, dt float64) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, NewFrameInput(len(r.data.Frames), in, dt))
}

// Save writes the recording to filename
func (r *Recorder) Save(filename string) error {
	return Save(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded session
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename from the current time and session
func (r *Recorder) GenerateFilename() string {
	return fmt.Sprintf("replay_%s_%s.json.zst", time.Now().Format("20060102_150405"), r.data.SessionID[:8])
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Next returns the input and dt for the current frame and advances
func (r *Replayer) Next() (system.InputState, float64, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), fi.DT, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Result summarizes a finished playback
type Result struct {
	Frames   int
	Tick     uint64
	Position geom.Vec2
	Health   int
	Coins    int
	Alive    bool
	Counts   map[string]int
	Elapsed  float64 // simulated seconds
}

// Run builds a world with the replay's seed and drives it with every
// recorded frame. Playback stops early if the player dies.
func (r *Replayer) Run(build func(seed int64) (*world.World, error)) (Result, error) {
	w, err := build(r.data.Seed)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for {
		in, dt, ok := r.Next()
		if !ok {
			break
		}
		w.Player().Steer(in.Steering())
		if err := w.Update(dt); err != nil {
			return res, fmt.Errorf("frame %d: %w", r.frame-1, err)
		}
		res.Frames++
		res.Elapsed += dt
		if !w.Player().IsAlive() {
			break
		}
	}

	p := w.Player()
	res.Tick = w.Tick()
	res.Position = p.Pos
	res.Health = p.Health
	res.Coins = p.Coins
	res.Alive = p.IsAlive()
	res.Counts = w.Counts()
	return res, nil
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		SessionID: uuid.NewString(),
		Seed:      12345,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}
	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, DT: dt}
	}
	return data
}
