package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/motion2d/internal/domain/motion"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Decode parses a JSON recording.
func Decode(b []byte) (*ReplayData, error) {
	var data ReplayData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.DT <= 0 {
		return nil, fmt.Errorf("replay %q: dt must be positive, got %v", data.Stage, data.DT)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Decode(b)
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (motion.FrameInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return motion.FrameInput{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// DT returns the fixed step the recording was made at.
func (r *Replayer) DT() float64 {
	return r.data.DT
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// IdleReplayData creates replay data with no input (tests and benchmarks).
func IdleReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version: Version,
		Stage:   "test",
		DT:      dt,
		Frames:  make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i].F = i
	}
	return data
}
