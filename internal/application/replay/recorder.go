package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/motion2d/internal/domain/motion"
)

// ErrEmpty is returned when saving a recording with no frames.
var ErrEmpty = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a recorder for stage at a fixed step of dt seconds.
func NewRecorder(stage string, dt float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			DT:        dt,
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(in motion.FrameInput) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameInput{
		F: len(r.data.Frames),
		H: in.HorizontalAxis,
		V: in.VerticalAxisRaw,
		J: in.JumpPressed,
	})
}

// Marshal encodes the recording as indented JSON.
func (r *Recorder) Marshal() ([]byte, error) {
	if len(r.data.Frames) == 0 {
		return nil, ErrEmpty
	}
	b, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode replay: %w", err)
	}
	return b, nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	b, err := r.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	return nil
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

// Data returns the recording so far.
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateName creates a replay name based on current time
func GenerateName() string {
	return fmt.Sprintf("replay_%s", time.Now().Format("20060102_150405"))
}
