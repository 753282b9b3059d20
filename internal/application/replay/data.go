// Package replay records controller input frame by frame and plays it back.
// Replays are plain JSON so they can be stored on disk or in the save store.
package replay

import "github.com/younwookim/motion2d/internal/domain/motion"

// Version is written to every recording.
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int     `json:"f"`           // Frame number
	H float64 `json:"h,omitempty"` // Horizontal axis
	V int     `json:"v,omitempty"` // Raw vertical axis
	J bool    `json:"j,omitempty"` // Jump pressed this frame
}

// Input converts the record back to controller input.
func (fi FrameInput) Input() motion.FrameInput {
	return motion.FrameInput{
		HorizontalAxis:  fi.H,
		VerticalAxisRaw: fi.V,
		JumpPressed:     fi.J,
	}
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	DT        float64      `json:"dt"`
	Frames    []FrameInput `json:"frames"`
}
