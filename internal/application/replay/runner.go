package replay

import (
	"github.com/younwookim/motion2d/internal/application/system"
	"github.com/younwookim/motion2d/internal/domain/motion"
)

// Ticker advances one controller frame.
type Ticker interface {
	Tick(in motion.FrameInput, dt float64) system.FrameResult
}

// Summary describes a finished playback.
type Summary struct {
	Frames          int
	Jumps           int
	ShapeChanges    int
	GroundedFrames  int
	InvariantBreaks int
	Final           system.FrameResult
}

// Run feeds every remaining frame of r to t at the recorded step. onFrame,
// when non-nil, sees each result as it is produced.
func Run(t Ticker, r *Replayer, onFrame func(system.FrameResult)) Summary {
	var s Summary
	dt := r.DT()
	for {
		in, ok := r.Next()
		if !ok {
			break
		}
		res := t.Tick(in, dt)
		s.Frames++
		if res.Jumped {
			s.Jumps++
		}
		if res.ShapeChanged {
			s.ShapeChanges++
		}
		if res.State.IsGrounded {
			s.GroundedFrames++
		}
		if !res.State.Valid() {
			s.InvariantBreaks++
		}
		s.Final = res
		if onFrame != nil {
			onFrame(res)
		}
	}
	return s
}
