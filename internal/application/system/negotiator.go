package system

import (
	"log/slog"

	"github.com/younwookim/motion2d/internal/domain/motion"
)

// ShapeNegotiator switches the body between the Standing and Crouched
// presets. Standing back up is gated on the body confirming the taller box
// fits; otherwise the actor stays crouched and the check repeats next frame.
type ShapeNegotiator struct {
	active  motion.ShapePreset
	blocked bool
	logger  *slog.Logger
}

// NewShapeNegotiator starts in Standing. Call Apply to push it to the body.
func NewShapeNegotiator(logger *slog.Logger) *ShapeNegotiator {
	return &ShapeNegotiator{
		active: motion.Standing,
		logger: logger,
	}
}

// Active returns the preset currently on the body.
func (n *ShapeNegotiator) Active() motion.ShapePreset {
	return n.active
}

// Blocked reports whether the last stand-up attempt was refused.
func (n *ShapeNegotiator) Blocked() bool {
	return n.blocked
}

// Apply writes preset to shape and refreshes ray spacing in the same call,
// so no Move can observe the new extent with stale rays.
func (n *ShapeNegotiator) Apply(shape Shape, preset motion.ShapePreset) {
	shape.SetSize(preset.Size)
	shape.SetCenter(preset.Center)
	shape.SetHorizontalRayCount(preset.HorizontalRayCount)
	shape.RecalculateRaySpacing()
	n.active = preset
}

// Negotiate runs once per frame after Move. It returns whether the preset
// changed and the factor to apply to this frame's horizontal axis.
func (n *ShapeNegotiator) Negotiate(s *motion.MotionState, vertical int, loco Locomotor) (bool, float64) {
	if s.IsGrounded && vertical == -1 {
		n.blocked = false
		changed := n.active != motion.Crouched
		if changed {
			n.Apply(loco.Shape(), motion.Crouched)
		}
		s.IsDucking = true
		return changed, DuckEngageFactor
	}

	if n.active == motion.Standing {
		s.IsDucking = false
		return false, 1
	}

	if !loco.CanResize(motion.StandClearance) {
		if !n.blocked {
			n.logger.Debug("stand up blocked", "preset", n.active.Name)
		}
		n.blocked = true
		s.IsDucking = true
		return false, 1
	}

	n.blocked = false
	n.Apply(loco.Shape(), motion.Standing)
	s.IsDucking = false
	return true, 1
}
