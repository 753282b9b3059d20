package system

import "github.com/younwookim/motion2d/internal/domain/motion"

// Reconciler derives the discrete jump/fall flags from the body's grounded
// flag and vertical velocity. It keeps MotionState.Valid() true.
type Reconciler struct{}

// Reconcile runs at frame start, before any jump logic.
// Grounded clears both flags; airborne and descending means falling.
func (Reconciler) Reconcile(s *motion.MotionState, grounded bool, vy float64) {
	s.IsGrounded = grounded
	if grounded {
		s.IsJumping = false
		s.IsFalling = false
		return
	}
	if vy < 0 {
		s.IsFalling = true
		s.IsJumping = false
	}
}

// MarkJump records a jump triggered this frame. Jumps need ground, so
// IsFalling is already false here.
func (Reconciler) MarkJump(s *motion.MotionState) {
	s.IsJumping = true
}

// Settle stores the grounded flag the body reported after Move.
func (Reconciler) Settle(s *motion.MotionState, grounded bool) {
	s.IsGrounded = grounded
	if grounded {
		s.IsJumping = false
		s.IsFalling = false
	}
}
