package motion

// Facing is the left/right orientation handed to the visual layer.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the string representation of the facing
func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "Left"
	case FacingRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// FacingFromAxis derives the orientation from the sign of the horizontal axis.
// A zero axis keeps the previous orientation.
func FacingFromAxis(prev Facing, h float64) Facing {
	switch {
	case h > 0:
		return FacingRight
	case h < 0:
		return FacingLeft
	default:
		return prev
	}
}

// MotionState is the per-actor state mutated once per frame by the controller.
type MotionState struct {
	Velocity   Vec2
	IsGrounded bool
	IsJumping  bool
	IsFalling  bool
	IsDucking  bool
	Facing     Facing
}

// NewMotionState returns the initial state: at rest, standing, facing right.
func NewMotionState() MotionState {
	return MotionState{Facing: FacingRight}
}

// Valid reports whether the jump/fall flags are consistent:
// jumping and falling are exclusive, and grounded clears both.
func (s MotionState) Valid() bool {
	if s.IsJumping && s.IsFalling {
		return false
	}
	if s.IsGrounded && (s.IsJumping || s.IsFalling) {
		return false
	}
	return true
}
