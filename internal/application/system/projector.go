package system

import (
	"math"

	"github.com/younwookim/motion2d/internal/domain/motion"
)

// Animation parameter names.
const (
	ParamSpeed   = "Speed"
	ParamJumping = "Jumping"
	ParamFalling = "Falling"
	ParamDucking = "Ducking"
)

// Animator receives animation parameters. It is write-only from the
// controller's side.
type Animator interface {
	SetFloat(name string, v float64)
	SetBool(name string, v bool)
}

// AnimParams is the projection of one frame's state.
type AnimParams struct {
	Speed   float64
	Jumping bool
	Falling bool
	Ducking bool
}

// Projector maps MotionState onto AnimParams. It holds no state.
type Projector struct{}

// Project computes the parameters. Speed is |horizontalAxis| on the ground
// and 0 in the air.
func (Projector) Project(s motion.MotionState, horizontalAxis float64) AnimParams {
	p := AnimParams{
		Jumping: s.IsJumping,
		Falling: s.IsFalling,
		Ducking: s.IsDucking,
	}
	if s.IsGrounded {
		p.Speed = math.Abs(horizontalAxis)
	}
	return p
}

// Emit writes all four parameters to a.
func (Projector) Emit(a Animator, p AnimParams) {
	a.SetFloat(ParamSpeed, p.Speed)
	a.SetBool(ParamJumping, p.Jumping)
	a.SetBool(ParamFalling, p.Falling)
	a.SetBool(ParamDucking, p.Ducking)
}

// ParamSet is an in-memory Animator.
type ParamSet struct {
	Floats map[string]float64
	Bools  map[string]bool
}

// NewParamSet creates an empty ParamSet.
func NewParamSet() *ParamSet {
	return &ParamSet{
		Floats: make(map[string]float64),
		Bools:  make(map[string]bool),
	}
}

func (p *ParamSet) SetFloat(name string, v float64) { p.Floats[name] = v }
func (p *ParamSet) SetBool(name string, v bool)     { p.Bools[name] = v }
