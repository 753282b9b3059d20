package system

import (
	"math"

	"github.com/younwookim/motion2d/internal/domain/motion"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
)

// Ducking attenuation of the horizontal axis.
const (
	// DuckHoldFactor applies while the actor was already ducking at frame start.
	DuckHoldFactor = 0.5
	// DuckEngageFactor applies on frames where the crouched shape is engaged.
	DuckEngageFactor = 0.75
)

// Integrator owns the velocity math: grounded reset, horizontal smoothing,
// gravity and jump impulse.
type Integrator struct {
	cfg *config.MovementConfig
}

// NewIntegrator creates an integrator for the given tuning.
func NewIntegrator(cfg *config.MovementConfig) *Integrator {
	return &Integrator{cfg: cfg}
}

// SetConfig swaps the tuning. Takes effect on the next Integrate.
func (in *Integrator) SetConfig(cfg *config.MovementConfig) {
	in.cfg = cfg
}

// Config returns the active tuning.
func (in *Integrator) Config() *config.MovementConfig {
	return in.cfg
}

// JumpVelocity is the launch speed that reaches JumpHeight under Gravity.
func (in *Integrator) JumpVelocity() float64 {
	return math.Sqrt(2 * in.cfg.JumpHeight * -in.cfg.Gravity)
}

// Damping returns the horizontal interpolation rate. Airborne damping is
// lower, giving floatier air control.
func (in *Integrator) Damping(grounded bool) float64 {
	if grounded {
		return in.cfg.GroundDamping
	}
	return in.cfg.InAirDamping
}

// EffectiveAxis is the horizontal input after the hold-duck attenuation.
func (in *Integrator) EffectiveAxis(state motion.MotionState, input motion.FrameInput) float64 {
	h := input.HorizontalAxis
	if state.IsDucking {
		h *= DuckHoldFactor
	}
	return h
}

// Integrate advances state.Velocity by one frame and reports whether a jump
// was triggered. Order matters:
//  1. grounded: vy = 0
//  2. vx = lerp(vx, h*runSpeed, dt*damping)
//  3. vy += gravity*dt
//  4. grounded && jump edge: vy = JumpVelocity()
//
// A grounded actor therefore always hands exactly one frame of gravity to the
// body, which its ground probe absorbs.
func (in *Integrator) Integrate(state motion.MotionState, input motion.FrameInput, grounded bool, dt float64) (motion.Vec2, bool) {
	v := state.Velocity
	if grounded {
		v.Y = 0
	}

	h := in.EffectiveAxis(state, input)
	v.X = motion.Lerp(v.X, h*in.cfg.RunSpeed, dt*in.Damping(grounded))

	v.Y += in.cfg.Gravity * dt

	// Every jump source is gated on grounded.
	jumped := grounded && input.JumpPressed
	if jumped {
		v.Y = in.JumpVelocity()
	}

	return v, jumped
}

// Displacement is the frame movement requested from the body.
func Displacement(v motion.Vec2, dt float64) motion.Vec2 {
	return v.Scale(dt)
}
