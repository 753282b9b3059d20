package system

import (
	"log/slog"

	"github.com/younwookim/motion2d/internal/domain/motion"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
)

// FrameResult is what one Tick produced.
type FrameResult struct {
	Frame         uint64
	State         motion.MotionState
	Shape         motion.ShapePreset
	Params        AnimParams
	Displacement  motion.Vec2 // requested, not achieved
	EffectiveAxis float64     // horizontal axis after ducking attenuation
	Jumped        bool
	ShapeChanged  bool
}

// Controller drives one actor through one Locomotor. It owns the actor's
// MotionState and active shape; nothing else mutates them.
type Controller struct {
	integrator *Integrator
	reconciler Reconciler
	negotiator *ShapeNegotiator
	projector  Projector
	router     *EventRouter

	loco     Locomotor
	animator Animator
	state    motion.MotionState
	frame    uint64
	logger   *slog.Logger
}

// NewController wires the controller to loco, pushes the Standing preset to
// its shape and subscribes the event router to its events. animator may be
// nil, in which case parameters go to an internal ParamSet.
func NewController(cfg *config.MovementConfig, loco Locomotor, animator Animator, logger *slog.Logger) *Controller {
	if animator == nil {
		animator = NewParamSet()
	}
	c := &Controller{
		integrator: NewIntegrator(cfg),
		negotiator: NewShapeNegotiator(logger),
		router:     NewEventRouter(logger),
		loco:       loco,
		animator:   animator,
		state:      motion.NewMotionState(),
		logger:     logger,
	}
	c.negotiator.Apply(loco.Shape(), motion.Standing)
	c.router.Attach(loco.Events())
	return c
}

// State returns a copy of the current MotionState.
func (c *Controller) State() motion.MotionState {
	return c.state
}

// Shape returns the active preset.
func (c *Controller) Shape() motion.ShapePreset {
	return c.negotiator.Active()
}

// Router exposes the event router so callers can hook OnContact.
func (c *Controller) Router() *EventRouter {
	return c.router
}

// Animator returns the animator parameters are written to.
func (c *Controller) Animator() Animator {
	return c.animator
}

// SetMovement swaps the movement tuning between frames.
func (c *Controller) SetMovement(cfg *config.MovementConfig) {
	c.integrator.SetConfig(cfg)
	c.logger.Info("movement tuning updated",
		"gravity", cfg.Gravity,
		"runSpeed", cfg.RunSpeed,
		"jumpHeight", cfg.JumpHeight)
}

// Tick advances the actor one frame. The steps run in a fixed order; moving
// any of them changes landing and jump behaviour.
func (c *Controller) Tick(input motion.FrameInput, dt float64) FrameResult {
	c.frame++
	s := &c.state

	// Body's view of last frame, then grounded reset of the flags.
	s.Velocity = c.loco.Velocity()
	grounded := c.loco.IsGrounded()
	c.reconciler.Reconcile(s, grounded, s.Velocity.Y)

	s.Facing = motion.FacingFromAxis(s.Facing, input.HorizontalAxis)
	axis := c.integrator.EffectiveAxis(*s, input)

	v, jumped := c.integrator.Integrate(*s, input, grounded, dt)
	if jumped {
		c.reconciler.MarkJump(s)
	}
	s.Velocity = v

	displacement := Displacement(v, dt)
	c.loco.Move(displacement, dt)
	c.reconciler.Settle(s, c.loco.IsGrounded())

	changed, scale := c.negotiator.Negotiate(s, input.VerticalAxisRaw, c.loco)
	axis *= scale
	if changed {
		c.logger.Debug("shape changed", "frame", c.frame, "preset", c.negotiator.Active().Name)
	}

	params := c.projector.Project(*s, input.HorizontalAxis)
	c.projector.Emit(c.animator, params)

	return FrameResult{
		Frame:         c.frame,
		State:         *s,
		Shape:         c.negotiator.Active(),
		Params:        params,
		Displacement:  displacement,
		EffectiveAxis: axis,
		Jumped:        jumped,
		ShapeChanged:  changed,
	}
}
