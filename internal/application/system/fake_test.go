package system

import (
	"github.com/younwookim/motion2d/internal/application/event"
	"github.com/younwookim/motion2d/internal/domain/motion"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
	"github.com/younwookim/motion2d/internal/infrastructure/logger"
)

// fakeLocomotor is a scripted Locomotor. Velocity echoes the last
// displacement over dt, like a body moving through empty space.
type fakeLocomotor struct {
	calls []string

	grounded  bool
	canResize bool
	moves     []motion.Vec2
	velocity  motion.Vec2

	// groundAfterMove overrides grounded once Move has run, when set.
	groundAfterMove func(d motion.Vec2) bool

	shape  *fakeShape
	events *event.Dispatcher
}

func newFakeLocomotor(grounded bool) *fakeLocomotor {
	f := &fakeLocomotor{
		grounded:  grounded,
		canResize: true,
		events:    event.NewDispatcher(),
	}
	f.shape = &fakeShape{owner: f}
	return f
}

func (f *fakeLocomotor) Move(d motion.Vec2, dt float64) {
	f.calls = append(f.calls, "move")
	f.moves = append(f.moves, d)
	if dt > 0 {
		f.velocity = d.Scale(1 / dt)
	}
	if f.groundAfterMove != nil {
		f.grounded = f.groundAfterMove(d)
	}
}

func (f *fakeLocomotor) Velocity() motion.Vec2 { return f.velocity }
func (f *fakeLocomotor) IsGrounded() bool      { return f.grounded }
func (f *fakeLocomotor) Shape() Shape          { return f.shape }
func (f *fakeLocomotor) Events() *event.Dispatcher {
	return f.events
}

func (f *fakeLocomotor) CanResize(extent motion.Vec2) bool {
	f.calls = append(f.calls, "canResize")
	return f.canResize
}

func (f *fakeLocomotor) resetCalls() { f.calls = nil }

type fakeShape struct {
	owner  *fakeLocomotor
	size   motion.Vec2
	center motion.Vec2
	rays   int
	// spacingFor is the size the last RecalculateRaySpacing saw.
	spacingFor motion.Vec2
}

func (s *fakeShape) Size() motion.Vec2   { return s.size }
func (s *fakeShape) Center() motion.Vec2 { return s.center }

func (s *fakeShape) SetSize(v motion.Vec2) {
	s.owner.calls = append(s.owner.calls, "setSize")
	s.size = v
}

func (s *fakeShape) SetCenter(v motion.Vec2) {
	s.owner.calls = append(s.owner.calls, "setCenter")
	s.center = v
}

func (s *fakeShape) SetHorizontalRayCount(n int) {
	s.owner.calls = append(s.owner.calls, "setRays")
	s.rays = n
}

func (s *fakeShape) RecalculateRaySpacing() {
	s.owner.calls = append(s.owner.calls, "recalc")
	s.spacingFor = s.size
}

func referenceMovement() *config.MovementConfig {
	m := config.Default().Movement
	return &m
}

func newTestController(loco *fakeLocomotor) (*Controller, *ParamSet) {
	params := NewParamSet()
	c := NewController(referenceMovement(), loco, params, logger.Discard())
	loco.resetCalls()
	return c, params
}
