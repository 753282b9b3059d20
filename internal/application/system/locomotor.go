package system

import (
	"github.com/younwookim/motion2d/internal/application/event"
	"github.com/younwookim/motion2d/internal/domain/motion"
)

// Shape is the collision-box handle exposed by the locomotion body.
// Size and center changes take effect on the next Move; ray spacing is only
// refreshed by RecalculateRaySpacing.
type Shape interface {
	Size() motion.Vec2
	SetSize(size motion.Vec2)
	Center() motion.Vec2
	SetCenter(center motion.Vec2)
	SetHorizontalRayCount(n int)
	RecalculateRaySpacing()
}

// Locomotor is the raycast body that turns a desired displacement into an
// achieved one. The controller is its only caller.
type Locomotor interface {
	// Move displaces the body by at most displacement. dt is the frame time
	// the displacement covers and is used to report Velocity.
	Move(displacement motion.Vec2, dt float64)

	// Velocity is the achieved displacement of the last Move divided by its dt.
	Velocity() motion.Vec2

	// IsGrounded reports whether the last Move ended on ground.
	IsGrounded() bool

	Shape() Shape

	// CanResize reports whether a box of the given extent, bottom-anchored at
	// the current position, would be free of obstruction.
	CanResize(extent motion.Vec2) bool

	// Events is where contacts and trigger crossings are published.
	Events() *event.Dispatcher
}
