package system

import (
	"log/slog"

	"github.com/younwookim/motion2d/internal/application/event"
	"github.com/younwookim/motion2d/internal/domain/motion"
)

// EventRouter observes the body's contacts and triggers for diagnostics.
// Plain ground contacts are dropped; nothing here touches MotionState.
type EventRouter struct {
	logger *slog.Logger

	// OnContact, when set, receives every contact that passed the filter.
	OnContact func(hit motion.CollisionEvent)

	forwarded int
	discarded int
}

// NewEventRouter creates a router logging to logger.
func NewEventRouter(logger *slog.Logger) *EventRouter {
	return &EventRouter{logger: logger}
}

// Attach subscribes the router to d.
func (r *EventRouter) Attach(d *event.Dispatcher) {
	d.OnCollide(r.HandleCollide)
	d.OnTriggerEnter(r.HandleTriggerEnter)
	d.OnTriggerExit(r.HandleTriggerExit)
}

// HandleCollide drops flat-ground hits and forwards the rest.
func (r *EventRouter) HandleCollide(hit motion.CollisionEvent) {
	if hit.IsFlatGround() {
		r.discarded++
		return
	}
	r.forwarded++
	r.logger.Debug("collision",
		"collider", hit.ColliderID,
		"normal_x", hit.HitNormal.X,
		"normal_y", hit.HitNormal.Y)
	if r.OnContact != nil {
		r.OnContact(hit)
	}
}

// HandleTriggerEnter logs the trigger the body entered.
func (r *EventRouter) HandleTriggerEnter(ev motion.TriggerEvent) {
	r.logger.Info("trigger enter", "collider", ev.ColliderID)
}

// HandleTriggerExit logs the trigger the body left.
func (r *EventRouter) HandleTriggerExit(ev motion.TriggerEvent) {
	r.logger.Info("trigger exit", "collider", ev.ColliderID)
}

// Counts returns how many contacts were forwarded and discarded.
func (r *EventRouter) Counts() (forwarded, discarded int) {
	return r.forwarded, r.discarded
}
