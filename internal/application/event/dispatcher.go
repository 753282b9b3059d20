// Package event carries contact and trigger notifications from the locomotion
// body to any number of observers.
//
// Delivery is synchronous and in subscription order: the body emits while it
// moves, inside the frame, and every handler has returned before Move does.
package event

import "github.com/younwookim/motion2d/internal/domain/motion"

// CollideFunc handles a contact reported by the body.
type CollideFunc func(hit motion.CollisionEvent)

// TriggerFunc handles a trigger enter or exit.
type TriggerFunc func(ev motion.TriggerEvent)

// Dispatcher is a callback registry. The zero value is ready to use.
type Dispatcher struct {
	collide      []CollideFunc
	triggerEnter []TriggerFunc
	triggerExit  []TriggerFunc
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OnCollide registers a contact observer.
func (d *Dispatcher) OnCollide(fn CollideFunc) {
	d.collide = append(d.collide, fn)
}

// OnTriggerEnter registers a trigger-enter observer.
func (d *Dispatcher) OnTriggerEnter(fn TriggerFunc) {
	d.triggerEnter = append(d.triggerEnter, fn)
}

// OnTriggerExit registers a trigger-exit observer.
func (d *Dispatcher) OnTriggerExit(fn TriggerFunc) {
	d.triggerExit = append(d.triggerExit, fn)
}

// EmitCollide delivers hit to every contact observer.
func (d *Dispatcher) EmitCollide(hit motion.CollisionEvent) {
	for _, fn := range d.collide {
		fn(hit)
	}
}

// EmitTriggerEnter delivers ev to every trigger-enter observer.
func (d *Dispatcher) EmitTriggerEnter(ev motion.TriggerEvent) {
	for _, fn := range d.triggerEnter {
		fn(ev)
	}
}

// EmitTriggerExit delivers ev to every trigger-exit observer.
func (d *Dispatcher) EmitTriggerExit(ev motion.TriggerEvent) {
	for _, fn := range d.triggerExit {
		fn(ev)
	}
}

// Observers returns the number of registered handlers across all kinds.
func (d *Dispatcher) Observers() int {
	return len(d.collide) + len(d.triggerEnter) + len(d.triggerExit)
}
