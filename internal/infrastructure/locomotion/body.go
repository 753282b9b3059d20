// Package locomotion is the raycast body the controller moves: it clips a
// desired displacement against solid tiles in a resolv space, reports whether
// the move ended on ground, and publishes contacts and trigger crossings.
//
// The body works in resolv pixels (y down) and converts to world units
// (y up) at its boundary using Locomotion.PixelsPerUnit.
package locomotion

import (
	"log/slog"
	"math"
	"sort"

	"github.com/solarlune/resolv"
	"github.com/younwookim/motion2d/internal/application/event"
	"github.com/younwookim/motion2d/internal/application/system"
	"github.com/younwookim/motion2d/internal/domain/motion"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
	"github.com/younwookim/motion2d/internal/infrastructure/level"
)

// TagBody marks the body's own object in the space.
const TagBody = "body"

const (
	tagProbe = "probe"
	epsilon  = 1e-6
)

var _ system.Locomotor = (*Body)(nil)

type hit struct {
	obj    *resolv.Object
	normal motion.Vec2
}

// Body is a box moved by casting rays from its skin-inset edges.
type Body struct {
	space  *resolv.Space
	obj    *resolv.Object
	shape  *Collider
	events *event.Dispatcher
	logger *slog.Logger

	ppu  float64
	skin float64 // pixels

	x, y float64 // feet, pixels

	velocity motion.Vec2
	grounded bool
	hits     []hit
	inside   map[*resolv.Object]bool
}

// NewBody places a body with its feet at pixel position (x, y). The box is
// empty until a shape preset is applied to Shape().
func NewBody(space *resolv.Space, cfg config.LocomotionConfig, x, y float64, logger *slog.Logger) *Body {
	ppu := cfg.PixelsPerUnit
	if ppu <= 0 {
		ppu = 1
	}
	b := &Body{
		space:  space,
		shape:  newCollider(cfg.TotalVerticalRays, cfg.SkinWidth),
		events: event.NewDispatcher(),
		logger: logger,
		ppu:    ppu,
		skin:   cfg.SkinWidth * ppu,
		x:      x,
		y:      y,
		inside: make(map[*resolv.Object]bool),
	}
	b.obj = resolv.NewObject(x, y, 1, 1, TagBody)
	b.obj.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	space.Add(b.obj)

	logger.Debug("body placed", "x", x, "y", y, "ppu", ppu, "skin_px", b.skin)
	return b
}

func (b *Body) Shape() system.Shape           { return b.shape }
func (b *Body) Collider() *Collider           { return b.shape }
func (b *Body) Events() *event.Dispatcher     { return b.events }
func (b *Body) Velocity() motion.Vec2         { return b.velocity }
func (b *Body) IsGrounded() bool              { return b.grounded }
func (b *Body) PixelPosition() (x, y float64) { return b.x, b.y }

// Position returns the feet in world units.
func (b *Body) Position() motion.Vec2 {
	return motion.Vec2{X: b.x / b.ppu, Y: -b.y / b.ppu}
}

// SetPosition moves the feet to pixel position (x, y) without casting and
// clears velocity and contact state.
func (b *Body) SetPosition(x, y float64) {
	b.x, b.y = x, y
	b.velocity = motion.Vec2{}
	b.grounded = false
	b.syncBox()
}

// Box is the current collision box in pixels.
func (b *Body) Box() level.Rect {
	s, c := b.shape.size, b.shape.center
	return level.Rect{
		X: b.x + (c.X-s.X/2)*b.ppu,
		Y: b.y - (c.Y+s.Y/2)*b.ppu,
		W: s.X * b.ppu,
		H: s.Y * b.ppu,
	}
}

// Move casts the displacement (world units) horizontally, then vertically
// from the horizontally shifted box, and applies what is left.
func (b *Body) Move(displacement motion.Vec2, dt float64) {
	b.syncBox()
	b.grounded = false
	b.hits = b.hits[:0]

	box := b.Box()
	dx := displacement.X * b.ppu
	dy := -displacement.Y * b.ppu
	if dx != 0 {
		dx = b.castHorizontal(box, dx)
	}
	if dy != 0 {
		dy = b.castVertical(box, dx, dy)
	}

	b.x += dx
	b.y += dy
	b.syncBox()

	if dt > 0 {
		b.velocity = motion.Vec2{X: dx / b.ppu, Y: -dy / b.ppu}.Scale(1 / dt)
	}

	for _, h := range b.hits {
		b.events.EmitCollide(motion.CollisionEvent{HitNormal: h.normal, ColliderID: colliderID(h.obj)})
	}
	b.updateTriggers()
}

func (b *Body) castHorizontal(box level.Rect, dx float64) float64 {
	dir := sign(dx)
	length := math.Abs(dx) + b.skin
	originX := box.X + b.skin
	if dir > 0 {
		originX = box.X + box.W - b.skin
	}
	spacing, _ := b.shape.RaySpacing()
	spacing *= b.ppu
	rays, _ := b.shape.RayCounts()

	solids := b.candidates(0, dx, 0)
	var closest *resolv.Object
	for i := 0; i < rays; i++ {
		ry := box.Y + box.H - b.skin - float64(i)*spacing
		for _, s := range solids {
			if ry < s.Y || ry >= s.Y+s.H {
				continue
			}
			dist := s.X - originX
			if dir < 0 {
				dist = originX - (s.X + s.W)
			}
			if dist < 0 || dist > length {
				continue
			}
			length = dist
			dx = dir * (dist - b.skin)
			closest = s
		}
	}
	if closest != nil {
		b.hits = append(b.hits, hit{obj: closest, normal: motion.Vec2{X: -dir}})
	}
	return dx
}

func (b *Body) castVertical(box level.Rect, dx, dy float64) float64 {
	dir := sign(dy)
	length := math.Abs(dy) + b.skin
	originY := box.Y + b.skin
	if dir > 0 {
		originY = box.Y + box.H - b.skin
	}
	_, spacing := b.shape.RaySpacing()
	spacing *= b.ppu
	_, rays := b.shape.RayCounts()

	solids := b.candidates(dx, 0, dy)
	var closest *resolv.Object
	for i := 0; i < rays; i++ {
		rx := box.X + b.skin + float64(i)*spacing + dx
		for _, s := range solids {
			if rx < s.X || rx >= s.X+s.W {
				continue
			}
			dist := s.Y - originY
			if dir < 0 {
				dist = originY - (s.Y + s.H)
			}
			if dist < 0 || dist > length {
				continue
			}
			length = dist
			dy = dir * (dist - b.skin)
			closest = s
		}
	}
	if closest == nil {
		return dy
	}
	// Screen-down is world-down, so a downward hit is ground with normal +Y.
	normal := motion.Vec2{Y: 1}
	if dir < 0 {
		normal = motion.Vec2{Y: -1}
	} else {
		b.grounded = true
	}
	b.hits = append(b.hits, hit{obj: closest, normal: normal})
	return dy
}

// candidates gathers solids in the cells swept by the box moving (dx, dy)
// after a fixed horizontal offset. The reach is extended past the skin.
func (b *Body) candidates(offsetX, dx, dy float64) []*resolv.Object {
	dx = b.reach(dx)
	dy = b.reach(dy)
	w := math.Max(b.obj.W, 1)
	h := math.Max(b.obj.H, 1)
	steps := int(math.Ceil(math.Max(math.Abs(dx)/w, math.Abs(dy)/h)))
	if steps < 1 {
		steps = 1
	}

	seen := make(map[*resolv.Object]bool)
	var out []*resolv.Object
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		c := b.obj.Check(offsetX+dx*f, dy*f, level.TagSolid)
		if c == nil {
			continue
		}
		for _, o := range c.Objects {
			if !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}

func (b *Body) reach(d float64) float64 {
	if d == 0 {
		return 0
	}
	return d + sign(d)*(b.skin+1)
}

// CanResize reports whether a box of extent (world units), centred on the
// feet and resting on them, would overlap no solid.
func (b *Body) CanResize(extent motion.Vec2) bool {
	w, h := extent.X*b.ppu, extent.Y*b.ppu
	r := level.Rect{X: b.x - w/2, Y: b.y - h, W: w, H: h}

	// Pad by a pixel: resolv's cell lookup excludes the last pixel row and column.
	probe := resolv.NewObject(r.X-1, r.Y-1, r.W+2, r.H+2, tagProbe)
	b.space.Add(probe)
	defer b.space.Remove(probe)

	c := probe.Check(0, 0, level.TagSolid)
	if c == nil {
		return true
	}
	for _, s := range c.Objects {
		if overlaps(r, rectOf(s)) {
			return false
		}
	}
	return true
}

func (b *Body) updateTriggers() {
	box := b.Box()
	now := make(map[*resolv.Object]bool)
	for _, d := range [][2]float64{{-1, -1}, {1, 1}} {
		c := b.obj.Check(d[0], d[1], level.TagTrigger)
		if c == nil {
			continue
		}
		for _, o := range c.Objects {
			if overlaps(box, rectOf(o)) {
				now[o] = true
			}
		}
	}

	var exited, entered []motion.ColliderID
	for o := range b.inside {
		if !now[o] {
			exited = append(exited, colliderID(o))
		}
	}
	for o := range now {
		if !b.inside[o] {
			entered = append(entered, colliderID(o))
		}
	}
	b.inside = now

	sortIDs(exited)
	sortIDs(entered)
	for _, id := range exited {
		b.events.EmitTriggerExit(motion.TriggerEvent{ColliderID: id})
	}
	for _, id := range entered {
		b.events.EmitTriggerEnter(motion.TriggerEvent{ColliderID: id})
	}
}

func (b *Body) syncBox() {
	r := b.Box()
	w, h := math.Max(r.W, 1), math.Max(r.H, 1)
	if b.obj.W != w || b.obj.H != h {
		b.obj.W, b.obj.H = w, h
		b.obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	}
	b.obj.X, b.obj.Y = r.X, r.Y
	b.obj.Update()
}

func rectOf(o *resolv.Object) level.Rect {
	return level.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

func overlaps(a, b level.Rect) bool {
	return a.X < b.X+b.W-epsilon && b.X < a.X+a.W-epsilon &&
		a.Y < b.Y+b.H-epsilon && b.Y < a.Y+a.H-epsilon
}

func colliderID(o *resolv.Object) motion.ColliderID {
	if name, ok := o.Data.(string); ok {
		return motion.ColliderID(name)
	}
	return "unnamed"
}

func sortIDs(ids []motion.ColliderID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
