package locomotion

import "github.com/younwookim/motion2d/internal/domain/motion"

// Collider is the body's box in world units, relative to the feet.
// Ray spacing is cached and only refreshed by RecalculateRaySpacing.
type Collider struct {
	size   motion.Vec2
	center motion.Vec2
	hRays  int
	vRays  int
	skin   float64
	hSpace float64
	vSpace float64
}

func newCollider(verticalRays int, skin float64) *Collider {
	if verticalRays < 2 {
		verticalRays = 2
	}
	return &Collider{vRays: verticalRays, hRays: 2, skin: skin}
}

func (c *Collider) Size() motion.Vec2   { return c.size }
func (c *Collider) Center() motion.Vec2 { return c.center }

func (c *Collider) SetSize(size motion.Vec2) {
	c.size = size
}

func (c *Collider) SetCenter(center motion.Vec2) {
	c.center = center
}

// SetHorizontalRayCount sets how many rays are cast sideways. Values below 2
// are raised to 2.
func (c *Collider) SetHorizontalRayCount(n int) {
	if n < 2 {
		n = 2
	}
	c.hRays = n
}

// RecalculateRaySpacing spreads the rays evenly over the skin-inset box.
func (c *Collider) RecalculateRaySpacing() {
	inner := c.size.Y - 2*c.skin
	c.hSpace = inner / float64(c.hRays-1)
	inner = c.size.X - 2*c.skin
	c.vSpace = inner / float64(c.vRays-1)
}

// RaySpacing returns the cached horizontal-ray and vertical-ray spacing.
func (c *Collider) RaySpacing() (horizontal, vertical float64) {
	return c.hSpace, c.vSpace
}

// RayCounts returns the horizontal and vertical ray counts.
func (c *Collider) RayCounts() (horizontal, vertical int) {
	return c.hRays, c.vRays
}
