package motion

// ShapePreset is a fixed collision extent. Center is the box center relative
// to the actor origin (feet).
type ShapePreset struct {
	Name               string
	Size               Vec2
	Center             Vec2
	HorizontalRayCount int
}

var (
	// Standing is the default upright box.
	Standing = ShapePreset{
		Name:               "standing",
		Size:               Vec2{X: 0.4, Y: 0.71},
		Center:             Vec2{X: 0, Y: 0.355},
		HorizontalRayCount: 8,
	}

	// Crouched is the ducking box: wider and about half as tall.
	Crouched = ShapePreset{
		Name:               "crouched",
		Size:               Vec2{X: 0.5, Y: 0.39},
		Center:             Vec2{X: 0, Y: 0.19},
		HorizontalRayCount: 5,
	}

	// StandClearance is the extent that must be free before leaving Crouched.
	// It is as tall as Standing but as wide as Crouched, so the check also
	// covers the space the crouched box currently occupies.
	StandClearance = Vec2{X: 0.5, Y: 0.71}
)
