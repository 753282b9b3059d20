package motion

// FrameInput is one frame of sampled input. It is consumed immediately and
// never stored by the controller.
type FrameInput struct {
	HorizontalAxis  float64 // continuous, [-1, 1]
	VerticalAxisRaw int     // -1, 0 or 1
	JumpPressed     bool    // edge: true only on the frame the button went down
}

// WantsDuck reports whether the vertical axis is held fully down.
func (in FrameInput) WantsDuck() bool {
	return in.VerticalAxisRaw == -1
}
