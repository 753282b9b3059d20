package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/motion2d/internal/domain/motion"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
)

// KeyState is the raw digital input for one frame.
type KeyState struct {
	Left        bool
	Right       bool
	Up          bool
	Down        bool
	JumpPressed bool // any jump key went down this frame
}

// AxisFilter turns two digital keys into a continuous axis in [-1, 1]:
// it ramps toward the held direction at Sensitivity per second and back to
// zero at Gravity per second. With Snap, reversing direction starts from 0.
type AxisFilter struct {
	cfg   config.InputConfig
	value float64
}

// NewAxisFilter creates a filter at rest.
func NewAxisFilter(cfg config.InputConfig) *AxisFilter {
	return &AxisFilter{cfg: cfg}
}

// Value returns the current axis value.
func (f *AxisFilter) Value() float64 {
	return f.value
}

// Reset puts the axis back to 0.
func (f *AxisFilter) Reset() {
	f.value = 0
}

// Update advances the axis by dt given which keys are held.
func (f *AxisFilter) Update(neg, pos bool, dt float64) float64 {
	target := 0.0
	if pos {
		target++
	}
	if neg {
		target--
	}

	if target != 0 {
		if f.cfg.Snap && f.value != 0 && motion.Sign(f.value) != target {
			f.value = 0
		}
		f.value = approach(f.value, target, f.cfg.Sensitivity*dt)
	} else {
		f.value = approach(f.value, 0, f.cfg.Gravity*dt)
	}
	return f.value
}

func approach(from, to, step float64) float64 {
	if from < to {
		from += step
		if from > to {
			return to
		}
		return from
	}
	from -= step
	if from < to {
		return to
	}
	return from
}

// InputSystem samples the keyboard into FrameInput.
type InputSystem struct {
	axis *AxisFilter
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg config.InputConfig) *InputSystem {
	return &InputSystem{axis: NewAxisFilter(cfg)}
}

// SetConfig swaps the axis tuning, keeping the current axis value.
func (s *InputSystem) SetConfig(cfg config.InputConfig) {
	s.axis.cfg = cfg
}

// ReadKeys reads the current keyboard state from ebiten.
// W, Up and Space all count as jump.
func ReadKeys() KeyState {
	return KeyState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeyW) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

// Sample reads the keyboard and converts it.
func (s *InputSystem) Sample(dt float64) motion.FrameInput {
	return s.Convert(ReadKeys(), dt)
}

// Convert maps raw keys to FrameInput, advancing the horizontal axis filter.
func (s *InputSystem) Convert(k KeyState, dt float64) motion.FrameInput {
	vertical := 0
	if k.Up {
		vertical++
	}
	if k.Down {
		vertical--
	}
	return motion.FrameInput{
		HorizontalAxis:  s.axis.Update(k.Left, k.Right, dt),
		VerticalAxisRaw: vertical,
		JumpPressed:     k.JumpPressed,
	}
}
