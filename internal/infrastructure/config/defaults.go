package config

import (
	"errors"
	"fmt"
)

// Default returns the reference tuning.
func Default() *ControllerConfig {
	return &ControllerConfig{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        3,
			Framerate:    60,
		},
		Movement: MovementConfig{
			Gravity:       -25,
			RunSpeed:      8,
			GroundDamping: 20,
			InAirDamping:  5,
			JumpHeight:    3,
		},
		Locomotion: LocomotionConfig{
			PixelsPerUnit:     32,
			SkinWidth:         0.02,
			TotalVerticalRays: 4,
			CellSize:          16,
		},
		Input: InputConfig{
			Sensitivity: 3,
			Gravity:     3,
			Snap:        true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the tuning for values the controller cannot work with.
func (c *ControllerConfig) Validate() error {
	var errs []error
	m := c.Movement
	if m.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("movement.gravity must be negative, got %v", m.Gravity))
	}
	if m.RunSpeed < 0 {
		errs = append(errs, fmt.Errorf("movement.runSpeed must not be negative, got %v", m.RunSpeed))
	}
	if m.JumpHeight < 0 {
		errs = append(errs, fmt.Errorf("movement.jumpHeight must not be negative, got %v", m.JumpHeight))
	}
	if m.InAirDamping > m.GroundDamping {
		errs = append(errs, fmt.Errorf("movement.inAirDamping (%v) must not exceed groundDamping (%v)",
			m.InAirDamping, m.GroundDamping))
	}

	l := c.Locomotion
	if l.PixelsPerUnit <= 0 {
		errs = append(errs, fmt.Errorf("locomotion.pixelsPerUnit must be positive, got %v", l.PixelsPerUnit))
	}
	if l.TotalVerticalRays < 2 {
		errs = append(errs, fmt.Errorf("locomotion.totalVerticalRays must be at least 2, got %d", l.TotalVerticalRays))
	}
	if l.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("locomotion.cellSize must be positive, got %d", l.CellSize))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate))
	}
	return errors.Join(errs...)
}

// FrameDT returns the fixed frame time implied by the display framerate.
func (c *ControllerConfig) FrameDT() float64 {
	return c.Display.FrameDT()
}

// FrameDT returns 1/framerate, or 1/60 when the framerate is unset.
func (d DisplayConfig) FrameDT() float64 {
	if d.Framerate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(d.Framerate)
}
