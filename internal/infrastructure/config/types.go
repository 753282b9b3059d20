package config

// ControllerConfig is the root config for controller.json / controller.yaml
type ControllerConfig struct {
	Display    DisplayConfig    `json:"display" yaml:"display"`
	Movement   MovementConfig   `json:"movement" yaml:"movement"`
	Locomotion LocomotionConfig `json:"locomotion" yaml:"locomotion"`
	Input      InputConfig      `json:"input" yaml:"input"`
	Log        LogConfig        `json:"log" yaml:"log"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

// MovementConfig tunes the velocity integrator. All values are in world
// units (1 unit = Locomotion.PixelsPerUnit pixels) and seconds.
type MovementConfig struct {
	Gravity       float64 `json:"gravity" yaml:"gravity"` // negative: +Y is up
	RunSpeed      float64 `json:"runSpeed" yaml:"runSpeed"`
	GroundDamping float64 `json:"groundDamping" yaml:"groundDamping"` // how fast direction changes on ground, higher is snappier
	InAirDamping  float64 `json:"inAirDamping" yaml:"inAirDamping"`
	JumpHeight    float64 `json:"jumpHeight" yaml:"jumpHeight"`
}

// LocomotionConfig configures the raycast body.
type LocomotionConfig struct {
	PixelsPerUnit     float64 `json:"pixelsPerUnit" yaml:"pixelsPerUnit"`
	SkinWidth         float64 `json:"skinWidth" yaml:"skinWidth"` // world units
	TotalVerticalRays int     `json:"totalVerticalRays" yaml:"totalVerticalRays"`
	CellSize          int     `json:"cellSize" yaml:"cellSize"` // resolv space cell, pixels
}

// InputConfig shapes the virtual horizontal axis built from digital keys.
type InputConfig struct {
	Sensitivity float64 `json:"sensitivity" yaml:"sensitivity"` // units/sec toward target
	Gravity     float64 `json:"gravity" yaml:"gravity"`         // units/sec back to zero
	Snap        bool    `json:"snap" yaml:"snap"`               // jump to zero on reversal
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "console", "text", "json"
}
