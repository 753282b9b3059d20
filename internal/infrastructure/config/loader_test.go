package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadController(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadController()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, -25.0, cfg.Movement.Gravity)
	assert.Equal(t, 8.0, cfg.Movement.RunSpeed)
	assert.Equal(t, 20.0, cfg.Movement.GroundDamping)
	assert.Equal(t, 5.0, cfg.Movement.InAirDamping)
	assert.Equal(t, 3.0, cfg.Movement.JumpHeight)
	assert.Equal(t, 32.0, cfg.Locomotion.PixelsPerUnit)
}

func TestLoader_LoadController_YAMLFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"controller.yaml": &fstest.MapFile{Data: []byte(`
movement:
  gravity: -30
  runSpeed: 6
  groundDamping: 18
  inAirDamping: 4
  jumpHeight: 2.5
log:
  level: debug
`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadController()
	require.NoError(t, err)

	assert.Equal(t, -30.0, cfg.Movement.Gravity)
	assert.Equal(t, 6.0, cfg.Movement.RunSpeed)
	assert.Equal(t, 2.5, cfg.Movement.JumpHeight)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Sections absent from the file keep defaults.
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 32.0, cfg.Locomotion.PixelsPerUnit)
}

func TestLoader_LoadController_JSONWinsOverYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"controller.json": &fstest.MapFile{Data: []byte(`{"movement":{"gravity":-10,"runSpeed":1,"groundDamping":2,"inAirDamping":1,"jumpHeight":1}}`)},
		"controller.yaml": &fstest.MapFile{Data: []byte("movement:\n  gravity: -99\n")},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadController()
	require.NoError(t, err)
	assert.Equal(t, -10.0, cfg.Movement.Gravity)
}

func TestLoader_LoadController_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{name: "missing", fsys: fstest.MapFS{}},
		{name: "malformed json", fsys: fstest.MapFS{"controller.json": &fstest.MapFile{Data: []byte("{")}}},
		{name: "malformed yaml", fsys: fstest.MapFS{"controller.yaml": &fstest.MapFile{Data: []byte("movement: [")}}},
		{name: "positive gravity", fsys: fstest.MapFS{"controller.json": &fstest.MapFile{Data: []byte(`{"movement":{"gravity":25}}`)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").LoadController()
			assert.Error(t, err)
		})
	}
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 16, cfg.Size.TileSize)
	assert.Len(t, cfg.Layers.Collision, cfg.Size.Height/cfg.Size.TileSize)

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, wall.Solid)
	assert.Equal(t, "wall", wall.Type)
	assert.NotEmpty(t, cfg.Triggers)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll("demo")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Controller)
	assert.NotNil(t, cfg.Stage)
}

func TestControllerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ControllerConfig)
		wantErr bool
	}{
		{name: "default", mutate: func(c *ControllerConfig) {}},
		{name: "zero gravity", mutate: func(c *ControllerConfig) { c.Movement.Gravity = 0 }, wantErr: true},
		{name: "air damping above ground damping", mutate: func(c *ControllerConfig) { c.Movement.InAirDamping = 30 }, wantErr: true},
		{name: "equal damping allowed", mutate: func(c *ControllerConfig) { c.Movement.InAirDamping = c.Movement.GroundDamping }},
		{name: "one vertical ray", mutate: func(c *ControllerConfig) { c.Locomotion.TotalVerticalRays = 1 }, wantErr: true},
		{name: "zero pixels per unit", mutate: func(c *ControllerConfig) { c.Locomotion.PixelsPerUnit = 0 }, wantErr: true},
		{name: "zero framerate", mutate: func(c *ControllerConfig) { c.Display.Framerate = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestControllerConfig_FrameDT(t *testing.T) {
	cfg := Default()
	assert.InDelta(t, 1.0/60.0, cfg.FrameDT(), 1e-12)
}

func TestDisplayConfig_FrameDT(t *testing.T) {
	assert.InDelta(t, 1.0/30.0, DisplayConfig{Framerate: 30}.FrameDT(), 1e-12)
	assert.InDelta(t, 1.0/60.0, DisplayConfig{}.FrameDT(), 1e-12, "unset framerate falls back to 60")
}

func TestIsControllerFile(t *testing.T) {
	assert.True(t, IsControllerFile("/tmp/configs/controller.json"))
	assert.True(t, IsControllerFile("controller.yaml"))
	assert.False(t, IsControllerFile("/tmp/configs/stages/demo.json"))
	assert.False(t, IsControllerFile("controller.json.swp"))
}
