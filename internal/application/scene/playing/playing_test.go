package playing

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/motion2d/internal/application/replay"
	"github.com/younwookim/motion2d/internal/application/scene"
	"github.com/younwookim/motion2d/internal/application/state"
	"github.com/younwookim/motion2d/internal/domain/motion"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
	"github.com/younwookim/motion2d/internal/infrastructure/level"
	"github.com/younwookim/motion2d/internal/infrastructure/logger"
	"github.com/younwookim/motion2d/internal/infrastructure/storage"
)

const frameDT = 1.0 / 60.0

// createTestLevel is a 320x160 stage with a floor at y=144 and a trigger
// around the spawn.
func createTestLevel() *level.Level {
	lv := &level.Level{
		Name:     "test",
		Width:    320,
		Height:   160,
		TileSize: 16,
		SpawnX:   48,
		SpawnY:   144,
		Triggers: []level.Trigger{{Name: "start", Rect: level.Rect{X: 40, Y: 128, W: 16, H: 16}}},
	}
	for x := 0; x < 20; x++ {
		lv.Solids = append(lv.Solids, level.Rect{X: float64(x) * 16, Y: 144, W: 16, H: 16})
	}
	return lv
}

func createTestScene(t *testing.T, mutate func(*Options)) *Playing {
	t.Helper()
	opts := Options{
		Config: config.Default(),
		Level:  createTestLevel(),
		Logger: logger.Discard(),
	}
	if mutate != nil {
		mutate(&opts)
	}
	return New(opts)
}

func writeController(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ControllerJSON), []byte(body), 0o644))
}

type memItems map[string][]byte

func (m memItems) LoadItem(key string) ([]byte, error)    { return m[key], nil }
func (m memItems) SaveItem(key string, data []byte) error { m[key] = data; return nil }

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := createTestScene(t, nil)

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, motion.Standing, p.Controller().Shape())
	x, y := p.Body().PixelPosition()
	assert.Equal(t, 48.0, x)
	assert.Equal(t, 144.0, y)
	assert.Nil(t, p.Recorder())
}

func TestPlaying_StepIdleStaysGrounded(t *testing.T) {
	p := createTestScene(t, nil)

	for i := 0; i < 60; i++ {
		res := p.Step(motion.FrameInput{}, frameDT)
		require.True(t, res.State.IsGrounded)
	}
	assert.Equal(t, "start", p.lastZone)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := createTestScene(t, nil)

	next, err := p.Update(1.0 / 60.0)
	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, uint64(1), p.last.Frame)
}

func TestPlaying_Update_TicksWithGivenDT(t *testing.T) {
	p := createTestScene(t, nil)
	dt := 1.0 / 30.0

	_, err := p.Update(dt)
	require.NoError(t, err)

	// First frame: one step of gravity at the passed frame length.
	assert.InDelta(t, config.Default().Movement.Gravity*dt, p.Controller().State().Velocity.Y, 1e-12)
	assert.InDelta(t, config.Default().Movement.Gravity*dt*dt, p.last.Displacement.Y, 1e-12)
}

func TestPlaying_PausedDoesNotTick(t *testing.T) {
	p := createTestScene(t, nil)
	p.TogglePause()
	require.Equal(t, state.StatePaused, p.State())

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Zero(t, p.last.Frame)

	p.TogglePause()
	assert.Equal(t, state.StatePlaying, p.State())
}

func TestPlaying_RespawnsAfterFallingOut(t *testing.T) {
	p := createTestScene(t, func(o *Options) {
		o.Level.Solids = nil
		o.Level.SpawnY = 100
	})

	for i := 0; i < 120; i++ {
		p.Step(motion.FrameInput{}, frameDT)
	}
	assert.GreaterOrEqual(t, p.Respawns(), 1)
	_, y := p.Body().PixelPosition()
	assert.LessOrEqual(t, y, float64(160+fallMargin))
}

func TestPlaying_HotReload(t *testing.T) {
	dir := t.TempDir()
	writeController(t, dir, `{"movement":{"gravity":-25,"runSpeed":8,"groundDamping":20,"inAirDamping":5,"jumpHeight":1}}`)

	reloads := make(chan string, 2)
	p := createTestScene(t, func(o *Options) {
		o.Loader = config.NewLoader(dir)
		o.Reloads = reloads
	})
	p.Step(motion.FrameInput{}, frameDT)

	reloads <- filepath.Join(dir, config.ControllerJSON)
	reloads <- filepath.Join(dir, config.ControllerJSON)
	p.applyReloads()
	assert.Equal(t, 1.0, p.cfg.Movement.JumpHeight)

	res := p.Step(motion.FrameInput{JumpPressed: true}, frameDT)
	require.True(t, res.Jumped)
	assert.InDelta(t, math.Sqrt(50), res.State.Velocity.Y, 1e-9)
}

func TestPlaying_HotReloadKeepsTuningOnError(t *testing.T) {
	dir := t.TempDir()
	writeController(t, dir, `{"movement":{"gravity":5}}`)

	reloads := make(chan string, 1)
	p := createTestScene(t, func(o *Options) {
		o.Loader = config.NewLoader(dir)
		o.Reloads = reloads
	})

	reloads <- "controller.json"
	p.applyReloads()
	assert.Equal(t, -25.0, p.cfg.Movement.Gravity)

	close(reloads)
	p.applyReloads()
	assert.Nil(t, p.reloads)
}

func TestPlaying_RecordsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p := createTestScene(t, func(o *Options) {
		o.Record = true
		o.RecordName = path
	})
	require.NotNil(t, p.Recorder())

	for i := 0; i < 10; i++ {
		p.Step(motion.FrameInput{HorizontalAxis: 1}, frameDT)
	}
	p.OnExit()
	assert.False(t, p.Recorder().IsRecording())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 10)
	assert.Equal(t, "test", data.Stage)
}

func TestPlaying_RecordsToStore(t *testing.T) {
	store := storage.New(memItems{}, logger.Discard())
	p := createTestScene(t, func(o *Options) {
		o.Record = true
		o.RecordName = "session"
		o.Store = store
	})

	p.Step(motion.FrameInput{JumpPressed: true}, frameDT)
	p.OnExit()

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"session"}, names)

	b, err := store.Load("session")
	require.NoError(t, err)
	data, err := replay.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, []replay.FrameInput{{F: 0, J: true}}, data.Frames)
}

func TestPlaying_Draw(t *testing.T) {
	p := createTestScene(t, nil)
	p.Step(motion.FrameInput{HorizontalAxis: -1}, frameDT)

	screen := ebiten.NewImage(320, 240)
	assert.NotPanics(t, func() { p.Draw(screen) })

	p.TogglePause()
	assert.NotPanics(t, func() { p.Draw(screen) })
}

func TestSpriteGeoM(t *testing.T) {
	m := SpriteGeoM(motion.FacingRight, 10, 20, 12)
	x, y := m.Apply(0, 0)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)

	m = SpriteGeoM(motion.FacingLeft, 10, 20, 12)
	x, y = m.Apply(0, 0)
	assert.Equal(t, 22.0, x, "left edge of the image lands on the right")
	assert.Equal(t, 20.0, y)
	x, _ = m.Apply(12, 0)
	assert.Equal(t, 10.0, x)
}

func TestOnEnterAndExitWithoutRecorder(t *testing.T) {
	p := createTestScene(t, nil)
	assert.NotPanics(t, func() {
		p.OnEnter()
		p.OnExit()
	})
}
