// Package playing provides the demo scene: one actor driven by the motion
// controller through a stage, with hot-reloadable tuning and input recording.
package playing

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/motion2d/internal/application/replay"
	"github.com/younwookim/motion2d/internal/application/scene"
	"github.com/younwookim/motion2d/internal/application/state"
	"github.com/younwookim/motion2d/internal/application/system"
	"github.com/younwookim/motion2d/internal/domain/motion"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
	"github.com/younwookim/motion2d/internal/infrastructure/level"
	"github.com/younwookim/motion2d/internal/infrastructure/locomotion"
	"github.com/younwookim/motion2d/internal/infrastructure/storage"
)

// fallMargin is how far below the stage the actor may fall before respawning.
const fallMargin = 64

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorWall    = color.RGBA{80, 80, 100, 255}
	colorTrigger = color.RGBA{200, 200, 100, 64}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorNose    = color.RGBA{240, 240, 240, 255}
	colorBox     = color.RGBA{100, 100, 200, 128}
)

// Options configures a Playing scene.
type Options struct {
	Config *config.ControllerConfig
	Level  *level.Level
	Logger *slog.Logger

	// Loader and Reloads enable hot reload: each path received on Reloads
	// triggers Loader.LoadController. Either may be nil.
	Loader  *config.Loader
	Reloads <-chan string

	// Record enables input recording. Recordings go to Store under
	// RecordName when Store is set, otherwise to the file RecordName.
	Record     bool
	RecordName string
	Store      *storage.ReplayStore
}

// Playing is the main gameplay scene
type Playing struct {
	cfg    *config.ControllerConfig
	level  *level.Level
	body   *locomotion.Body
	ctrl   *system.Controller
	input  *system.InputSystem
	params *system.ParamSet
	state  state.GameState
	logger *slog.Logger

	loader  *config.Loader
	reloads <-chan string

	recorder   *replay.Recorder
	recordName string
	store      *storage.ReplayStore

	screenW int
	screenH int

	last     system.FrameResult
	respawns int
	lastZone string
	sprites  map[string]*ebiten.Image
}

// New creates a new Playing scene with the actor at the level's spawn.
func New(opts Options) *Playing {
	cfg := opts.Config
	space := level.BuildSpace(opts.Level, cfg.Locomotion.CellSize)
	body := locomotion.NewBody(space, cfg.Locomotion, opts.Level.SpawnX, opts.Level.SpawnY, opts.Logger)
	params := system.NewParamSet()

	p := &Playing{
		cfg:        cfg,
		level:      opts.Level,
		body:       body,
		ctrl:       system.NewController(&cfg.Movement, body, params, opts.Logger),
		input:      system.NewInputSystem(cfg.Input),
		params:     params,
		state:      state.StatePlaying,
		logger:     opts.Logger,
		loader:     opts.Loader,
		reloads:    opts.Reloads,
		recordName: opts.RecordName,
		store:      opts.Store,
		screenW:    cfg.Display.ScreenWidth,
		screenH:    cfg.Display.ScreenHeight,
		sprites:    make(map[string]*ebiten.Image),
	}

	body.Events().OnTriggerEnter(func(ev motion.TriggerEvent) {
		p.lastZone = string(ev.ColliderID)
	})
	body.Events().OnTriggerExit(func(ev motion.TriggerEvent) {
		if p.lastZone == string(ev.ColliderID) {
			p.lastZone = ""
		}
	})

	if opts.Record {
		if p.recordName == "" {
			p.recordName = replay.GenerateName()
		}
		p.recorder = replay.NewRecorder(opts.Level.Name, cfg.FrameDT())
		p.logger.Info("recording enabled", "name", p.recordName)
	}
	return p
}

// Update proceeds the scene (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.TogglePause()
	}
	if p.state == state.StatePaused {
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.Respawn()
	}

	p.Step(p.input.Sample(dt), dt)
	return nil, nil // nil = stay on this scene
}

// Step records and runs one controller frame of length dt.
func (p *Playing) Step(in motion.FrameInput, dt float64) system.FrameResult {
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.last = p.ctrl.Tick(in, dt)

	if _, y := p.body.PixelPosition(); y > float64(p.level.Height+fallMargin) {
		p.logger.Info("fell out of stage, respawning", "y", y)
		p.Respawn()
	}
	return p.last
}

// Respawn puts the actor back at the level spawn.
func (p *Playing) Respawn() {
	p.body.SetPosition(p.level.SpawnX, p.level.SpawnY)
	p.respawns++
}

// TogglePause switches between playing and paused.
func (p *Playing) TogglePause() {
	if p.state == state.StatePaused {
		p.state = state.StatePlaying
	} else {
		p.state = state.StatePaused
	}
	p.logger.Debug("state changed", "state", p.state)
}

// applyReloads drains pending reload notifications without blocking.
func (p *Playing) applyReloads() {
	if p.reloads == nil || p.loader == nil {
		return
	}
	changed := false
drain:
	for {
		select {
		case path, ok := <-p.reloads:
			if !ok {
				p.reloads = nil
				break drain
			}
			p.logger.Debug("config changed", "path", path)
			changed = true
		default:
			break drain
		}
	}
	if !changed {
		return
	}

	cfg, err := p.loader.LoadController()
	if err != nil {
		p.logger.Warn("config reload failed, keeping current tuning", "error", err)
		return
	}
	p.cfg.Movement = cfg.Movement
	p.cfg.Input = cfg.Input
	p.ctrl.SetMovement(&p.cfg.Movement)
	p.input.SetConfig(p.cfg.Input)
	p.logger.Info("config reloaded",
		"gravity", cfg.Movement.Gravity,
		"run_speed", cfg.Movement.RunSpeed,
		"jump_height", cfg.Movement.JumpHeight)
}

// saveRecording saves the current recording
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	data, err := p.recorder.Marshal()
	if err == nil {
		if p.store != nil {
			err = p.store.Save(p.recordName, data)
		} else {
			err = p.recorder.Save(p.recordName)
		}
	}
	if err != nil {
		p.logger.Error("failed to save recording", "name", p.recordName, "error", err)
		return
	}
	p.logger.Info("recording saved", "name", p.recordName, "frames", p.recorder.FrameCount())
}

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	camX, camY := p.camera()

	for _, r := range p.level.Solids {
		ebitenutil.DrawRect(screen, r.X-camX, r.Y-camY, r.W, r.H, colorWall)
	}
	for _, t := range p.level.Triggers {
		ebitenutil.DrawRect(screen, t.Rect.X-camX, t.Rect.Y-camY, t.Rect.W, t.Rect.H, colorTrigger)
	}

	p.drawActor(screen, camX, camY)
	p.drawHUD(screen)

	if p.state == state.StatePaused {
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
	}
}

func (p *Playing) drawActor(screen *ebiten.Image, camX, camY float64) {
	box := p.body.Box()
	sprite := p.sprite(p.ctrl.Shape(), box.W, box.H)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = SpriteGeoM(p.ctrl.State().Facing, box.X-camX, box.Y-camY, float64(sprite.Bounds().Dx()))
	screen.DrawImage(sprite, op)

	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		ebitenutil.DrawRect(screen, box.X-camX, box.Y-camY, box.W, box.H, colorBox)
	}
}

// sprite returns a placeholder image for preset, drawn facing right with a
// marker on its leading edge.
func (p *Playing) sprite(preset motion.ShapePreset, w, h float64) *ebiten.Image {
	if img, ok := p.sprites[preset.Name]; ok {
		return img
	}
	iw, ih := max(int(w+0.5), 1), max(int(h+0.5), 1)
	img := ebiten.NewImage(iw, ih)
	img.Fill(colorPlayer)
	nose := max(iw/4, 1)
	ebitenutil.DrawRect(img, float64(iw-nose), 2, float64(nose), 3, colorNose)
	p.sprites[preset.Name] = img
	return img
}

// SpriteGeoM places a right-facing sprite of width w at (x, y), mirrored
// about its own vertical axis when facing left. Physics never reads it.
func SpriteGeoM(f motion.Facing, x, y, w float64) ebiten.GeoM {
	var m ebiten.GeoM
	if f == motion.FacingLeft {
		m.Scale(-1, 1)
		m.Translate(w, 0)
	}
	m.Translate(x, y)
	return m
}

func (p *Playing) camera() (float64, float64) {
	x, y := p.body.PixelPosition()
	camX := x - float64(p.screenW)/2
	camY := y - float64(p.screenH)/2
	camX = clamp(camX, 0, float64(p.level.Width-p.screenW))
	camY = clamp(camY, 0, float64(p.level.Height-p.screenH))
	return camX, camY
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	s := p.last.State
	text := fmt.Sprintf("A/D: Move | S: Duck | W/Space: Jump | R: Respawn | ESC: Pause\n"+
		"v=(%.2f, %.2f) %s %s\ngrounded=%t jumping=%t falling=%t ducking=%t\nspeed=%.2f",
		s.Velocity.X, s.Velocity.Y, s.Facing, p.ctrl.Shape().Name,
		s.IsGrounded, s.IsJumping, s.IsFalling, s.IsDucking,
		p.params.Floats[system.ParamSpeed])
	if p.lastZone != "" {
		text += "\nzone: " + p.lastZone
	}
	if p.recorder != nil {
		text += fmt.Sprintf("\nREC %d", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrint(screen, text)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("stage entered", "stage", p.level.Name,
		"solids", len(p.level.Solids), "triggers", len(p.level.Triggers))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// Controller exposes the actor's controller.
func (p *Playing) Controller() *system.Controller {
	return p.ctrl
}

// Body exposes the actor's locomotion body.
func (p *Playing) Body() *locomotion.Body {
	return p.body
}

// State returns the current game state.
func (p *Playing) State() state.GameState {
	return p.state
}

// Recorder returns the active recorder, or nil.
func (p *Playing) Recorder() *replay.Recorder {
	return p.recorder
}

// Respawns returns how many times the actor was respawned.
func (p *Playing) Respawns() int {
	return p.respawns
}

var _ scene.Scene = (*Playing)(nil)
