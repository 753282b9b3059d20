package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/motion2d/internal/application/game"
	"github.com/younwookim/motion2d/internal/application/replay"
	"github.com/younwookim/motion2d/internal/application/scene/playing"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
	"github.com/younwookim/motion2d/internal/infrastructure/level"
	"github.com/younwookim/motion2d/internal/infrastructure/logger"
	"github.com/younwookim/motion2d/internal/infrastructure/storage"
)

//go:embed configs
var configFS embed.FS

const appName = "motion2d"

type options struct {
	configDir  string
	stage      string
	tmx        string
	record     bool
	recordName string
	useStore   bool
	replay     string
}

func main() {
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "Config directory on disk; enables hot reload (default: embedded configs)")
	flag.StringVar(&opts.stage, "stage", "demo", "Stage name under configs/stages")
	flag.StringVar(&opts.tmx, "tmx", "", "Load the stage from a Tiled .tmx file instead")
	flag.BoolVar(&opts.record, "record", false, "Record input for replay")
	flag.StringVar(&opts.recordName, "record-name", "", "Recording file (or store name with -store)")
	flag.BoolVar(&opts.useStore, "store", false, "Keep recordings in the user save directory")
	flag.StringVar(&opts.replay, "replay", "", "Play a recording headless and exit (file, or store name with -store)")
	flag.Parse()

	if err := run(opts); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	loader, err := newLoader(opts.configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadController()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	lv, err := loadLevel(loader, opts)
	if err != nil {
		return err
	}

	var store *storage.ReplayStore
	if opts.useStore {
		if store, err = storage.Open(appName, log); err != nil {
			return err
		}
	}

	if opts.replay != "" {
		data, err := readReplay(opts.replay, store)
		if err != nil {
			return err
		}
		summary := runReplay(data, cfg, lv, log)
		if summary.InvariantBreaks > 0 {
			return fmt.Errorf("replay %s: %d frames broke the motion state invariant", opts.replay, summary.InvariantBreaks)
		}
		return nil
	}

	sceneOpts := playing.Options{
		Config:     cfg,
		Level:      lv,
		Logger:     log,
		Record:     opts.record,
		RecordName: opts.recordName,
		Store:      store,
	}
	if opts.configDir != "" {
		w, err := config.NewWatcher(opts.configDir)
		if err != nil {
			log.Warn("hot reload disabled", "error", err)
		} else {
			defer func() { _ = w.Close() }()
			sceneOpts.Loader = loader
			sceneOpts.Reloads = w.Events
			log.Info("watching config", "dir", opts.configDir)
		}
	}

	g := game.New(playing.New(sceneOpts), cfg.Display)
	defer g.Shutdown()

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("motion2d")
	ebiten.SetTPS(cfg.Display.Framerate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// newLoader reads from dir when set, otherwise from the embedded configs.
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func loadLevel(loader *config.Loader, opts options) (*level.Level, error) {
	if opts.tmx != "" {
		return level.LoadTMX(os.DirFS(filepath.Dir(opts.tmx)), filepath.Base(opts.tmx))
	}
	stage, err := loader.LoadStage(opts.stage)
	if err != nil {
		return nil, err
	}
	return level.FromStage(stage)
}

func readReplay(name string, store *storage.ReplayStore) (*replay.ReplayData, error) {
	if store == nil {
		return replay.LoadReplay(name)
	}
	b, err := store.Load(name)
	if err != nil {
		return nil, err
	}
	return replay.Decode(b)
}
