package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Controller config file names, in lookup order.
const (
	ControllerJSON = "controller.json"
	ControllerYAML = "controller.yaml"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Controller *ControllerConfig
	Stage      *StageConfig
}

// Loader loads configuration from JSON or YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from.
func (l *Loader) BasePath() string {
	return l.basePath
}

// FS returns the filesystem the loader reads from.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadController loads controller.json, falling back to controller.yaml.
// Fields missing from the file keep their Default() values.
func (l *Loader) LoadController() (*ControllerConfig, error) {
	cfg := Default()

	data, err := fs.ReadFile(l.fsys, ControllerJSON)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ControllerJSON, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		data, err = fs.ReadFile(l.fsys, ControllerYAML)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s or %s: %w", ControllerJSON, ControllerYAML, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ControllerYAML, err)
		}
	default:
		return nil, fmt.Errorf("failed to read %s: %w", ControllerJSON, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid controller config: %w", err)
	}
	return cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	p := path.Join("stages", name+".json")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads the controller config and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	controller, err := l.LoadController()
	if err != nil {
		return nil, err
	}

	stageCfg, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Controller: controller,
		Stage:      stageCfg,
	}, nil
}
