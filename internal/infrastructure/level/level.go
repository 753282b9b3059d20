// Package level turns stage descriptions (JSON stage configs or Tiled maps)
// into collision geometry and builds the resolv space the body moves in.
//
// All coordinates are pixels with y growing downward, as both Tiled and
// resolv use them.
package level

import (
	"fmt"

	"github.com/solarlune/resolv"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
)

// Tags attached to the objects BuildSpace creates.
const (
	TagSolid   = "solid"
	TagTrigger = "trigger"
)

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Trigger is a named non-solid volume.
type Trigger struct {
	Name string
	Rect Rect
}

// Level is the static geometry of one stage.
type Level struct {
	Name     string
	Width    int // pixels
	Height   int // pixels
	TileSize int
	Solids   []Rect
	Triggers []Trigger
	SpawnX   float64
	SpawnY   float64 // feet
}

// FromStage converts a JSON stage config. Rows of the collision layer are
// read left to right; characters without a solid mapping are empty.
func FromStage(cfg *config.StageConfig) (*Level, error) {
	ts := cfg.Size.TileSize
	if ts <= 0 {
		return nil, fmt.Errorf("stage %s: tileSize must be positive, got %d", cfg.ID, ts)
	}
	cols := cfg.Size.Width / ts

	lv := &Level{
		Name:     cfg.ID,
		Width:    cfg.Size.Width,
		Height:   cfg.Size.Height,
		TileSize: ts,
		SpawnX:   float64(cfg.PlayerSpawn.X),
		SpawnY:   float64(cfg.PlayerSpawn.Y),
	}

	size := float64(ts)
	for y, row := range cfg.Layers.Collision {
		for x, ch := range row {
			if x >= cols {
				break
			}
			mapping, ok := cfg.TileMapping[string(ch)]
			if !ok || !mapping.Solid {
				continue
			}
			lv.Solids = append(lv.Solids, Rect{
				X: float64(x) * size,
				Y: float64(y) * size,
				W: size,
				H: size,
			})
		}
	}

	for _, t := range cfg.Triggers {
		lv.Triggers = append(lv.Triggers, Trigger{
			Name: t.Name,
			Rect: Rect{X: float64(t.Rect.X), Y: float64(t.Rect.Y), W: float64(t.Rect.W), H: float64(t.Rect.H)},
		})
	}
	return lv, nil
}

// BuildSpace creates a resolv space holding one object per solid tile and
// trigger. Object Data carries the collider name reported in contact events.
func BuildSpace(lv *Level, cellSize int) *resolv.Space {
	if cellSize <= 0 {
		cellSize = lv.TileSize
	}
	space := resolv.NewSpace(lv.Width, lv.Height, cellSize, cellSize)

	for i, r := range lv.Solids {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, TagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		obj.Data = fmt.Sprintf("solid_%d", i)
		space.Add(obj)
	}
	for _, t := range lv.Triggers {
		obj := resolv.NewObject(t.Rect.X, t.Rect.Y, t.Rect.W, t.Rect.H, TagTrigger)
		obj.SetShape(resolv.NewRectangle(0, 0, t.Rect.W, t.Rect.H))
		obj.Data = t.Name
		space.Add(obj)
	}
	return space
}
