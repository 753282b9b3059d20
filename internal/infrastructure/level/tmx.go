package level

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from Tiled maps.
const (
	TMXCollisionLayer = "collision"
	TMXTriggerGroup   = "triggers"
	TMXSpawnGroup     = "spawn"
)

// LoadTMX parses a Tiled map from fsys. Every non-empty tile on the collision
// layer is solid, rectangles in the triggers group become triggers named
// after the object, and the first object of the spawn group sets the spawn
// (its bottom edge is the feet position).
func LoadTMX(fsys fs.FS, path string) (*Level, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	lv := &Level{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Width:    m.Width * m.TileWidth,
		Height:   m.Height * m.TileHeight,
		TileSize: m.TileWidth,
	}

	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)
	found := false
	for _, layer := range m.Layers {
		if layer.Name != TMXCollisionLayer {
			continue
		}
		found = true
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				tile := layer.Tiles[y*m.Width+x]
				if tile.IsNil() {
					continue
				}
				lv.Solids = append(lv.Solids, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("TMX %s: no %q tile layer", path, TMXCollisionLayer)
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case TMXTriggerGroup:
			for _, o := range og.Objects {
				name := o.Name
				if name == "" {
					name = fmt.Sprintf("trigger_%d", o.ID)
				}
				lv.Triggers = append(lv.Triggers, Trigger{
					Name: name,
					Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
				})
			}
		case TMXSpawnGroup:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				lv.SpawnX = o.X + o.Width/2
				lv.SpawnY = o.Y + o.Height
			}
		}
	}

	return lv, nil
}
