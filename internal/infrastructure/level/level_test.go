package level

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
)

func TestLoadTMX(t *testing.T) {
	lv, err := LoadTMX(os.DirFS("testdata"), "room.tmx")
	require.NoError(t, err)

	assert.Equal(t, "room", lv.Name)
	assert.Equal(t, 128, lv.Width)
	assert.Equal(t, 80, lv.Height)
	assert.Equal(t, 16, lv.TileSize)

	// 8 + 8 border rows, 3 * 2 side walls, 2 floating tiles.
	assert.Len(t, lv.Solids, 24)
	assert.Contains(t, lv.Solids, Rect{X: 64, Y: 32, W: 16, H: 16})
	assert.NotContains(t, lv.Solids, Rect{X: 16, Y: 16, W: 16, H: 16})

	require.Len(t, lv.Triggers, 1)
	assert.Equal(t, Trigger{Name: "door", Rect: Rect{X: 96, Y: 48, W: 16, H: 16}}, lv.Triggers[0])

	assert.Equal(t, 32.0, lv.SpawnX)
	assert.Equal(t, 64.0, lv.SpawnY)
}

func TestLoadTMX_Missing(t *testing.T) {
	_, err := LoadTMX(os.DirFS("testdata"), "nope.tmx")
	assert.Error(t, err)
}

func TestFromStage(t *testing.T) {
	cfg := &config.StageConfig{
		ID:          "tiny",
		Size:        config.StageSizeConfig{Width: 64, Height: 48, TileSize: 16},
		PlayerSpawn: config.PositionConfig{X: 24, Y: 32},
		Layers: config.LayersConfig{Collision: []string{
			"####",
			"#  x#",
			"#####",
		}},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "wall", Solid: true},
			"x": {Type: "decor", Solid: false},
		},
		Triggers: []config.TriggerConfig{
			{Name: "goal", Rect: config.RectConfig{X: 32, Y: 16, W: 16, H: 16}},
		},
	}

	lv, err := FromStage(cfg)
	require.NoError(t, err)

	assert.Equal(t, "tiny", lv.Name)
	assert.Len(t, lv.Solids, 4+1+4)
	assert.NotContains(t, lv.Solids, Rect{X: 48, Y: 16, W: 16, H: 16}, "non-solid mapping")
	assert.NotContains(t, lv.Solids, Rect{X: 64, Y: 32, W: 16, H: 16}, "beyond the stage width")
	assert.Equal(t, []Trigger{{Name: "goal", Rect: Rect{X: 32, Y: 16, W: 16, H: 16}}}, lv.Triggers)
	assert.Equal(t, 24.0, lv.SpawnX)
	assert.Equal(t, 32.0, lv.SpawnY)
}

func TestFromStage_BadTileSize(t *testing.T) {
	_, err := FromStage(&config.StageConfig{ID: "x"})
	assert.Error(t, err)
}

func TestBuildSpace(t *testing.T) {
	lv := &Level{
		Width: 64, Height: 64, TileSize: 16,
		Solids:   []Rect{{X: 0, Y: 48, W: 16, H: 16}, {X: 16, Y: 48, W: 16, H: 16}},
		Triggers: []Trigger{{Name: "zone", Rect: Rect{X: 32, Y: 32, W: 16, H: 16}}},
	}

	space := BuildSpace(lv, 0)

	objs := space.Objects()
	require.Len(t, objs, 3)

	var solids, triggers int
	for _, o := range objs {
		switch {
		case o.HasTags(TagSolid):
			solids++
		case o.HasTags(TagTrigger):
			triggers++
			assert.Equal(t, "zone", o.Data)
		}
	}
	assert.Equal(t, 2, solids)
	assert.Equal(t, 1, triggers)
}

func TestLoadDemoStage(t *testing.T) {
	loader := config.NewLoader("../../../cmd/game/configs")
	stage, err := loader.LoadStage("demo")
	require.NoError(t, err)

	lv, err := FromStage(stage)
	require.NoError(t, err)
	assert.Equal(t, 640, lv.Width)
	assert.NotEmpty(t, lv.Solids)
	assert.Len(t, lv.Triggers, 2)
}
