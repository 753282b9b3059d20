package main

import (
	"log/slog"

	"github.com/younwookim/motion2d/internal/application/replay"
	"github.com/younwookim/motion2d/internal/application/system"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
	"github.com/younwookim/motion2d/internal/infrastructure/level"
	"github.com/younwookim/motion2d/internal/infrastructure/locomotion"
)

// runReplay plays data against a fresh actor at the level spawn, without a
// window, and logs the outcome.
func runReplay(data *replay.ReplayData, cfg *config.ControllerConfig, lv *level.Level, log *slog.Logger) replay.Summary {
	space := level.BuildSpace(lv, cfg.Locomotion.CellSize)
	body := locomotion.NewBody(space, cfg.Locomotion, lv.SpawnX, lv.SpawnY, log)
	ctrl := system.NewController(&cfg.Movement, body, nil, log)

	if data.Stage != "" && data.Stage != lv.Name {
		log.Warn("replay was recorded on another stage", "recorded", data.Stage, "loaded", lv.Name)
	}
	log.Info("replay started", "stage", lv.Name, "frames", len(data.Frames), "dt", data.DT)

	summary := replay.Run(ctrl, replay.NewReplayer(*data), func(res system.FrameResult) {
		if res.Jumped || res.ShapeChanged {
			log.Debug("frame", "n", res.Frame, "jumped", res.Jumped, "shape", res.Shape.Name)
		}
	})

	x, y := body.PixelPosition()
	log.Info("replay finished",
		"frames", summary.Frames,
		"jumps", summary.Jumps,
		"shape_changes", summary.ShapeChanges,
		"grounded_frames", summary.GroundedFrames,
		"invariant_breaks", summary.InvariantBreaks,
		"x", x, "y", y,
		"shape", summary.Final.Shape.Name)
	return summary
}
