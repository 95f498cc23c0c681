package pendulum

import (
	"log"
	"os"

	"github.com/pkg/errors"
)

// maxScriptFrames bounds a render that runs until its script finishes.
const maxScriptFrames = 1 << 20

// RenderConfig configures a headless render.
type RenderConfig struct {
	Width  int
	Height int
	// Frames is the number of Update/Draw cycles to run. Zero runs until
	// the scene's script is done.
	Frames int
	// Delta is the wall-clock seconds per frame. Defaults to 1/60.
	Delta float64

	// PNGPath, when set, receives the final raster image.
	PNGPath string
	// SVGPath, when set, receives every segment drawn as vector lines.
	SVGPath string
	// MaxSVGSegments caps the SVG document; older segments are dropped
	// first. Zero keeps everything.
	MaxSVGSegments int
}

// RenderStats summarizes a finished headless render.
type RenderStats struct {
	Frames      int
	Segments    int
	Elapsed     float64
	Screenshots []string
}

// Render runs scene for a fixed number of frames at a fixed delta without a
// window and writes the requested outputs. Screenshots queued by the
// scene's script are taken from the raster image.
func Render(scene *Scene, cfg RenderConfig) (RenderStats, error) {
	var stats RenderStats
	if scene == nil {
		return stats, errors.New("render: nil scene")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return stats, errors.Errorf("render: size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.Frames < 0 {
		return stats, errors.Errorf("render: frames %d must be >= 0", cfg.Frames)
	}
	if cfg.Frames == 0 && scene.script == nil {
		return stats, errors.New("render: frames must be set when no script is attached")
	}
	if cfg.Delta < 0 {
		return stats, errors.Errorf("render: delta %v must be >= 0", cfg.Delta)
	}
	if cfg.Delta == 0 {
		cfg.Delta = 1.0 / 60
	}

	var sinks MultiSink
	var raster *RasterSink
	if cfg.PNGPath != "" || scene.script != nil {
		raster = NewRasterSink(cfg.Width, cfg.Height)
		sinks = append(sinks, raster)
	}
	var vec *SVGSink
	if cfg.SVGPath != "" {
		vec = NewSVGSink(cfg.Width, cfg.Height)
		vec.MaxSegments = cfg.MaxSVGSegments
		sinks = append(sinks, vec)
	}
	if len(sinks) == 0 {
		sinks = append(sinks, &RecordingSink{})
	}

	// A fresh surface starts without trails from earlier frames.
	scene.Clear()

	frames := cfg.Frames
	if frames == 0 {
		frames = maxScriptFrames
	}
	for i := 0; i < frames; i++ {
		scene.Update(cfg.Delta)
		stats.Segments += scene.Draw(sinks)
		stats.Frames++
		if raster != nil {
			stats.Screenshots = append(stats.Screenshots, scene.FlushScreenshots(raster.Image())...)
		}
		if cfg.Frames == 0 && scene.script.Done() && scene.PendingScreenshots() == 0 {
			break
		}
	}
	if cfg.Frames == 0 && !scene.script.Done() {
		log.Printf("pendulum: render: script not done after %d frames", stats.Frames)
	}
	stats.Elapsed = scene.Elapsed()

	if cfg.PNGPath != "" {
		if err := raster.SavePNG(cfg.PNGPath); err != nil {
			return stats, errors.Wrap(err, "render")
		}
	}
	if vec != nil {
		if err := writeSVG(cfg.SVGPath, vec); err != nil {
			return stats, errors.Wrap(err, "render")
		}
	}
	return stats, nil
}

func writeSVG(path string, s *SVGSink) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}
