package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/term"
	"golang.org/x/xerrors"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderFlags are the flags accepted by the render command
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene id, scene file path or name of a scene file in --scenes-dir",
	},
	cli.StringFlag{
		Name:  "scenes-dir",
		Value: "scenes",
		Usage: "directory searched for scene files",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width (default: from scene)",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height (default: from scene)",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel (default: from scene)",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum ray bounces (default: from scene)",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "parallel row partitions; 0 uses every CPU",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed for a reproducible render; picked from the clock when omitted",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "render.png",
		Usage: "output image; .png, .bmp or .tiff",
	},
}

// RenderScene renders a still frame and writes it to disk.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	s, err := scene.Load(ctx.String("scene"), ctx.String("scenes-dir"))
	if err != nil {
		return err
	}

	if ctx.IsSet("width") || ctx.IsSet("height") {
		current := s.GetCamera().Config()
		width, height := current.Width, current.Height
		if ctx.IsSet("width") {
			width = ctx.Int("width")
		}
		if ctx.IsSet("height") {
			height = ctx.Int("height")
		}
		if err := s.Resize(width, height); err != nil {
			return err
		}
	}

	config := s.Render
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		config.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("workers") {
		config.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("seed") {
		config.Seed = ctx.Int64("seed")
		config.RandomSeed = false
	}
	if config.Workers < 0 {
		return xerrors.Errorf("workers must not be negative, got %d", config.Workers)
	}

	rt := renderer.NewRaytracer(s, config)
	rt.SetProgressCallback(newProgressReporter(os.Stderr))

	fb, stats, err := rt.Render(context.Background())
	if err != nil {
		return err
	}

	if err := loaders.SaveImage(ctx.String("out"), fb.ToImage()); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("wrote %s (seed %d, mean luminance %.3f)", ctx.String("out"), stats.Seed, fb.AverageLuminance())
	return nil
}

// newProgressReporter redraws a single status line when out is a terminal and
// logs every 10% otherwise.
func newProgressReporter(out *os.File) renderer.ProgressFunc {
	if term.IsTerminal(int(out.Fd())) {
		return terminalProgress(out)
	}
	return func(completed, total int) {
		step := max(1, total/10)
		if completed%step == 0 || completed == total {
			logger.Infof("rendered %d/%d rows", completed, total)
		}
	}
}

func terminalProgress(w io.Writer) renderer.ProgressFunc {
	return func(completed, total int) {
		fmt.Fprintf(w, "\rrendering %3d%% (%d/%d rows)", completed*100/max(1, total), completed, total)
		if completed == total {
			fmt.Fprintln(w)
		}
	}
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Noticef("render statistics\n%s", buf.String())
}
