package renderer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/xerrors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("renderer")

// RenderConfig contains rendering configuration
type RenderConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Workers         int   // Row partitions rendered in parallel, NumCPU when 0
	Seed            int64 // Base random seed
	RandomSeed      bool  // Replace Seed with a clock-derived value at render time
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		SamplesPerPixel: 64,
		MaxDepth:        10,
		RandomSeed:      true,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
}

// Raytracer renders a scene by splitting the image into row ranges rendered in parallel
type Raytracer struct {
	scene    Scene
	config   RenderConfig
	progress ProgressFunc
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config RenderConfig) *Raytracer {
	return &Raytracer{scene: scene, config: config}
}

// SetProgressCallback registers a function called after every completed row
func (rt *Raytracer) SetProgressCallback(callback ProgressFunc) {
	rt.progress = callback
}

// rowSeed gives every row its own random stream, so output does not depend on the partitioning
func rowSeed(seed int64, row int) int64 {
	return seed + int64(row)*7919
}

// resolveSeed returns the configured seed, or a clock-derived one when RandomSeed is set
func (rt *Raytracer) resolveSeed() int64 {
	if !rt.config.RandomSeed {
		return rt.config.Seed
	}
	seed := time.Now().UnixNano()
	logger.Infof("using random seed %d", seed)
	return seed
}

// Render traces the whole image and returns the tone-mapped framebuffer
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	if camera == nil || world == nil {
		return nil, RenderStats{}, xerrors.New("scene has no camera or world")
	}
	if rt.config.SamplesPerPixel <= 0 {
		return nil, RenderStats{}, xerrors.Errorf("samples per pixel must be positive, got %d", rt.config.SamplesPerPixel)
	}

	width, height := camera.Config().Width, camera.Config().Height
	seed := rt.resolveSeed()

	ranges := PartitionRows(height, rt.config.Workers)

	tracer := otel.Tracer("go-pathtracer/renderer")
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Raytracer.Render", trace.WithAttributes(
		attribute.Int("width", width),
		attribute.Int("height", height),
		attribute.Int("spp", rt.config.SamplesPerPixel),
		attribute.Int("workers", len(ranges)),
	))
	defer span.End()

	logger.Infof("rendering %dx%d at %d spp, depth %d, %d workers", width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, len(ranges))

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		Seed:            seed,
		TotalSamples:    width * height * rt.config.SamplesPerPixel,
		Partitions:      make([]PartitionStats, len(ranges)),
	}

	progress := NewProgress(height, rt.progress)
	fragments := make([][]uint8, len(ranges))
	start := time.Now()

	err := runWorkers(ranges, func(index int, rows RowRange) error {
		_, rowSpan := tracer.Start(ctx, "Raytracer.renderRows", trace.WithAttributes(
			attribute.Int("row_start", rows.Start),
			attribute.Int("row_end", rows.End),
		))
		defer rowSpan.End()

		workerStart := time.Now()
		fragments[index] = rt.renderRows(camera, world, rows, seed, progress)
		stats.Partitions[index] = PartitionStats{Rows: rows, Duration: time.Since(workerStart)}
		return nil
	})
	if err != nil {
		return nil, stats, xerrors.Errorf("while rendering rows: %w", err)
	}

	// Fragments are contiguous and in row order
	fb := NewFramebuffer(width, height)
	offset := 0
	for _, fragment := range fragments {
		offset += copy(fb.Pixels[offset:], fragment)
	}

	stats.Duration = time.Since(start)
	logger.Infof("render finished in %s", stats.Duration.Round(time.Millisecond))

	return fb, stats, nil
}

// renderRows traces every pixel of rows and returns their 8-bit RGB bytes
func (rt *Raytracer) renderRows(camera *Camera, world geometry.Shape, rows RowRange, seed int64, progress *Progress) []uint8 {
	width := camera.Config().Width
	fragment := make([]uint8, 0, rows.Rows()*width*3)

	for y := rows.Start; y < rows.End; y++ {
		sampler := core.NewSeededSampler(rowSeed(seed, y))
		for x := 0; x < width; x++ {
			r, g, b := ToneMap(rt.pixelRadiance(camera, world, x, y, sampler))
			fragment = append(fragment, r, g, b)
		}
		progress.RowDone()
		logger.Debugf("row %d done", y)
	}

	return fragment
}

// PixelRadiance returns the mean linear radiance of SamplesPerPixel jittered rays through pixel (x, y)
func (rt *Raytracer) PixelRadiance(x, y int, sampler core.Sampler) core.Vec3 {
	return rt.pixelRadiance(rt.scene.GetCamera(), rt.scene.GetWorld(), x, y, sampler)
}

func (rt *Raytracer) pixelRadiance(camera *Camera, world geometry.Shape, x, y int, sampler core.Sampler) core.Vec3 {
	var color core.Vec3
	for s := 0; s < rt.config.SamplesPerPixel; s++ {
		ray := camera.GetRay(x, y, sampler)
		color = color.Add(camera.Raycast(ray, world, rt.config.MaxDepth, sampler))
	}
	return color.Divide(float64(rt.config.SamplesPerPixel))
}
