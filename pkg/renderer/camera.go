package renderer

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Position   core.Vec3 // Camera position
	LookAt     core.Vec3 // Point the camera is looking at
	Up         core.Vec3 // Up direction, (0,1,0) when zero
	VFov       float64   // Vertical field of view in degrees
	Width      int       // Image width in pixels
	Height     int       // Image height in pixels
	Background core.Vec3 // Radiance of rays that escape the scene
}

// Camera generates rays for rendering and estimates their radiance
type Camera struct {
	config      CameraConfig
	pixelCorner core.Vec3 // centre of pixel (0,0), the top-left pixel
	pixelDX     core.Vec3 // step to the next pixel in a row
	pixelDY     core.Vec3 // step to the next row
}

// NewCamera creates a camera, rejecting configurations with no usable view
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, xerrors.Errorf("image size must be positive, got %dx%d", config.Width, config.Height)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, xerrors.Errorf("vertical field of view must be in (0, 180) degrees, got %g", config.VFov)
	}
	if config.Up == (core.Vec3{}) {
		config.Up = core.NewVec3(0, 1, 0)
	}

	view := config.Position.Subtract(config.LookAt)
	if view.NearZero() {
		return nil, xerrors.Errorf("camera position %v and look-at point coincide", config.Position)
	}

	// cz points backwards, cy points down so row 0 is the top of the image
	cz := view.Normalize()
	cx := config.Up.Cross(cz)
	if cx.NearZero() {
		return nil, xerrors.Errorf("up vector %v is parallel to the view direction", config.Up)
	}
	cx = cx.Normalize()
	cy := cx.Cross(cz)

	viewportHeight := 2.0 * math.Tan(config.VFov*math.Pi/180.0/2.0)
	viewportWidth := viewportHeight * float64(config.Width) / float64(config.Height)

	vx := cx.Multiply(viewportWidth)
	vy := cy.Multiply(viewportHeight)
	pixelDX := vx.Divide(float64(config.Width))
	pixelDY := vy.Divide(float64(config.Height))

	viewportCorner := config.Position.Subtract(cz).Subtract(vx.Divide(2)).Subtract(vy.Divide(2))

	return &Camera{
		config:      config,
		pixelCorner: viewportCorner.Add(pixelDX.Divide(2)).Add(pixelDY.Divide(2)),
		pixelDX:     pixelDX,
		pixelDY:     pixelDY,
	}, nil
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Background returns the radiance of escaped rays
func (c *Camera) Background() core.Vec3 {
	return c.config.Background
}

// GetRay returns a normalized ray through a uniformly jittered point of pixel (x, y)
func (c *Camera) GetRay(x, y int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	offset := c.pixelDX.Multiply(jitter.X - 0.5).Add(c.pixelDY.Multiply(jitter.Y - 0.5))

	point := c.pixelCorner.
		Add(c.pixelDX.Multiply(float64(x))).
		Add(c.pixelDY.Multiply(float64(y)))

	direction := point.Subtract(c.config.Position).Add(offset).Normalize()
	return core.NewRay(c.config.Position, direction)
}

// Raycast estimates the radiance arriving along ray, following at most depth bounces
func (c *Camera) Raycast(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return c.config.Background
	}

	hit, isHit := world.Hit(ray, core.RayInterval())
	if !isHit {
		return c.config.Background
	}

	emitted := hit.Emitted()
	if hit.Material == nil {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(c.Raycast(scatter.Scattered, world, depth-1, sampler)))
}
