package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cubed LMS
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b
	lc, mc, sc = lc*lc*lc, mc*mc*mc, sc*sc*sc

	// LMS to linear RGB
	return core.NewVec3(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
	).Clamp(0, 1)
}

// NewSphereGridScene creates a gridSize x gridSize grid of metal spheres on a
// ground plane, lit by one large emissive sphere. Hue varies along x and chroma along z.
func NewSphereGridScene(gridSize int) *Scene {
	cameraConfig := renderer.CameraConfig{
		Position:   core.NewVec3(4.5, 6, 18),
		LookAt:     core.NewVec3(4.5, 0.8, 4.5),
		Up:         core.NewVec3(0, 1, 0),
		VFov:       40,
		Width:      640,
		Height:     360,
		Background: core.NewVec3(0.25, 0.3, 0.4),
	}

	s := NewScene("spheregrid", cameraConfig, renderer.DefaultRenderConfig())

	// Sun
	s.Add(geometry.NewSphere(core.NewVec3(20, 25, 20), 8, material.NewDiffuseLight(core.NewVec3(6, 5.75, 5))))

	s.Add(geometry.NewPlane(
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 0, 0),
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	))

	// Fit the grid into a 9x9 area centred on x=z=4.5
	targetArea := 9.0
	spacing := targetArea / float64(max(1, gridSize-1))
	sphereRadius := max(0.02, min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := float64(i) / float64(max(1, gridSize-1)) * 360.0
			chroma := minChroma + float64(j)/float64(max(1, gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			fuzz := 0.05 * float64((i+j)%3)
			metal := material.NewFuzzyMetal(material.NewSolidColor(oklchToRGB(lightness, chroma, hue)), fuzz)

			s.Add(geometry.NewSphere(core.NewVec3(x, sphereRadius, z), sphereRadius, metal))
		}
	}

	return s
}
