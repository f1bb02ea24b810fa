package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture alternates between two colors on a grid in UV space
type CheckerTexture struct {
	Scale float64
	Even  core.Vec3
	Odd   core.Vec3
}

// NewCheckerTexture creates a checkerboard with scale cells per UV unit
func NewCheckerTexture(scale float64, even, odd core.Vec3) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Even: even, Odd: odd}
}

// Evaluate returns Even when the rounded cell indices sum to an even number
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	ix := int64(math.Round(uv.X * c.Scale))
	iy := int64(math.Round(uv.Y * c.Scale))
	if (ix+iy)%2 == 0 {
		return c.Even
	}
	return c.Odd
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width-1)
			v := float64(height-1-y) / float64(height-1)
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}
