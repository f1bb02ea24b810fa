package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the nearest pixel. UVs outside [0,1] wrap around, v=0 is the bottom row.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}

	x := wrap(int(math.Round(uv.X*float64(t.Width-1))), t.Width)
	y := wrap(int(math.Round(uv.Y*float64(t.Height-1))), t.Height)

	return t.Pixels[(t.Height-1-y)*t.Width+x]
}

// wrap is the Euclidean remainder of i by n
func wrap(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}
