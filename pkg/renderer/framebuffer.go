package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Framebuffer holds the final 8-bit RGB image, row-major with row 0 at the top
type Framebuffer struct {
	Width  int
	Height int
	Pixels []uint8 // 3 bytes per pixel
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint8, width*height*3),
	}
}

// At returns the RGB bytes of pixel (x, y)
func (fb *Framebuffer) At(x, y int) (r, g, b uint8) {
	i := (y*fb.Width + x) * 3
	return fb.Pixels[i], fb.Pixels[i+1], fb.Pixels[i+2]
}

// ToImage converts the framebuffer to a standard library image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// ToneMap converts linear radiance to 8-bit channels, saturating values above 1
func ToneMap(c core.Vec3) (r, g, b uint8) {
	return toneMapChannel(c.X), toneMapChannel(c.Y), toneMapChannel(c.Z)
}

func toneMapChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(core.UnitInterval.Clamp(v) * 255)
}

// AverageLuminance returns the mean Rec. 709 luminance of the image in [0, 1]
func (fb *Framebuffer) AverageLuminance() float64 {
	n := fb.Width * fb.Height
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i+2 < len(fb.Pixels); i += 3 {
		sum += 0.2126*float64(fb.Pixels[i]) + 0.7152*float64(fb.Pixels[i+1]) + 0.0722*float64(fb.Pixels[i+2])
	}
	return sum / 255 / float64(n)
}
