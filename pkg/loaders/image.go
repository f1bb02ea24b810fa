package loaders

import (
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/xerrors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("loaders")

// ImageData contains loaded image data as Vec3 color array, row 0 at the top
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage decodes a PNG, JPEG, BMP or TIFF file into linear [0,1] colors
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, xerrors.Errorf("while opening image %q: %w", filename, err)
	}
	defer file.Close()

	// Format is detected from the file header
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, xerrors.Errorf("while decoding image %q: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	logger.Debugf("loaded %s image %s (%dx%d)", format, filename, width, height)

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// SaveImage encodes img to filename, picking PNG, BMP or TIFF from the extension
func SaveImage(filename string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".bmp", ".tif", ".tiff":
	default:
		return xerrors.Errorf("unsupported output format %q; use .png, .bmp or .tiff", ext)
	}

	file, err := os.Create(filename)
	if err != nil {
		return xerrors.Errorf("while creating %q: %w", filename, err)
	}

	switch ext {
	case ".png":
		err = png.Encode(file, img)
	case ".bmp":
		err = bmp.Encode(file, img)
	default:
		err = tiff.Encode(file, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		file.Close()
		return xerrors.Errorf("while encoding %q: %w", filename, err)
	}
	if err = file.Close(); err != nil {
		return xerrors.Errorf("while closing %q: %w", filename, err)
	}

	logger.Infof("wrote %s", filename)
	return nil
}
