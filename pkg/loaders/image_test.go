package loaders

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// testImage is a 2x2 image: white, red on top; green, blue below
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

func TestSaveAndLoadImage(t *testing.T) {
	expected := []core.Vec3{
		core.NewVec3(1, 1, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	}

	for _, name := range []string{"test.png", "test.bmp", "test.tiff", "TEST.TIF"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := SaveImage(path, testImage()); err != nil {
				t.Fatalf("SaveImage failed: %v", err)
			}

			imageData, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			if imageData.Width != 2 || imageData.Height != 2 {
				t.Fatalf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
			}
			if len(imageData.Pixels) != 4 {
				t.Fatalf("Expected 4 pixels, got %d", len(imageData.Pixels))
			}
			for i, want := range expected {
				if imageData.Pixels[i].Subtract(want).Length() > 0.01 {
					t.Errorf("Pixel %d: expected %v, got %v", i, want, imageData.Pixels[i])
				}
			}
		})
	}
}

func TestSaveImageUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := SaveImage(path, testImage()); err == nil {
		t.Error("Expected error for .gif output, got nil")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no file to be created for an unsupported format")
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, err := LoadImage("nonexistent.png"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(garbage); err == nil {
		t.Error("Expected error for undecodable file, got nil")
	}
}

func TestLoadImageIsLinearScale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 51})

	path := filepath.Join(t.TempDir(), "gray.png")
	if err := SaveImage(path, img); err != nil {
		t.Fatal(err)
	}
	imageData, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := imageData.Pixels[0].X; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Expected 0.2, got %f", got)
	}
}
