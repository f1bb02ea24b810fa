package scene

import (
	"math/rand"

	"golang.org/x/xerrors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	CameraConfig renderer.CameraConfig
	Camera       *renderer.Camera
	Render       renderer.RenderConfig
	Shapes       []geometry.Shape // Objects in the scene
	Accelerate   bool             // Wrap the shapes in a BVH instead of a flat list
	BVHSeed      int64            // Seed for the random split axes of every BVH in the scene
	World        geometry.Shape   // Built by Preprocess
}

// NewScene creates an empty scene with BVH acceleration enabled
func NewScene(name string, cameraConfig renderer.CameraConfig, render renderer.RenderConfig) *Scene {
	return &Scene{
		Name:         name,
		CameraConfig: cameraConfig,
		Render:       render,
		Accelerate:   true,
		BVHSeed:      1,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// BVHRandom returns the random source used for BVH construction
func (s *Scene) BVHRandom() *rand.Rand {
	return rand.New(rand.NewSource(s.BVHSeed))
}

// Preprocess builds the camera and the world. It must be called again after
// the shapes or the camera configuration change.
func (s *Scene) Preprocess() error {
	camera, err := renderer.NewCamera(s.CameraConfig)
	if err != nil {
		return xerrors.Errorf("while building camera for scene %q: %w", s.Name, err)
	}
	s.Camera = camera

	if s.Accelerate {
		s.World = geometry.NewBVH(s.Shapes, s.BVHRandom())
	} else {
		s.World = geometry.NewHittableList(s.Shapes...)
	}

	logger.Infof("scene %q: %d shapes, %d primitives, bvh=%t", s.Name, len(s.Shapes), s.GetPrimitiveCount(), s.Accelerate)
	return nil
}

// Resize changes the image size and rebuilds the camera
func (s *Scene) Resize(width, height int) error {
	s.CameraConfig.Width = width
	s.CameraConfig.Height = height
	camera, err := renderer.NewCamera(s.CameraConfig)
	if err != nil {
		return xerrors.Errorf("while resizing scene %q: %w", s.Name, err)
	}
	s.Camera = camera
	return nil
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the shape every camera ray is traced against
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// BoundingBox returns the bounds of every shape in the scene
func (s *Scene) BoundingBox() core.AABB {
	box := core.EmptyAABB
	for _, shape := range s.Shapes {
		box = box.Union(shape.BoundingBox())
	}
	return box
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, handling complex objects
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.TriangleMesh:
		return obj.TriangleCount()
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Shapes {
			count += countPrimitivesInShape(child)
		}
		return count
	default:
		return 1
	}
}
