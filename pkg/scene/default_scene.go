package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates three small spheres (silver, gold, purple) resting on a large ground sphere
func NewDefaultScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Position:   core.NewVec3(0, 0, 0),
		LookAt:     core.NewVec3(0, 0, -1),
		Up:         core.NewVec3(0, 1, 0),
		VFov:       70,
		Width:      400,
		Height:     400,
		Background: core.NewVec3(0.7, 0.8, 1.0), // Sky
	}

	s := NewScene("default", cameraConfig, renderer.DefaultRenderConfig())

	ground := material.NewLambertian(core.NewVec3(0.98/2, 0.70/2, 0.651/2))
	purple := material.NewLambertian(core.NewVec3(0.54, 0.44, 0.60))
	silver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8))
	gold := material.NewMetal(core.NewVec3(1, 215.0/255.0, 0))

	s.Add(
		geometry.NewSphere(core.NewVec3(-0.21, -0.1, -1), 0.1, silver),
		geometry.NewSphere(core.NewVec3(0, -0.1, -1), 0.1, gold),
		geometry.NewSphere(core.NewVec3(0.21, -0.1, -1), 0.1, purple),
		geometry.NewSphere(core.NewVec3(0, -20.2, -1), 20, ground),
	)

	return s
}
