package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTextureScene shows every texture kind: a checker ground plane, a sphere
// and a triangle with the UV debug texture, and a checkered metal sphere.
func NewTextureScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Position:   core.NewVec3(0, 1.5, 4),
		LookAt:     core.NewVec3(0, 0.6, 0),
		Up:         core.NewVec3(0, 1, 0),
		VFov:       45,
		Width:      480,
		Height:     270,
		Background: core.NewVec3(0.7, 0.8, 1.0),
	}

	s := NewScene("textures", cameraConfig, renderer.DefaultRenderConfig())

	checker := material.NewCheckerTexture(4,
		core.NewVec3(0.9, 0.9, 0.9), // White
		core.NewVec3(0.2, 0.2, 0.8), // Blue
	)
	uvDebug := material.NewUVDebugTexture(64, 64)
	brick := material.NewCheckerTexture(16,
		core.NewVec3(0.7, 0.3, 0.1),  // Orange
		core.NewVec3(0.5, 0.2, 0.05), // Dark brown
	)

	uvDebugMat := material.NewTexturedLambertian(uvDebug)

	s.Add(
		geometry.NewPlane(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 0),
			material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(-1.3, 0.6, 0), 0.6, uvDebugMat),
		geometry.NewSphere(core.NewVec3(0, 0.6, -0.5), 0.6, material.NewFuzzyMetal(brick, 0.2)),
		geometry.NewTriangleUV(
			core.NewVec3(0.8, 0, 0.3),
			core.NewVec3(2.0, 0, 0.3),
			core.NewVec3(1.4, 1.3, 0.3),
			core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0.5, 1),
			uvDebugMat,
		),
	)

	return s
}
