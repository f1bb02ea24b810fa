package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTriangleMeshScene creates a box, a pyramid and an icosahedron, each a
// triangle mesh with its own BVH, lit by an overhead emissive sphere.
func NewTriangleMeshScene() (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Position:   core.NewVec3(0, 2, 6),
		LookAt:     core.NewVec3(0, 1, 0),
		Up:         core.NewVec3(0, 1, 0),
		VFov:       45,
		Width:      640,
		Height:     360,
		Background: core.NewVec3(0.15, 0.15, 0.2),
	}

	s := NewScene("trianglemesh", cameraConfig, renderer.DefaultRenderConfig())
	random := s.BVHRandom()

	s.Add(
		geometry.NewSphere(core.NewVec3(2, 6, 3), 1.5, material.NewDiffuseLight(core.NewVec3(6, 5.5, 5))),
		geometry.NewPlane(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 0),
			material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7))),
	)

	meshes := []struct {
		data   *geometry.MeshData
		mat    material.Material
		offset core.Vec3
	}{
		{boxMesh(core.NewVec3(1, 1, 1)), material.NewFuzzyMetal(material.NewSolidColor(core.NewVec3(0.8, 0.2, 0.2)), 0.1), core.NewVec3(-2, 0.5, 0)},
		{pyramidMesh(1.5, 2.0), material.NewLambertian(core.NewVec3(0.2, 0.3, 0.8)), core.NewVec3(0, 1, 0)},
		{icosahedronMesh(0.8), material.NewFuzzyMetal(material.NewSolidColor(core.NewVec3(0.8, 0.6, 0.2)), 0.05), core.NewVec3(2, 0.8, 0)},
	}
	for _, m := range meshes {
		mesh, err := geometry.NewTriangleMesh(m.data, m.mat, m.offset, random)
		if err != nil {
			return nil, err
		}
		s.Add(mesh)
	}

	return s, nil
}

// newMeshData flattens vertices into a MeshData
func newMeshData(vertices []core.Vec3, faces []int) *geometry.MeshData {
	positions := make([]float64, 0, len(vertices)*3)
	for _, v := range vertices {
		positions = append(positions, v.X, v.Y, v.Z)
	}
	return &geometry.MeshData{Positions: positions, Indices: faces}
}

// boxMesh creates an axis-aligned box centred on the origin
func boxMesh(size core.Vec3) *geometry.MeshData {
	h := size.Multiply(0.5)
	vertices := []core.Vec3{
		core.NewVec3(-h.X, -h.Y, -h.Z), // 0: left-bottom-back
		core.NewVec3(+h.X, -h.Y, -h.Z), // 1: right-bottom-back
		core.NewVec3(+h.X, +h.Y, -h.Z), // 2: right-top-back
		core.NewVec3(-h.X, +h.Y, -h.Z), // 3: left-top-back
		core.NewVec3(-h.X, -h.Y, +h.Z), // 4: left-bottom-front
		core.NewVec3(+h.X, -h.Y, +h.Z), // 5: right-bottom-front
		core.NewVec3(+h.X, +h.Y, +h.Z), // 6: right-top-front
		core.NewVec3(-h.X, +h.Y, +h.Z), // 7: left-top-front
	}

	// Counter-clockwise seen from outside, 2 per face
	faces := []int{
		0, 2, 1, 0, 3, 2, // back (Z-)
		4, 5, 6, 4, 6, 7, // front (Z+)
		0, 4, 7, 0, 7, 3, // left (X-)
		1, 2, 6, 1, 6, 5, // right (X+)
		0, 1, 5, 0, 5, 4, // bottom (Y-)
		3, 7, 6, 3, 6, 2, // top (Y+)
	}
	return newMeshData(vertices, faces)
}

// pyramidMesh creates a square pyramid centred on the origin
func pyramidMesh(baseSize, height float64) *geometry.MeshData {
	b := baseSize * 0.5
	h := height * 0.5
	vertices := []core.Vec3{
		core.NewVec3(-b, -h, -b), // 0: left-back
		core.NewVec3(+b, -h, -b), // 1: right-back
		core.NewVec3(+b, -h, +b), // 2: right-front
		core.NewVec3(-b, -h, +b), // 3: left-front
		core.NewVec3(0, +h, 0),   // 4: apex
	}

	faces := []int{
		0, 1, 2, 0, 2, 3, // base
		1, 0, 4, // back
		2, 1, 4, // right
		3, 2, 4, // front
		0, 3, 4, // left
	}
	return newMeshData(vertices, faces)
}

// icosahedronMesh creates a regular icosahedron centred on the origin
func icosahedronMesh(radius float64) *geometry.MeshData {
	phi := (1 + math.Sqrt(5)) / 2
	scale := radius / math.Sqrt(1+phi*phi)

	vertices := []core.Vec3{
		core.NewVec3(-1, phi, 0), core.NewVec3(1, phi, 0), core.NewVec3(-1, -phi, 0), core.NewVec3(1, -phi, 0),
		core.NewVec3(0, -1, phi), core.NewVec3(0, 1, phi), core.NewVec3(0, -1, -phi), core.NewVec3(0, 1, -phi),
		core.NewVec3(phi, 0, -1), core.NewVec3(phi, 0, 1), core.NewVec3(-phi, 0, -1), core.NewVec3(-phi, 0, 1),
	}
	for i := range vertices {
		vertices[i] = vertices[i].Multiply(scale)
	}

	faces := []int{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
	return newMeshData(vertices, faces)
}
