package geometry

import (
	"math/rand"

	"golang.org/x/xerrors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MeshData holds a triangulated mesh as parallel flat arrays
type MeshData struct {
	Positions       []float64 // 3 per vertex
	Indices         []int     // 3 per face, into Positions
	TexcoordIndices []int     // 3 per face, into Texcoords; may be empty
	Texcoords       []float64 // 2 per texture vertex
}

// FaceCount returns the number of triangles in the mesh
func (m *MeshData) FaceCount() int {
	return len(m.Indices) / 3
}

// TriangleMesh represents a collection of triangles with efficient ray intersection
// It uses an internal BVH (Bounding Volume Hierarchy) for fast intersection tests
type TriangleMesh struct {
	triangles []Shape
	bvh       *BVH
}

// NewTriangleMesh converts every face of data into a triangle translated by offset
// and builds a BVH over them. Any index outside its array is an error.
func NewTriangleMesh(data *MeshData, mat material.Material, offset core.Vec3, random *rand.Rand) (*TriangleMesh, error) {
	if len(data.Indices)%3 != 0 {
		return nil, xerrors.Errorf("face index count %d is not a multiple of 3", len(data.Indices))
	}
	if len(data.Positions)%3 != 0 {
		return nil, xerrors.Errorf("position count %d is not a multiple of 3", len(data.Positions))
	}

	hasUV := len(data.TexcoordIndices) > 0
	if hasUV && len(data.TexcoordIndices) != len(data.Indices) {
		return nil, xerrors.Errorf("mesh has %d texcoord indices for %d position indices", len(data.TexcoordIndices), len(data.Indices))
	}

	triangles := make([]Shape, 0, data.FaceCount())
	for face := 0; face < data.FaceCount(); face++ {
		var vertices [3]core.Vec3
		var uvs [3]core.Vec2

		for corner := 0; corner < 3; corner++ {
			i := face*3 + corner
			position, err := meshPosition(data, data.Indices[i])
			if err != nil {
				return nil, xerrors.Errorf("while reading face %d: %w", face, err)
			}
			vertices[corner] = position.Add(offset)

			if hasUV {
				uv, err := meshTexcoord(data, data.TexcoordIndices[i])
				if err != nil {
					return nil, xerrors.Errorf("while reading face %d: %w", face, err)
				}
				uvs[corner] = uv
			}
		}

		triangles = append(triangles, NewTriangleUV(vertices[0], vertices[1], vertices[2], uvs[0], uvs[1], uvs[2], mat))
	}

	return &TriangleMesh{
		triangles: triangles,
		bvh:       NewBVH(triangles, random),
	}, nil
}

func meshPosition(data *MeshData, index int) (core.Vec3, error) {
	if index < 0 || index*3+2 >= len(data.Positions) {
		return core.Vec3{}, xerrors.Errorf("position index %d out of range for %d vertices", index, len(data.Positions)/3)
	}
	p := data.Positions[index*3 : index*3+3]
	return core.NewVec3(p[0], p[1], p[2]), nil
}

func meshTexcoord(data *MeshData, index int) (core.Vec2, error) {
	if index < 0 || index*2+1 >= len(data.Texcoords) {
		return core.Vec2{}, xerrors.Errorf("texcoord index %d out of range for %d texcoords", index, len(data.Texcoords)/2)
	}
	return core.NewVec2(data.Texcoords[index*2], data.Texcoords[index*2+1]), nil
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	return tm.bvh.Hit(ray, interval)
}

// BoundingBox returns the bounding box of the entire mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bvh.BoundingBox()
}

// TriangleCount returns the number of triangles in the mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}
