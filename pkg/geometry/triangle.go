package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a single triangle with per-vertex texture coordinates.
// Only the side facing along (B-A)×(C-A) is hit.
type Triangle struct {
	A             core.Vec3
	UVA, UVB, UVC core.Vec2
	Material      material.Material

	ab, ac     core.Vec3 // edges from A
	normal     core.Vec3 // ab × ac, not normalized
	unitNormal core.Vec3
	bbox       core.AABB
}

// NewTriangle creates a triangle with all vertex UVs at the origin
func NewTriangle(a, b, c core.Vec3, material material.Material) *Triangle {
	return NewTriangleUV(a, b, c, core.Vec2{}, core.Vec2{}, core.Vec2{}, material)
}

// NewTriangleUV creates a triangle with texture coordinates for each vertex
func NewTriangleUV(a, b, c core.Vec3, uvA, uvB, uvC core.Vec2, material material.Material) *Triangle {
	ab := b.Subtract(a)
	ac := c.Subtract(a)
	normal := ab.Cross(ac)

	return &Triangle{
		A:          a,
		UVA:        uvA,
		UVB:        uvB,
		UVC:        uvC,
		Material:   material,
		ab:         ab,
		ac:         ac,
		normal:     normal,
		unitNormal: normal.Normalize(),
		bbox:       core.NewAABBFromPoints(a, b, c).Pad(),
	}
}

// Hit intersects the ray with the triangle's front face
func (t *Triangle) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	d := -t.normal.Dot(ray.Direction)

	// back face, or parallel to the plane
	if d <= 0 {
		return nil, false
	}

	ap := ray.Origin.Subtract(t.A)
	dist := ap.Dot(t.normal) / d
	if !interval.Surrounds(dist) {
		return nil, false
	}

	// barycentric weights of B (v) and C (w), scaled by d until now
	e := ray.Direction.Negate().Cross(ap)
	v := t.ac.Dot(e) / d
	if !core.UnitInterval.Contains(v) {
		return nil, false
	}

	w := -t.ab.Dot(e) / d
	if !core.UnitInterval.Contains(w) || v+w > 1 {
		return nil, false
	}

	u := 1 - v - w
	uv := t.UVA.Multiply(u).Add(t.UVB.Multiply(v)).Add(t.UVC.Multiply(w))

	return &material.HitRecord{
		T:        dist,
		Point:    ray.At(dist),
		Normal:   t.unitNormal,
		UV:       uv,
		Material: t.Material,
	}, true
}

// BoundingBox returns the padded box around the three vertices
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}
