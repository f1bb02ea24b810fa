package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane represents an infinite plane spanned by two basis vectors through a point.
// The basis vectors also scale the planar UV coordinates.
type Plane struct {
	XBasis   core.Vec3
	YBasis   core.Vec3
	Point    core.Vec3
	Normal   core.Vec3 // unit(XBasis × YBasis)
	Material material.Material
}

// NewPlane creates a new plane
func NewPlane(xBasis, yBasis, point core.Vec3, material material.Material) *Plane {
	return &Plane{
		XBasis:   xBasis,
		YBasis:   yBasis,
		Point:    point,
		Normal:   xBasis.Cross(yBasis).Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / ray.Direction.Dot(p.Normal)

	// Parallel rays give ±Inf or NaN, which Surrounds rejects
	if math.IsNaN(t) || math.IsInf(t, 0) || !interval.Surrounds(t) {
		return nil, false
	}

	hitPoint := ray.At(t)
	offset := hitPoint.Subtract(p.Point)

	return &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Normal:   p.Normal,
		UV:       core.NewVec2(p.XBasis.Dot(offset), p.YBasis.Dot(offset)),
		Material: p.Material,
	}, true
}

// BoundingBox covers the whole finite float range, a plane is unbounded
func (p *Plane) BoundingBox() core.AABB {
	return core.NewAABBFromCorners(
		core.NewVec3(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64),
		core.NewVec3(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64),
	)
}
