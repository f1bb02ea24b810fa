package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	r := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
		bbox:     core.NewAABBFromCorners(center.Subtract(r), center.Add(r)),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Quadratic in half-b form: a t² - 2h t + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !interval.Surrounds(root) {
		root = (h + sqrtD) / a
		if !interval.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Divide(s.Radius)

	return &material.HitRecord{
		T:        root,
		Point:    point,
		Normal:   outwardNormal,
		UV:       sphereUV(outwardNormal),
		Material: s.Material,
	}, true
}

// sphereUV maps a unit normal to longitude u and latitude v, both in [0,1]
func sphereUV(n core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -n.Y)))
	phi := math.Atan2(-n.Z, n.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}
