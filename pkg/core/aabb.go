package core

import "math"

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// padDelta is the minimum extent of a padded box along any axis
const padDelta = 1e-5

// EmptyAABB contains no points and is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABBFromCorners creates the box spanned by two opposite corners given in any order
func NewAABBFromCorners(a, b Vec3) AABB {
	return AABB{
		X: Interval{Min: math.Min(a.X, b.X), Max: math.Max(a.X, b.X)},
		Y: Interval{Min: math.Min(a.Y, b.Y), Max: math.Max(a.Y, b.Y)},
		Z: Interval{Min: math.Min(a.Z, b.Z), Max: math.Max(a.Z, b.Z)},
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB
	for _, point := range points {
		box.X = box.X.Add(point.X)
		box.Y = box.Y.Add(point.Y)
		box.Z = box.Z.Add(point.Z)
	}
	return box
}

// AxisInterval returns the interval for axis (0=X, 1=Y, 2=Z)
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return Vec3{aabb.X.Min, aabb.Y.Min, aabb.Z.Min}
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return Vec3{aabb.X.Max, aabb.Y.Max, aabb.Z.Max}
}

// Hit tests if a ray crosses the box anywhere inside interval using the slab method.
// A ray whose entry and exit coincide is treated as a miss.
func (aabb AABB) Hit(ray Ray, interval Interval) bool {
	tMin, tMax := interval.Min, interval.Max
	for axis := 0; axis < 3; axis++ {
		slab := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)

		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// Pad widens every axis thinner than 1e-5 to exactly that width, keeping its centre
func (aabb AABB) Pad() AABB {
	return AABB{
		X: padInterval(aabb.X),
		Y: padInterval(aabb.Y),
		Z: padInterval(aabb.Z),
	}
}

func padInterval(i Interval) Interval {
	if i.Size() >= padDelta {
		return i
	}
	return i.Expand(padDelta - i.Size())
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max().Subtract(aabb.Min())
}

// IsEmpty returns true when the box contains no points
func (aabb AABB) IsEmpty() bool {
	return aabb.X.Min > aabb.X.Max || aabb.Y.Min > aabb.Y.Max || aabb.Z.Min > aabb.Z.Max
}
