package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection whose t lies strictly inside interval
	Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
