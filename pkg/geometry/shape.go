package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is a flat aggregate that tests every member for each ray
type HittableList struct {
	Shapes []Shape
	bbox   core.AABB
}

// NewHittableList creates a list over shapes
func NewHittableList(shapes ...Shape) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape and grows the list bounds
func (l *HittableList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
	l.bbox = l.bbox.Union(shape.BoundingBox())
}

// Hit returns the closest hit among all members
func (l *HittableList) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := interval.Max

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, core.NewInterval(interval.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member bounds
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
