package geometry

import (
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

var logger = log.New("geometry")

// bvhNode is an internal node of the hierarchy. A child reference >= 0 indexes
// BVH.nodes, a negative reference -(i+1) names primitive i.
type bvhNode struct {
	bbox  core.AABB
	left  int32
	right int32
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes live in a flat arena; every node has exactly two children.
type BVH struct {
	nodes  []bvhNode
	shapes []Shape
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	Nodes      int
	Primitives int
	MaxDepth   int
}

// NewBVH builds a hierarchy over shapes. Each node splits on an axis drawn from random.
func NewBVH(shapes []Shape, random *rand.Rand) *BVH {
	bvh := &BVH{shapes: shapes}
	if len(shapes) == 0 {
		return bvh
	}

	// Sort indices, not the caller's slice
	members := make([]int32, len(shapes))
	for i := range members {
		members[i] = int32(i)
	}
	bvh.nodes = make([]bvhNode, 0, len(shapes))
	bvh.build(members, random)

	stats := bvh.Stats()
	logger.Debugf("built BVH over %d primitives: %d nodes, depth %d", stats.Primitives, stats.Nodes, stats.MaxDepth)

	return bvh
}

func primitiveRef(i int32) int32 {
	return -(i + 1)
}

// build appends the subtree over members and returns its node index
func (bvh *BVH) build(members []int32, random *rand.Rand) int32 {
	axis := random.Intn(3)
	idx := int32(len(bvh.nodes))
	bvh.nodes = append(bvh.nodes, bvhNode{})

	var left, right int32
	switch len(members) {
	case 1:
		left = primitiveRef(members[0])
		right = left
	case 2:
		if bvh.axisMin(members[1], axis) < bvh.axisMin(members[0], axis) {
			members[0], members[1] = members[1], members[0]
		}
		left = primitiveRef(members[0])
		right = primitiveRef(members[1])
	default:
		sort.SliceStable(members, func(i, j int) bool {
			return bvh.axisMin(members[i], axis) < bvh.axisMin(members[j], axis)
		})
		mid := len(members) / 2
		left = bvh.build(members[:mid], random)
		right = bvh.build(members[mid:], random)
	}

	bvh.nodes[idx] = bvhNode{
		bbox:  bvh.refBox(left).Union(bvh.refBox(right)),
		left:  left,
		right: right,
	}
	return idx
}

func (bvh *BVH) axisMin(shape int32, axis int) float64 {
	return bvh.shapes[shape].BoundingBox().AxisInterval(axis).Min
}

func (bvh *BVH) refBox(ref int32) core.AABB {
	if ref < 0 {
		return bvh.shapes[-ref-1].BoundingBox()
	}
	return bvh.nodes[ref].bbox
}

// Hit returns the nearest hit in the hierarchy strictly inside interval
func (bvh *BVH) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	if len(bvh.nodes) == 0 {
		return nil, false
	}
	return bvh.hitNode(0, ray, interval)
}

func (bvh *BVH) hitRef(ref int32, ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	if ref < 0 {
		return bvh.shapes[-ref-1].Hit(ray, interval)
	}
	return bvh.hitNode(ref, ray, interval)
}

func (bvh *BVH) hitNode(idx int32, ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	node := &bvh.nodes[idx]
	if !node.bbox.Hit(ray, interval) {
		return nil, false
	}

	leftHit, hitLeft := bvh.hitRef(node.left, ray, interval)

	// The right child only needs to beat the left hit
	rightInterval := interval
	if hitLeft {
		rightInterval.Max = leftHit.T
	}
	if rightHit, hitRight := bvh.hitRef(node.right, ray, rightInterval); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the bounds of the root node
func (bvh *BVH) BoundingBox() core.AABB {
	if len(bvh.nodes) == 0 {
		return core.EmptyAABB
	}
	return bvh.nodes[0].bbox
}

// Stats returns node count, primitive count and depth of the hierarchy
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{Nodes: len(bvh.nodes), Primitives: len(bvh.shapes)}
	if len(bvh.nodes) > 0 {
		stats.MaxDepth = bvh.depth(0)
	}
	return stats
}

func (bvh *BVH) depth(ref int32) int {
	if ref < 0 {
		return 0
	}
	node := bvh.nodes[ref]
	return 1 + max(bvh.depth(node.left), bvh.depth(node.right))
}
