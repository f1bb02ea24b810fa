package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	i := NewInterval(1, 2)

	tests := []struct {
		x         float64
		contains  bool
		surrounds bool
	}{
		{0.5, false, false},
		{1, true, false},
		{1.5, true, true},
		{2, true, false},
		{2.5, false, false},
	}

	for _, tt := range tests {
		if got := i.Contains(tt.x); got != tt.contains {
			t.Errorf("Contains(%f) = %t, expected %t", tt.x, got, tt.contains)
		}
		if got := i.Surrounds(tt.x); got != tt.surrounds {
			t.Errorf("Surrounds(%f) = %t, expected %t", tt.x, got, tt.surrounds)
		}
	}
}

func TestInterval_EmptyIsUnionIdentity(t *testing.T) {
	i := NewInterval(-3, 4)
	if got := EmptyInterval.Union(i); got != i {
		t.Errorf("Expected %v, got %v", i, got)
	}
	if EmptyInterval.Contains(0) {
		t.Error("Empty interval should contain nothing")
	}
}

func TestAABB_FromCornersOrderIndependent(t *testing.T) {
	a := NewVec3(1, -2, 3)
	b := NewVec3(-1, 2, 0)
	if NewAABBFromCorners(a, b) != NewAABBFromCorners(b, a) {
		t.Error("Expected corner order not to matter")
	}
	box := NewAABBFromCorners(a, b)
	if box.Min() != NewVec3(-1, -2, 0) || box.Max() != NewVec3(1, 2, 3) {
		t.Errorf("Unexpected corners %v %v", box.Min(), box.Max())
	}
}

func TestAABB_Pad(t *testing.T) {
	flat := NewAABBFromCorners(NewVec3(0, 0, 0), NewVec3(1, 0, 1))
	padded := flat.Pad()

	if math.Abs(padded.Y.Size()-padDelta) > 1e-15 {
		t.Errorf("Expected padded y size %g, got %g", padDelta, padded.Y.Size())
	}
	if math.Abs(padded.Y.Min+padded.Y.Max) > 1e-15 {
		t.Errorf("Expected padding to stay centred, got %v", padded.Y)
	}
	if padded.X != flat.X || padded.Z != flat.Z {
		t.Error("Wide axes should not change")
	}

	// A ray running parallel to the flat box, just off its plane, only hits after padding
	ray := NewRay(NewVec3(-1, 1e-6, 0.5), NewVec3(1, 0, 0))
	if flat.Hit(ray, RayInterval()) {
		t.Error("Expected unpadded flat box to miss parallel ray")
	}
	if !padded.Hit(ray, RayInterval()) {
		t.Error("Expected padded box to be hit by parallel ray")
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABBFromCorners(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		interval Interval
		expected bool
	}{
		{"through center", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), RayInterval(), true},
		{"miss to side", NewRay(NewVec3(3, 0, -5), NewVec3(0, 0, 1)), RayInterval(), false},
		{"pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), RayInterval(), false},
		{"interval too short", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), NewInterval(0, 3), false},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 1, 0)), RayInterval(), true},
		{"diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), RayInterval(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.interval); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}

// bruteForceSlabs intersects all three slab intervals at once and checks overlap with the query range
func bruteForceSlabs(box AABB, ray Ray, interval Interval) bool {
	lo, hi := interval.Min, interval.Max
	for axis := 0; axis < 3; axis++ {
		slab := box.AxisInterval(axis)
		o, d := ray.Origin.Axis(axis), ray.Direction.Axis(axis)
		if d == 0 {
			if o <= slab.Min || o >= slab.Max {
				return false
			}
			continue
		}
		inv := 1 / d
		t0 := (slab.Min - o) * inv
		t1 := (slab.Max - o) * inv
		lo = math.Max(lo, math.Min(t0, t1))
		hi = math.Min(hi, math.Max(t0, t1))
	}
	return hi > lo
}

func TestAABB_HitMatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	coord := func() float64 { return random.Float64()*10 - 5 }

	for i := 0; i < 5000; i++ {
		box := NewAABBFromCorners(NewVec3(coord(), coord(), coord()), NewVec3(coord(), coord(), coord()))
		if i%4 == 1 {
			// zero thickness in y, padded
			box.Y = NewInterval(box.Y.Min, box.Y.Min)
			box = box.Pad()
		}

		direction := NewVec3(coord(), coord(), coord())
		if i%4 == 2 {
			// axis-aligned direction
			direction = NewVec3(0, 0, coord())
			if direction.Z == 0 {
				direction.Z = 1
			}
		}
		ray := NewRay(NewVec3(coord(), coord(), coord()), direction)

		if got, want := box.Hit(ray, RayInterval()), bruteForceSlabs(box, ray, RayInterval()); got != want {
			t.Fatalf("Case %d: Hit=%t brute force=%t for box %v ray %v", i, got, want, box, ray)
		}
	}
}

func TestAABB_UnionAndPoints(t *testing.T) {
	a := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABBFromPoints(NewVec3(2, -1, 0.5))
	u := a.Union(b)
	if u.Min() != NewVec3(0, -1, 0) || u.Max() != NewVec3(2, 1, 1) {
		t.Errorf("Unexpected union %v", u)
	}
	if got := EmptyAABB.Union(a); got != a {
		t.Errorf("Empty box should be union identity, got %v", got)
	}
	if !EmptyAABB.IsEmpty() || a.IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}
