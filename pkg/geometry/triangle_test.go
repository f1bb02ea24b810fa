package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	// counter-clockwise seen from +z, so the front face points at +z
	triangle := NewTriangleUV(
		core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0, 1),
		nil,
	)

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{"inside", core.NewRay(core.NewVec3(0.2, 0.3, 1), core.NewVec3(0, 0, -1)), true, 1},
		{"inside oblique", core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0.1, 0.1, -1)), true, 2},
		{"back face", core.NewRay(core.NewVec3(0.2, 0.3, -1), core.NewVec3(0, 0, 1)), false, 0},
		{"parallel", core.NewRay(core.NewVec3(-1, 0.2, 0), core.NewVec3(1, 0, 0)), false, 0},
		{"v negative", core.NewRay(core.NewVec3(-0.1, 0.3, 1), core.NewVec3(0, 0, -1)), false, 0},
		{"w negative", core.NewRay(core.NewVec3(0.3, -0.1, 1), core.NewVec3(0, 0, -1)), false, 0},
		{"v plus w over one", core.NewRay(core.NewVec3(0.6, 0.6, 1), core.NewVec3(0, 0, -1)), false, 0},
		{"behind origin", core.NewRay(core.NewVec3(0.2, 0.3, -1), core.NewVec3(0, 0, -1)), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray, core.RayInterval())
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-12 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.Normal != core.NewVec3(0, 0, 1) {
				t.Errorf("Expected unit normal (0,0,1), got %v", hit.Normal)
			}
		})
	}
}

func TestTriangle_BarycentricUV(t *testing.T) {
	triangle := NewTriangleUV(
		core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0),
		core.NewVec2(0.1, 0.1), core.NewVec2(0.9, 0.1), core.NewVec2(0.1, 0.9),
		nil,
	)
	hit, isHit := triangle.Hit(core.NewRay(core.NewVec3(0.5, 1, 3), core.NewVec3(0, 0, -1)), core.RayInterval())
	if !isHit {
		t.Fatal("Expected hit")
	}

	// weights: b=0.25, c=0.5, a=0.25
	expected := core.NewVec2(0.1*0.25+0.9*0.25+0.1*0.5, 0.1*0.25+0.1*0.25+0.9*0.5)
	if math.Abs(hit.UV.X-expected.X) > 1e-12 || math.Abs(hit.UV.Y-expected.Y) > 1e-12 {
		t.Errorf("Expected UV %v, got %v", expected, hit.UV)
	}
	if p := hit.Point; math.Abs(p.X-0.5) > 1e-12 || math.Abs(p.Y-1) > 1e-12 || math.Abs(p.Z) > 1e-12 {
		t.Errorf("Expected point (0.5,1,0), got %v", p)
	}
}

func TestTriangle_RandomBarycentricDomain(t *testing.T) {
	a := core.NewVec3(-1, 0, -2)
	b := core.NewVec3(2, 0.5, -2.5)
	c := core.NewVec3(0, 2, -1.5)
	triangle := NewTriangle(a, b, c, nil)
	normal := b.Subtract(a).Cross(c.Subtract(a)).Normalize()
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 2000; i++ {
		// barycentric weights drawn from a box around the triangle's domain
		v := sampler.Get1D()*1.6 - 0.3
		w := sampler.Get1D()*1.6 - 0.3
		u := 1 - v - w
		target := a.Multiply(u).Add(b.Multiply(v)).Add(c.Multiply(w))
		origin := target.Add(normal.Multiply(3))
		ray := core.NewRay(origin, normal.Negate())

		const margin = 1e-9
		inside := v > margin && w > margin && v+w < 1-margin
		outside := v < -margin || w < -margin || v+w > 1+margin

		_, isHit := triangle.Hit(ray, core.RayInterval())
		if inside && !isHit {
			t.Fatalf("Expected hit for v=%f w=%f", v, w)
		}
		if outside && isHit {
			t.Fatalf("Expected miss for v=%f w=%f", v, w)
		}
	}
}

func TestTriangle_SharedEdgeHitOnce(t *testing.T) {
	// unit square split along its diagonal
	first := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0), nil)
	second := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(0, 1, 0), nil)
	list := NewHittableList(first, second)

	for _, p := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		ray := core.NewRay(core.NewVec3(p, p, 1), core.NewVec3(0, 0, -1))
		hit, isHit := list.Hit(ray, core.RayInterval())
		if !isHit {
			t.Fatalf("Ray through diagonal at %f fell between the triangles", p)
		}

		// nothing else remains in front of the reported hit
		if again, ok := list.Hit(ray, core.NewInterval(core.RayEpsilon, hit.T)); ok {
			t.Errorf("Ray through diagonal at %f hit twice, at t=%f and t=%f", p, hit.T, again.T)
		}
	}
}

func TestTriangle_BoundingBoxPadded(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil)
	box := triangle.BoundingBox()
	if box.Z.Size() <= 0 {
		t.Errorf("Expected padded z extent, got %v", box.Z)
	}
	if box.X != core.NewInterval(0, 1) {
		t.Errorf("Expected x extent [0,1], got %v", box.X)
	}
}
