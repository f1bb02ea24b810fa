package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, core.RayInterval())
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_Roots(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		interval       core.Interval
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "near root from outside",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -1),
			interval:       core.RayInterval(),
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "far root from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			interval:       core.RayInterval(),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "near root excluded by interval",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -1),
			interval:       core.NewInterval(4.5, math.Inf(1)),
			expectedT:      6.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 3, 0),
			rayDirection:   core.NewVec3(0, -2, 0),
			interval:       core.RayInterval(),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, tt.interval)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_RootAtIntervalBoundaryRejected(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	// both roots lie on or outside the open interval (4, 6)
	if hit, isHit := sphere.Hit(ray, core.NewInterval(4, 6)); isHit {
		t.Errorf("Expected roots at the interval bounds to be rejected, got t=%f", hit.T)
	}
}

func TestSphere_Hit_ThroughCentreMatchesAnalyticRoot(t *testing.T) {
	random := core.NewSeededSampler(42)
	for i := 0; i < 200; i++ {
		center := random.Get3D().Multiply(10).Subtract(core.NewVec3(5, 5, 5))
		radius := 0.1 + random.Get1D()*2
		sphere := NewSphere(center, radius, nil)

		direction := core.RandomUnitVector(random)
		distance := radius + 0.5 + random.Get1D()*10
		origin := center.Subtract(direction.Multiply(distance))

		hit, isHit := sphere.Hit(core.NewRay(origin, direction), core.RayInterval())
		if !isHit {
			t.Fatalf("Case %d: expected hit", i)
		}
		if expected := distance - radius; math.Abs(hit.T-expected) > 1e-9 {
			t.Fatalf("Case %d: expected t=%f, got %f", i, expected, hit.T)
		}
	}
}

func TestSphere_UVAndMaterial(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, mat)
	ray := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0))

	hit, isHit := sphere.Hit(ray, core.RayInterval())
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != mat {
		t.Error("Expected hit record to carry the sphere's material")
	}
	if math.Abs(hit.UV.X-0.5) > 1e-12 || math.Abs(hit.UV.Y-0.5) > 1e-12 {
		t.Errorf("Expected UV (0.5,0.5) on the +x equator, got %v", hit.UV)
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, nil)
	box := sphere.BoundingBox()
	if box.Min() != core.NewVec3(0.5, 1.5, 2.5) || box.Max() != core.NewVec3(1.5, 2.5, 3.5) {
		t.Errorf("Unexpected bounding box %v", box)
	}
}
