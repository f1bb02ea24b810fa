package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   ColorSource // Metal color
	Fuzzness float64     // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a perfect mirror tinted by albedo
func NewMetal(albedo core.Vec3) *Metal {
	return &Metal{Albedo: NewSolidColor(albedo)}
}

// NewTexturedMetal creates a perfect mirror tinted by a texture
func NewTexturedMetal(albedo ColorSource) *Metal {
	return &Metal{Albedo: albedo}
}

// NewFuzzyMetal creates a metal whose reflections are perturbed by up to fuzzness
func NewFuzzyMetal(albedo ColorSource, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: max(0, min(1, fuzzness))}
}

// Scatter reflects the incoming ray about the normal
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction, hit.Normal)

	if m.Fuzzness > 0 {
		reflected = reflected.Normalize().Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzzness))
		// fuzzed below the surface: absorbed
		if reflected.Dot(hit.Normal) <= 0 {
			return ScatterResult{}, false
		}
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
