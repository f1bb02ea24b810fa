package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emission ColorSource // Emitted radiance, may be textured
}

// NewDiffuseLight creates a uniformly emitting light
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose radiance follows a texture
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter never continues the path, lights absorb all incoming rays
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emitted light for this material
func (e *DiffuseLight) Emit(uv core.Vec2, point core.Vec3) core.Vec3 {
	return e.Emission.Evaluate(uv, point)
}
