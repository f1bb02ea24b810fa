package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the continuation ray and its attenuation, or false when the path ends here
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward unit surface normal
	UV       core.Vec2 // Surface parametric coordinates
	Material Material  // Material of the hit object
}

// Emitted returns the light emitted at the hit point, zero for non-emissive materials
func (h *HitRecord) Emitted() core.Vec3 {
	if emitter, ok := h.Material.(Emitter); ok {
		return emitter.Emit(h.UV, h.Point)
	}
	return core.Vec3{}
}
