package core

import "math"

// RayEpsilon is the smallest accepted hit distance, keeping scattered rays off their own surface
const RayEpsilon = 1e-6

// Interval is a closed range [Min, Max] on the real line.
// An interval with Min > Max is empty.
type Interval struct {
	Min, Max float64
}

// EmptyInterval contains nothing and is the identity for Union
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// UnitInterval is [0, 1]
var UnitInterval = Interval{Min: 0, Max: 1}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// RayInterval is the range of ray parameters a primary or scattered ray may hit
func RayInterval() Interval {
	return Interval{Min: RayEpsilon, Max: math.Inf(1)}
}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether Min <= x <= Max
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether Min < x < Max
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand grows the interval by delta, half on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Union returns the smallest interval containing both intervals
func (i Interval) Union(other Interval) Interval {
	return Interval{Min: math.Min(i.Min, other.Min), Max: math.Max(i.Max, other.Max)}
}

// Add includes the value x in the interval
func (i Interval) Add(x float64) Interval {
	return Interval{Min: math.Min(i.Min, x), Max: math.Max(i.Max, x)}
}
