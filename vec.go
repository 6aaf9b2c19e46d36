package vcolor

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Vec3 is a 3D point or direction. It aliases f64.Vec3 so hosts that
// already speak x/image vector math can pass their values through
// unconverted.
type Vec3 = f64.Vec3

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// add3 returns the sum of two vectors.
func add3(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// sub3 returns the difference of two vectors.
func sub3(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// scale3 returns the vector scaled by a scalar.
func scale3(a Vec3, s float64) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

// neg3 returns the vector with all components negated.
func neg3(a Vec3) Vec3 {
	return Vec3{-a[0], -a[1], -a[2]}
}

// dot3 returns the dot product of two vectors.
func dot3(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// length3 returns the length of the vector.
func length3(a Vec3) float64 {
	return math.Sqrt(dot3(a, a))
}

// lengthSquared3 returns the squared length of the vector.
func lengthSquared3(a Vec3) float64 {
	return dot3(a, a)
}

// normalize3 returns a unit vector in the same direction, or the zero
// vector when the input has zero length.
func normalize3(a Vec3) Vec3 {
	l := length3(a)
	if l == 0 {
		return Vec3{}
	}
	return scale3(a, 1/l)
}

// projectPointLine returns the fraction along the segment a→b at which
// the perpendicular projection of p lands. 0 maps to a, 1 maps to b;
// values outside [0, 1] indicate a projection beyond the endpoints.
// A degenerate segment (a == b) projects everything to 0.
func projectPointLine(p, a, b Vec3) float64 {
	ab := sub3(b, a)
	den := lengthSquared3(ab)
	if den == 0 {
		return 0
	}
	return dot3(sub3(p, a), ab) / den
}
