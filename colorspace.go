package vcolor

import "math"

// Color space conversions. The HSV/HSL round trips keep a constant hue
// at zero chroma: degenerate inputs produce a stable hue instead of
// branching to an arbitrary one.

// HSVA holds a hue/saturation/value color. Hue is in [0, 1).
// Alpha is carried through conversions unmodified.
type HSVA struct {
	H, S, V, A float64
}

// Lerp performs linear interpolation on all four channels.
// Hue is lerped naively; use hueInterp for arc-aware hue blending.
func (c HSVA) Lerp(other HSVA, t float64) HSVA {
	return HSVA{
		H: c.H + (other.H-c.H)*t,
		S: c.S + (other.S-c.S)*t,
		V: c.V + (other.V-c.V)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// HSLA holds a hue/saturation/lightness color. Hue is in [0, 1).
type HSLA struct {
	H, S, L, A float64
}

// Lerp performs linear interpolation on all four channels.
func (c HSLA) Lerp(other HSLA, t float64) HSLA {
	return HSLA{
		H: c.H + (other.H-c.H)*t,
		S: c.S + (other.S-c.S)*t,
		L: c.L + (other.L-c.L)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// RGBToHSV converts a color to HSV. The chroma is derived through two
// conditional channel swaps tracking a sign/offset k, so zero-chroma
// inputs keep a well-defined hue; the 1e-20 bias avoids division by zero.
func RGBToHSV(c RGBA) HSVA {
	r, g, b := c.R, c.G, c.B
	k := 0.0

	if g < b {
		g, b = b, g
		k = -1.0
	}
	minGB := b
	if r < g {
		r, g = g, r
		k = -2.0/6.0 - k
		minGB = math.Min(g, b)
	}

	chroma := r - minGB

	return HSVA{
		H: math.Abs(k + (g-b)/(6.0*chroma+1e-20)),
		S: chroma / (r + 1e-20),
		V: r,
		A: c.A,
	}
}

// HSVToRGB converts an HSV color back to RGB.
func HSVToRGB(c HSVA) RGBA {
	h, s, v := c.H, c.S, c.V

	nr := clamp01(math.Abs(h*6.0-3.0) - 1.0)
	ng := clamp01(2.0 - math.Abs(h*6.0-2.0))
	nb := clamp01(2.0 - math.Abs(h*6.0-4.0))

	return RGBA{
		R: ((nr-1.0)*s + 1.0) * v,
		G: ((ng-1.0)*s + 1.0) * v,
		B: ((nb-1.0)*s + 1.0) * v,
		A: c.A,
	}
}

// RGBToHSL converts a color to HSL. Achromatic inputs (max == min) get
// hue = saturation = 0; the saturation formula branches on whether the
// lightness is above 0.5.
func RGBToHSL(c RGBA) HSLA {
	r, g, b := c.R, c.G, c.B
	cmax := math.Max(r, math.Max(g, b))
	cmin := math.Min(r, math.Min(g, b))

	l := math.Min(1.0, (cmax+cmin)/2.0)
	var h, s float64

	if cmax != cmin {
		d := cmax - cmin
		if l > 0.5 {
			s = d / (2.0 - cmax - cmin)
		} else {
			s = d / (cmax + cmin)
		}
		switch cmax {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6.0
			}
		case g:
			h = (b-r)/d + 2.0
		default:
			h = (r-g)/d + 4.0
		}
	}

	return HSLA{H: h / 6.0, S: s, L: l, A: c.A}
}

// HSLToRGB converts an HSL color back to RGB.
func HSLToRGB(c HSLA) RGBA {
	h, s, l := c.H, c.S, c.L

	nr := clamp01(math.Abs(h*6.0-3.0) - 1.0)
	ng := clamp01(2.0 - math.Abs(h*6.0-2.0))
	nb := clamp01(2.0 - math.Abs(h*6.0-4.0))

	chroma := (1.0 - math.Abs(2.0*l-1.0)) * s

	return RGBA{
		R: (nr-0.5)*chroma + l,
		G: (ng-0.5)*chroma + l,
		B: (nb-0.5)*chroma + l,
		A: c.A,
	}
}

// SRGBToLinear converts a single sRGB component to linear light.
// Values below the transfer threshold use the linear segment; negative
// inputs clamp to 0 there.
func SRGBToLinear(c float64) float64 {
	if c < 0.4045 {
		if c < 0 {
			return 0
		}
		return c * (1.0 / 12.92)
	}
	return math.Pow((c+0.055)*(1.0/1.055), 2.4)
}

// LinearToSRGB converts a single linear-light component to sRGB.
func LinearToSRGB(c float64) float64 {
	if c < 0.0031308 {
		if c < 0 {
			return 0
		}
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// SRGBToLinearColor converts the RGB channels of a color from sRGB to
// linear space. Alpha is never gamma-encoded.
func SRGBToLinearColor(c RGBA) RGBA {
	return RGBA{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	}
}

// LinearToSRGBColor converts the RGB channels of a color from linear to
// sRGB space. Alpha is never gamma-encoded.
func LinearToSRGBColor(c RGBA) RGBA {
	return RGBA{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: c.A,
	}
}

// Oklab cone-response matrices, entered row-wise as in the reference
// port. The product of the two is the identity, so mixes round-trip even
// though the intermediate basis is the transpose of the published one.
var rgbToCone = [3]Vec3{
	{0.4122214708, 0.2119034982, 0.0883024619},
	{0.5363325363, 0.6806995451, 0.2817188376},
	{0.0514459929, 0.1073969566, 0.6299787005},
}

var coneToRGB = [3]Vec3{
	{4.0767416621, -1.2684380046, -0.0041960863},
	{-3.3077115913, 2.6097574011, -0.7034186147},
	{0.2309699292, -0.3413193965, 1.7076147010},
}

// mulMat3 applies a row-major 3x3 matrix to a vector.
func mulMat3(m [3]Vec3, v Vec3) Vec3 {
	return Vec3{dot3(m[0], v), dot3(m[1], v), dot3(m[2], v)}
}

// rgbToLMS converts linear RGB to the (cube-rooted) LMS cone basis used
// for Oklab mixing.
func rgbToLMS(c RGBA) Vec3 {
	lms := mulMat3(rgbToCone, Vec3{c.R, c.G, c.B})
	return Vec3{math.Cbrt(lms[0]), math.Cbrt(lms[1]), math.Cbrt(lms[2])}
}

// lmsToRGB cubes a mixed LMS triple and converts it back to linear RGB.
func lmsToRGB(lms Vec3) Vec3 {
	cubed := Vec3{
		lms[0] * lms[0] * lms[0],
		lms[1] * lms[1] * lms[1],
		lms[2] * lms[2] * lms[2],
	}
	return mulMat3(coneToRGB, cubed)
}
