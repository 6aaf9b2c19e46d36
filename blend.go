package vcolor

import "math"

// BlendMode selects one of the 22 blend operators. Every operator takes a
// factor in [0, 1] lerping between "no change" at 0 and the full operator
// result at 1.
type BlendMode int

const (
	// BlendMix linearly interpolates toward the blend color.
	BlendMix BlendMode = iota
	// BlendAdd adds the blend color to the base.
	BlendAdd
	// BlendMultiply multiplies base and blend.
	BlendMultiply
	// BlendScreen produces a lighter result than multiply.
	BlendScreen
	// BlendOverlay combines multiply and screen per channel, branching on
	// whether the base channel is below 0.5.
	BlendOverlay
	// BlendSubtract subtracts the blend color from the base.
	BlendSubtract
	// BlendDivide divides base by blend, skipping channels where the
	// blend component is zero.
	BlendDivide
	// BlendDifference takes the absolute channel difference.
	BlendDifference
	// BlendExclusion is a lower-contrast difference, clamped at zero.
	BlendExclusion
	// BlendDarken takes the component-wise minimum on RGB.
	BlendDarken
	// BlendLighten takes the component-wise maximum on RGB.
	BlendLighten
	// BlendDodge brightens the base with a guarded per-channel division.
	BlendDodge
	// BlendBurn darkens the base with a guarded per-channel division.
	BlendBurn
	// BlendHue replaces the base hue; a no-op when the blend color is
	// achromatic.
	BlendHue
	// BlendSaturation blends toward the blend color's saturation; a no-op
	// when the base is achromatic.
	BlendSaturation
	// BlendValue blends toward the blend color's HSV value.
	BlendValue
	// BlendColor replaces hue and saturation; a no-op when the blend
	// color is achromatic.
	BlendColor
	// BlendSoftLight is a softer overlay.
	BlendSoftLight
	// BlendLinearLight shifts the base by the recentered blend color.
	BlendLinearLight
	// BlendAlphaAdd adds the blend alpha to the base alpha, leaving RGB
	// untouched.
	BlendAlphaAdd
	// BlendAlphaSubtract subtracts the blend alpha, leaving RGB untouched.
	BlendAlphaSubtract
	// BlendAlphaMix mixes toward the blend alpha, leaving RGB untouched.
	BlendAlphaMix
)

// blendModeNames maps modes to their preset/config names.
var blendModeNames = map[BlendMode]string{
	BlendMix:           "MIX",
	BlendAdd:           "ADD",
	BlendMultiply:      "MULTIPLY",
	BlendScreen:        "SCREEN",
	BlendOverlay:       "OVERLAY",
	BlendSubtract:      "SUBTRACT",
	BlendDivide:        "DIVIDE",
	BlendDifference:    "DIFFERENCE",
	BlendExclusion:     "EXCLUSION",
	BlendDarken:        "DARKEN",
	BlendLighten:       "LIGHTEN",
	BlendDodge:         "COLOR_DODGE",
	BlendBurn:          "COLOR_BURN",
	BlendHue:           "HUE",
	BlendSaturation:    "SATURATION",
	BlendValue:         "VALUE",
	BlendColor:         "COLOR",
	BlendSoftLight:     "SOFT_LIGHT",
	BlendLinearLight:   "LINEAR_LIGHT",
	BlendAlphaAdd:      "ALPHA_ADD",
	BlendAlphaSubtract: "ALPHA_SUBTRACT",
	BlendAlphaMix:      "ALPHA_MIX",
}

// String returns the canonical name of the mode.
func (m BlendMode) String() string {
	if s, ok := blendModeNames[m]; ok {
		return s
	}
	return "MIX"
}

// ParseBlendMode resolves a canonical mode name. The second return value
// reports whether the name was recognized.
func ParseBlendMode(s string) (BlendMode, bool) {
	for m, name := range blendModeNames {
		if s == name {
			return m, true
		}
	}
	return BlendMix, false
}

// Blend applies a blend operator. base supplies the current stored color,
// blend the incoming brush/gradient color. RGB-affecting operators carry
// base.A into the result; the three alpha-only operators leave RGB
// untouched at any factor.
func Blend(mode BlendMode, fac float64, base, blend RGBA) RGBA {
	switch mode {
	case BlendMix:
		return blendMix(fac, base, blend)
	case BlendAdd:
		return blendAdd(fac, base, blend)
	case BlendMultiply:
		return blendMultiply(fac, base, blend)
	case BlendScreen:
		return blendScreen(fac, base, blend)
	case BlendOverlay:
		return blendOverlay(fac, base, blend)
	case BlendSubtract:
		return blendSubtract(fac, base, blend)
	case BlendDivide:
		return blendDivide(fac, base, blend)
	case BlendDifference:
		return blendDifference(fac, base, blend)
	case BlendExclusion:
		return blendExclusion(fac, base, blend)
	case BlendDarken:
		return blendDarken(fac, base, blend)
	case BlendLighten:
		return blendLighten(fac, base, blend)
	case BlendDodge:
		return blendDodge(fac, base, blend)
	case BlendBurn:
		return blendBurn(fac, base, blend)
	case BlendHue:
		return blendHue(fac, base, blend)
	case BlendSaturation:
		return blendSaturation(fac, base, blend)
	case BlendValue:
		return blendValue(fac, base, blend)
	case BlendColor:
		return blendColor(fac, base, blend)
	case BlendSoftLight:
		return blendSoftLight(fac, base, blend)
	case BlendLinearLight:
		return blendLinearLight(fac, base, blend)
	case BlendAlphaAdd:
		return blendAlphaAdd(fac, base, blend)
	case BlendAlphaSubtract:
		return blendAlphaSubtract(fac, base, blend)
	case BlendAlphaMix:
		return blendAlphaMix(fac, base, blend)
	default:
		return blendMix(fac, base, blend)
	}
}

func blendMix(fac float64, col1, col2 RGBA) RGBA {
	out := col1.Lerp(col2, fac)
	out.A = col1.A
	return out
}

func blendAdd(fac float64, col1, col2 RGBA) RGBA {
	out := col1.Lerp(RGBA{col1.R + col2.R, col1.G + col2.G, col1.B + col2.B, col1.A + col2.A}, fac)
	out.A = col1.A
	return out
}

func blendMultiply(fac float64, col1, col2 RGBA) RGBA {
	out := col1.Lerp(RGBA{col1.R * col2.R, col1.G * col2.G, col1.B * col2.B, col1.A * col2.A}, fac)
	out.A = col1.A
	return out
}

func blendScreen(fac float64, col1, col2 RGBA) RGBA {
	facm := 1.0 - fac
	screen := func(c1, c2 float64) float64 {
		return 1.0 - (facm+fac*(1.0-c2))*(1.0-c1)
	}
	return RGBA{
		R: screen(col1.R, col2.R),
		G: screen(col1.G, col2.G),
		B: screen(col1.B, col2.B),
		A: col1.A,
	}
}

func blendOverlay(fac float64, col1, col2 RGBA) RGBA {
	facm := 1.0 - fac
	overlay := func(c1, c2 float64) float64 {
		if c1 < 0.5 {
			return c1 * (facm + 2.0*fac*c2)
		}
		return 1.0 - (facm+2.0*fac*(1.0-c2))*(1.0-c1)
	}
	return RGBA{
		R: overlay(col1.R, col2.R),
		G: overlay(col1.G, col2.G),
		B: overlay(col1.B, col2.B),
		A: col1.A,
	}
}

func blendSubtract(fac float64, col1, col2 RGBA) RGBA {
	out := col1.Lerp(RGBA{col1.R - col2.R, col1.G - col2.G, col1.B - col2.B, col1.A - col2.A}, fac)
	out.A = col1.A
	return out
}

func blendDivide(fac float64, col1, col2 RGBA) RGBA {
	facm := 1.0 - fac
	divide := func(c1, c2 float64) float64 {
		if c2 == 0.0 {
			return c1
		}
		return facm*c1 + fac*c1/c2
	}
	return RGBA{
		R: divide(col1.R, col2.R),
		G: divide(col1.G, col2.G),
		B: divide(col1.B, col2.B),
		A: col1.A,
	}
}

func blendDifference(fac float64, col1, col2 RGBA) RGBA {
	diff := RGBA{
		R: math.Abs(col1.R - col2.R),
		G: math.Abs(col1.G - col2.G),
		B: math.Abs(col1.B - col2.B),
		A: math.Abs(col1.A - col2.A),
	}
	out := col1.Lerp(diff, fac)
	out.A = col1.A
	return out
}

func blendExclusion(fac float64, col1, col2 RGBA) RGBA {
	excl := func(c1, c2 float64) float64 {
		return math.Max(c1+(c1+c2-2.0*c1*c2-c1)*fac, 0.0)
	}
	return RGBA{
		R: excl(col1.R, col2.R),
		G: excl(col1.G, col2.G),
		B: excl(col1.B, col2.B),
		A: col1.A,
	}
}

func blendDarken(fac float64, col1, col2 RGBA) RGBA {
	darken := func(c1, c2 float64) float64 {
		return c1 + (math.Min(c1, c2)-c1)*fac
	}
	return RGBA{
		R: darken(col1.R, col2.R),
		G: darken(col1.G, col2.G),
		B: darken(col1.B, col2.B),
		A: col1.A,
	}
}

func blendLighten(fac float64, col1, col2 RGBA) RGBA {
	lighten := func(c1, c2 float64) float64 {
		return c1 + (math.Max(c1, c2)-c1)*fac
	}
	return RGBA{
		R: lighten(col1.R, col2.R),
		G: lighten(col1.G, col2.G),
		B: lighten(col1.B, col2.B),
		A: col1.A,
	}
}

func blendDodge(fac float64, col1, col2 RGBA) RGBA {
	dodge := func(c1, c2 float64) float64 {
		if c1 == 0.0 {
			return c1
		}
		tmp := 1.0 - fac*c2
		if tmp <= 0.0 {
			return 1.0
		}
		if tmp = c1 / tmp; tmp > 1.0 {
			return 1.0
		}
		return tmp
	}
	return RGBA{
		R: dodge(col1.R, col2.R),
		G: dodge(col1.G, col2.G),
		B: dodge(col1.B, col2.B),
		A: col1.A,
	}
}

func blendBurn(fac float64, col1, col2 RGBA) RGBA {
	facm := 1.0 - fac
	burn := func(c1, c2 float64) float64 {
		tmp := facm + fac*c2
		if tmp <= 0.0 {
			return 0.0
		}
		tmp = 1.0 - (1.0-c1)/tmp
		if tmp < 0.0 {
			return 0.0
		}
		if tmp > 1.0 {
			return 1.0
		}
		return tmp
	}
	return RGBA{
		R: burn(col1.R, col2.R),
		G: burn(col1.G, col2.G),
		B: burn(col1.B, col2.B),
		A: col1.A,
	}
}

func blendHue(fac float64, col1, col2 RGBA) RGBA {
	hsv2 := RGBToHSV(col2)
	if hsv2.S == 0.0 {
		return col1
	}
	hsv := RGBToHSV(col1)
	hsv.H = hsv2.H
	out := col1.Lerp(HSVToRGB(hsv), fac)
	out.A = col1.A
	return out
}

func blendSaturation(fac float64, col1, col2 RGBA) RGBA {
	facm := 1.0 - fac
	hsv := RGBToHSV(col1)
	if hsv.S == 0.0 {
		return col1
	}
	hsv2 := RGBToHSV(col2)
	hsv.S = facm*hsv.S + fac*hsv2.S
	return HSVToRGB(hsv)
}

func blendValue(fac float64, col1, col2 RGBA) RGBA {
	facm := 1.0 - fac
	hsv := RGBToHSV(col1)
	hsv2 := RGBToHSV(col2)
	hsv.V = facm*hsv.V + fac*hsv2.V
	return HSVToRGB(hsv)
}

func blendColor(fac float64, col1, col2 RGBA) RGBA {
	hsv2 := RGBToHSV(col2)
	if hsv2.S == 0.0 {
		return col1
	}
	hsv := RGBToHSV(col1)
	hsv.H = hsv2.H
	hsv.S = hsv2.S
	out := col1.Lerp(HSVToRGB(hsv), fac)
	out.A = col1.A
	return out
}

func blendSoftLight(fac float64, col1, col2 RGBA) RGBA {
	facm := 1.0 - fac
	soft := func(c1, c2 float64) float64 {
		scr := 1.0 - (1.0-c2)*(1.0-c1)
		return facm*c1 + fac*((1.0-c1)*c2*c1+c1*scr)
	}
	return RGBA{
		R: soft(col1.R, col2.R),
		G: soft(col1.G, col2.G),
		B: soft(col1.B, col2.B),
		A: col1.A,
	}
}

func blendLinearLight(fac float64, col1, col2 RGBA) RGBA {
	return RGBA{
		R: col1.R + fac*(2.0*(col2.R-0.5)),
		G: col1.G + fac*(2.0*(col2.G-0.5)),
		B: col1.B + fac*(2.0*(col2.B-0.5)),
		A: col1.A,
	}
}

func blendAlphaAdd(fac float64, col1, col2 RGBA) RGBA {
	out := col1
	out.A = col1.A + fac*((col1.A+col2.A)-col1.A)
	return out
}

func blendAlphaSubtract(fac float64, col1, col2 RGBA) RGBA {
	out := col1
	out.A = col1.A + fac*((col1.A-col2.A)-col1.A)
	return out
}

func blendAlphaMix(fac float64, col1, col2 RGBA) RGBA {
	out := col1
	out.A = col1.A + fac*(col2.A-col1.A)
	return out
}
