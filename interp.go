package vcolor

// HueMode decides how hue interpolation wraps across the 0/1 boundary.
type HueMode int

const (
	// HueNear takes the shorter arc between the two hues.
	HueNear HueMode = iota
	// HueFar takes the longer arc.
	HueFar
	// HueCW always travels in the decreasing-mod-1 direction.
	HueCW
	// HueCCW always travels in the increasing-mod-1 direction.
	HueCCW
)

// InterpMode selects the color space and easing used to derive gradient
// colors between the two endpoints.
type InterpMode int

const (
	// InterpRGBLinear lerps in linear RGB.
	InterpRGBLinear InterpMode = iota
	// InterpRGBEase lerps in linear RGB with smoothstep easing.
	InterpRGBEase
	// InterpHSVNear through InterpHSVCCW lerp through HSV with the given
	// hue arc mode.
	InterpHSVNear
	InterpHSVFar
	InterpHSVCW
	InterpHSVCCW
	// InterpHSLNear through InterpHSLCCW lerp through HSL.
	InterpHSLNear
	InterpHSLFar
	InterpHSLCW
	InterpHSLCCW
	// InterpOklabLinear mixes in the Oklab cone basis.
	InterpOklabLinear
	// InterpOklabEase is the smoothstepped Oklab mix.
	InterpOklabEase
)

// interpModeNames maps modes to their preset/config names.
var interpModeNames = map[InterpMode]string{
	InterpRGBLinear:   "RGB_LINEAR",
	InterpRGBEase:     "RGB_EASE",
	InterpHSVNear:     "HSV_NEAR",
	InterpHSVFar:      "HSV_FAR",
	InterpHSVCW:       "HSV_CW",
	InterpHSVCCW:      "HSV_CCW",
	InterpHSLNear:     "HSL_NEAR",
	InterpHSLFar:      "HSL_FAR",
	InterpHSLCW:       "HSL_CW",
	InterpHSLCCW:      "HSL_CCW",
	InterpOklabLinear: "OKLAB_LINEAR",
	InterpOklabEase:   "OKLAB_EASE",
}

// String returns the canonical name of the mode.
func (m InterpMode) String() string {
	if s, ok := interpModeNames[m]; ok {
		return s
	}
	return "RGB_LINEAR"
}

// ParseInterpMode resolves a canonical mode name. The second return value
// reports whether the name was recognized.
func ParseInterpMode(s string) (InterpMode, bool) {
	for m, name := range interpModeNames {
		if s == name {
			return m, true
		}
	}
	return InterpRGBLinear, false
}

// Interp derives the gradient color at fraction t between c1 and c2.
func Interp(mode InterpMode, t float64, c1, c2 RGBA) RGBA {
	switch mode {
	case InterpRGBLinear:
		return MixRGB(t, c1, c2)
	case InterpRGBEase:
		return MixRGBEase(t, c1, c2)
	case InterpHSVNear, InterpHSVFar, InterpHSVCW, InterpHSVCCW:
		return MixHSV(HueMode(mode-InterpHSVNear), t, c1, c2)
	case InterpHSLNear, InterpHSLFar, InterpHSLCW, InterpHSLCCW:
		return MixHSL(HueMode(mode-InterpHSLNear), t, c1, c2)
	case InterpOklabLinear:
		return MixOklab(t, c1, c2)
	case InterpOklabEase:
		return MixOklabEase(t, c1, c2)
	default:
		return MixRGB(t, c1, c2)
	}
}

// smoothstep remaps t through 3t²-2t³.
func smoothstep(t float64) float64 {
	t2 := t * t
	return 3*t2 - 2*t2*t
}

// MixRGB lerps all four channels in linear RGB.
func MixRGB(t float64, c1, c2 RGBA) RGBA {
	return c1.Lerp(c2, t)
}

// MixRGBEase lerps in linear RGB with smoothstep easing.
func MixRGBEase(t float64, c1, c2 RGBA) RGBA {
	return c1.Lerp(c2, smoothstep(t))
}

// hueMod reduces a hue to [0, 1) assuming it is already below 2.
func hueMod(h float64) float64 {
	if h < 1.0 {
		return h
	}
	return h - 1.0
}

// hueInterp interpolates between two hues along the arc the mode selects.
// Both hues are reduced to [0, 1) first; the result stays in [0, 1).
func hueInterp(mode HueMode, t, h1, h2 float64) float64 {
	mt := 1.0 - t
	lerp := func(a, b float64) float64 { return mt*a + t*b }

	h1 = hueMod(h1)
	h2 = hueMod(h2)

	// 0 = direct, 1 = wrap h1 through 1, 2 = wrap h2 through 1.
	wrap := 0
	switch mode {
	case HueNear:
		if h1 < h2 && h2-h1 > 0.5 {
			wrap = 1
		} else if h1 > h2 && h2-h1 < -0.5 {
			wrap = 2
		}
	case HueFar:
		if h1 == h2 {
			wrap = 1
		} else if h1 < h2 && h2-h1 < 0.5 {
			wrap = 1
		} else if h1 > h2 && h2-h1 > -0.5 {
			wrap = 2
		}
	case HueCW:
		if h1 > h2 {
			wrap = 2
		}
	case HueCCW:
		if h1 < h2 {
			wrap = 1
		}
	}

	switch wrap {
	case 1:
		return hueMod(lerp(h1+1.0, h2))
	case 2:
		return hueMod(lerp(h1, h2+1.0))
	default:
		return lerp(h1, h2)
	}
}

// MixHSV lerps through HSV space; saturation, value and alpha lerp
// linearly while hue follows the selected arc.
func MixHSV(mode HueMode, t float64, c1, c2 RGBA) RGBA {
	hsv1 := RGBToHSV(c1)
	hsv2 := RGBToHSV(c2)

	mixed := hsv1.Lerp(hsv2, t)
	mixed.H = hueInterp(mode, t, hsv1.H, hsv2.H)

	return HSVToRGB(mixed)
}

// MixHSL lerps through HSL space with arc-aware hue.
func MixHSL(mode HueMode, t float64, c1, c2 RGBA) RGBA {
	hsl1 := RGBToHSL(c1)
	hsl2 := RGBToHSL(c2)

	mixed := hsl1.Lerp(hsl2, t)
	mixed.H = hueInterp(mode, t, hsl1.H, hsl2.H)

	return HSLToRGB(mixed)
}

// MixOklab mixes the RGB channels through the cube-rooted LMS cone basis.
// Alpha is carried from c1.
func MixOklab(t float64, c1, c2 RGBA) RGBA {
	lms1 := rgbToLMS(c1)
	lms2 := rgbToLMS(c2)

	mix := add3(lms1, scale3(sub3(lms2, lms1), t))
	rgb := lmsToRGB(mix)

	return RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: c1.A}
}

// MixOklabEase is MixOklab with smoothstep applied to the LMS lerp
// parameter.
func MixOklabEase(t float64, c1, c2 RGBA) RGBA {
	lms1 := rgbToLMS(c1)
	lms2 := rgbToLMS(c2)

	t = smoothstep(t)
	mix := add3(lms1, scale3(sub3(lms2, lms1), t))
	rgb := lmsToRGB(mix)

	return RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: c1.A}
}
