package vcolor

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	if c.A != 1 {
		t.Errorf("RGB alpha = %v, want 1", c.A)
	}
	if c.R != 0.2 || c.G != 0.4 || c.B != 0.6 {
		t.Errorf("RGB = %v", c)
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{R: 0, G: 1, B: 0.5, A: 1}
	b := RGBA{R: 1, G: 0, B: 0.5, A: 0}

	tests := []struct {
		t    float64
		want RGBA
	}{
		{0, a},
		{1, b},
		{0.5, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.5}},
	}
	for _, tt := range tests {
		if got := a.Lerp(b, tt.t); !colorsClose(got, tt.want, 1e-12) {
			t.Errorf("Lerp(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestClamped(t *testing.T) {
	c := RGBA{R: -0.5, G: 1.5, B: 0.25, A: 2}
	want := RGBA{R: 0, G: 1, B: 0.25, A: 1}
	if got := c.Clamped(); got != want {
		t.Errorf("Clamped() = %v, want %v", got, want)
	}
}

func TestColorConversionRoundTrip(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 1}
	got := FromColor(c.Color())
	if !colorsClose(got, c, 1.0/255) {
		t.Errorf("FromColor(Color()) = %v, want %v", got, c)
	}
}

func TestColorClampsOutOfRange(t *testing.T) {
	c := RGBA{R: 2, G: -1, B: 0, A: 1}
	nrgba := c.Color().(color.NRGBA)
	if nrgba.R != 255 || nrgba.G != 0 {
		t.Errorf("Color() = %v, want channels clamped", nrgba)
	}
}
