package preset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meshkit/vcolor"
)

func TestDefaultResolves(t *testing.T) {
	m, err := Default().Modes()
	if err != nil {
		t.Fatalf("Modes: %v", err)
	}
	if m.Blend != vcolor.BlendMix {
		t.Errorf("Blend = %v, want mix", m.Blend)
	}
	if m.Interp != vcolor.InterpRGBLinear {
		t.Errorf("Interp = %v, want linear rgb", m.Interp)
	}
	if m.GradientType != vcolor.GradientLinear || m.Extend != vcolor.ExtendOff || m.SharpEdge != vcolor.SharpEdgeOff {
		t.Errorf("shape modes = %v/%v/%v", m.GradientType, m.Extend, m.SharpEdge)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := Default()
	p.Blend = vcolor.BlendScreen.String()
	p.Interp = vcolor.InterpHSVCW.String()
	p.FactorBegin = 0.25
	p.FactorEnd = 0.75
	p.ColorBegin = Color{0.1, 0.2, 0.3, 1}
	p.ColorEnd = Color{0.9, 0.8, 0.7, 0.5}
	p.GradientType = vcolor.GradientRadial.String()
	p.Extend = vcolor.ExtendBoth.String()
	p.SelectedOnly = true
	p.Clip = false

	path := filepath.Join(t.TempDir(), "brush.yaml")
	if err := Save(path, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != p {
		t.Errorf("round trip changed the preset:\n got %+v\nwant %+v", got, p)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brush.yaml")
	if err := os.WriteFile(path, []byte("blend: ADD\nfactor_end: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Blend != vcolor.BlendAdd.String() {
		t.Errorf("Blend = %q", p.Blend)
	}
	if p.FactorEnd != 0.5 {
		t.Errorf("FactorEnd = %v", p.FactorEnd)
	}
	// Untouched fields stay at their factory values.
	if p.FactorBegin != 1 || !p.Clip || p.Interp != vcolor.InterpRGBLinear.String() {
		t.Errorf("defaults lost: %+v", p)
	}
}

func TestLoadRejectsUnknownModes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"blend", "blend: GLOW\n"},
		{"interp", "interp: BEZIER\n"},
		{"gradient type", "gradient_type: CONICAL\n"},
		{"extend", "extend: SIDEWAYS\n"},
		{"sharp edge", "sharp_edge: MAYBE\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "brush.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("no error")
			}
			if !strings.Contains(err.Error(), "preset:") {
				t.Errorf("error %q missing package prefix", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("no error for a missing file")
	}
}

func TestGradientAssembly(t *testing.T) {
	p := Default()
	p.GradientType = vcolor.GradientRadial.String()
	p.FactorEnd = 0.5
	p.ColorEnd = Color{1, 0, 0, 1}

	g, err := p.Gradient(vcolor.V3(0, 0, 0), vcolor.V3(3, 0, 0))
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	if g.Type != vcolor.GradientRadial {
		t.Errorf("Type = %v", g.Type)
	}
	if g.Start != vcolor.V3(0, 0, 0) || g.End != vcolor.V3(3, 0, 0) {
		t.Errorf("endpoints = %v, %v", g.Start, g.End)
	}
	if g.FactorEnd != 0.5 || g.ColorEnd != (vcolor.RGBA{R: 1, A: 1}) {
		t.Errorf("end factor/color = %v, %v", g.FactorEnd, g.ColorEnd)
	}
	if !g.Clip || g.Blend != vcolor.BlendMix {
		t.Errorf("Clip = %v, Blend = %v", g.Clip, g.Blend)
	}

	p.Extend = "DIAGONAL"
	if _, err := p.Gradient(vcolor.V3(0, 0, 0), vcolor.V3(1, 0, 0)); err == nil {
		t.Error("bad extend mode accepted")
	}
}

func TestColorConversion(t *testing.T) {
	c := vcolor.RGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.4}
	if got := FromRGBA(c).RGBA(); got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}
