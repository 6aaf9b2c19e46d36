// Package preset persists vertex color tool defaults as YAML: blend and
// interpolation modes by their canonical names, gradient shape flags,
// factors and endpoint colors.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meshkit/vcolor"
)

// Color is an RGBA quadruple serialized as a flow list.
type Color [4]float64

// RGBA converts to the core color type.
func (c Color) RGBA() vcolor.RGBA {
	return vcolor.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// FromRGBA converts from the core color type.
func FromRGBA(c vcolor.RGBA) Color {
	return Color{c.R, c.G, c.B, c.A}
}

// Preset is one saved tool configuration. Enum fields hold canonical
// mode names and are validated when resolved.
type Preset struct {
	Blend  string `yaml:"blend"`
	Interp string `yaml:"interp"`

	FactorBegin float64 `yaml:"factor_begin"`
	FactorEnd   float64 `yaml:"factor_end"`
	ColorBegin  Color   `yaml:"color_begin"`
	ColorEnd    Color   `yaml:"color_end"`

	GradientType string `yaml:"gradient_type"`
	Extend       string `yaml:"extend"`
	SharpEdge    string `yaml:"sharp_edge"`
	SelectedOnly bool   `yaml:"selected_only"`
	Clip         bool   `yaml:"clip"`
}

// Default returns the factory preset: a white-to-black clipped linear
// mix gradient at full strength.
func Default() Preset {
	return Preset{
		Blend:        vcolor.BlendMix.String(),
		Interp:       vcolor.InterpRGBLinear.String(),
		FactorBegin:  1,
		FactorEnd:    1,
		ColorBegin:   FromRGBA(vcolor.White),
		ColorEnd:     FromRGBA(vcolor.Black),
		GradientType: vcolor.GradientLinear.String(),
		Extend:       vcolor.ExtendOff.String(),
		SharpEdge:    vcolor.SharpEdgeOff.String(),
		Clip:         true,
	}
}

// Load reads a preset file. Missing fields keep their Default values, so
// older files stay loadable.
func Load(path string) (Preset, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("preset: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("preset: parsing %s: %w", path, err)
	}
	if _, err := p.Modes(); err != nil {
		return p, err
	}
	return p, nil
}

// Save writes the preset to a file, creating or truncating it.
func Save(path string, p Preset) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	return nil
}

// Modes resolves and validates the preset's enum names.
func (p Preset) Modes() (Modes, error) {
	var m Modes
	var ok bool
	if m.Blend, ok = vcolor.ParseBlendMode(p.Blend); !ok {
		return m, fmt.Errorf("preset: unknown blend mode %q", p.Blend)
	}
	if m.Interp, ok = vcolor.ParseInterpMode(p.Interp); !ok {
		return m, fmt.Errorf("preset: unknown interpolation mode %q", p.Interp)
	}
	if m.GradientType, ok = vcolor.ParseGradientType(p.GradientType); !ok {
		return m, fmt.Errorf("preset: unknown gradient type %q", p.GradientType)
	}
	if m.Extend, ok = vcolor.ParseGradientExtend(p.Extend); !ok {
		return m, fmt.Errorf("preset: unknown extend mode %q", p.Extend)
	}
	if m.SharpEdge, ok = vcolor.ParseSharpEdgeMode(p.SharpEdge); !ok {
		return m, fmt.Errorf("preset: unknown sharp edge mode %q", p.SharpEdge)
	}
	return m, nil
}

// Modes holds the preset's enum fields resolved to core types.
type Modes struct {
	Blend        vcolor.BlendMode
	Interp       vcolor.InterpMode
	GradientType vcolor.GradientType
	Extend       vcolor.GradientExtend
	SharpEdge    vcolor.SharpEdgeMode
}

// Gradient assembles a core gradient from the preset and two endpoints.
func (p Preset) Gradient(start, end vcolor.Vec3) (vcolor.Gradient, error) {
	m, err := p.Modes()
	if err != nil {
		return vcolor.Gradient{}, err
	}
	return vcolor.Gradient{
		Type:         m.GradientType,
		SelectedOnly: p.SelectedOnly,
		Extend:       m.Extend,
		SharpEdge:    m.SharpEdge,
		Interp:       m.Interp,
		Blend:        m.Blend,
		Clip:         p.Clip,
		FactorBegin:  p.FactorBegin,
		FactorEnd:    p.FactorEnd,
		ColorBegin:   p.ColorBegin.RGBA(),
		ColorEnd:     p.ColorEnd.RGBA(),
		Start:        start,
		End:          end,
	}, nil
}
