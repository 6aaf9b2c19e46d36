package meshmem

import (
	"fmt"
	"math"

	"github.com/meshkit/vcolor"
)

// Attribute is one color attribute owned by a Mesh. Float precision
// stores full-range linear RGBA; byte precision stores quantized
// sRGB-encoded channels, clamping on write the way 8-bit storage does.
type Attribute struct {
	name      string
	domain    vcolor.Domain
	precision vcolor.Precision

	floats []vcolor.RGBA
	bytes  [][4]uint8
}

func (a *Attribute) Name() string                { return a.name }
func (a *Attribute) Domain() vcolor.Domain       { return a.domain }
func (a *Attribute) Precision() vcolor.Precision { return a.precision }

// Len returns the number of stored elements.
func (a *Attribute) Len() int {
	if a.precision == vcolor.PrecisionByte {
		return len(a.bytes)
	}
	return len(a.floats)
}

func (a *Attribute) color(i int) vcolor.RGBA {
	if a.precision == vcolor.PrecisionByte {
		b := a.bytes[i]
		return vcolor.RGBA{
			R: float64(b[0]) / 255,
			G: float64(b[1]) / 255,
			B: float64(b[2]) / 255,
			A: float64(b[3]) / 255,
		}
	}
	return a.floats[i]
}

func (a *Attribute) setColor(i int, c vcolor.RGBA) {
	if a.precision == vcolor.PrecisionByte {
		a.bytes[i] = [4]uint8{
			quantize(c.R),
			quantize(c.G),
			quantize(c.B),
			quantize(c.A),
		}
		return
	}
	a.floats[i] = c
}

// quantize maps a channel to 8 bits, clamping and rounding to nearest.
func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Floor(v*255 + 0.5))
}

func (a *Attribute) VertexColor(v vcolor.VertexID) vcolor.RGBA { return a.color(int(v)) }

func (a *Attribute) SetVertexColor(v vcolor.VertexID, c vcolor.RGBA) { a.setColor(int(v), c) }

func (a *Attribute) CornerColor(c vcolor.CornerID) vcolor.RGBA { return a.color(int(c)) }

func (a *Attribute) SetCornerColor(c vcolor.CornerID, col vcolor.RGBA) { a.setColor(int(c), col) }

// Fill sets every element to the given color.
func (a *Attribute) Fill(c vcolor.RGBA) {
	for i := 0; i < a.Len(); i++ {
		a.setColor(i, c)
	}
}

// AddAttribute creates a color attribute sized for the mesh and the
// given domain. The first attribute added becomes active.
func (m *Mesh) AddAttribute(name string, domain vcolor.Domain, precision vcolor.Precision) (*Attribute, error) {
	if name == "" {
		return nil, fmt.Errorf("meshmem: attribute name is empty")
	}
	if _, ok := m.AttributeByName(name); ok {
		return nil, fmt.Errorf("meshmem: attribute %q already exists", name)
	}

	n := m.VertexCount()
	if domain == vcolor.DomainCorner {
		n = m.CornerCount()
	}
	a := &Attribute{name: name, domain: domain, precision: precision}
	if precision == vcolor.PrecisionByte {
		a.bytes = make([][4]uint8, n)
	} else {
		a.floats = make([]vcolor.RGBA, n)
	}

	m.attrs = append(m.attrs, a)
	if m.activeAttr < 0 {
		m.activeAttr = len(m.attrs) - 1
	}
	return a, nil
}

// RemoveAttribute drops an attribute by name. Removing the active
// attribute leaves the mesh with no active attribute.
func (m *Mesh) RemoveAttribute(name string) error {
	for i, a := range m.attrs {
		if a.name != name {
			continue
		}
		m.attrs = append(m.attrs[:i], m.attrs[i+1:]...)
		switch {
		case m.activeAttr == i:
			m.activeAttr = -1
		case m.activeAttr > i:
			m.activeAttr--
		}
		return nil
	}
	return fmt.Errorf("meshmem: no attribute named %q", name)
}

// SetActiveAttribute marks the named attribute as active.
func (m *Mesh) SetActiveAttribute(name string) error {
	for i, a := range m.attrs {
		if a.name == name {
			m.activeAttr = i
			return nil
		}
	}
	return fmt.Errorf("meshmem: no attribute named %q", name)
}

// AttributeNames lists the attributes in creation order.
func (m *Mesh) AttributeNames() []string {
	names := make([]string, len(m.attrs))
	for i, a := range m.attrs {
		names[i] = a.name
	}
	return names
}

func (m *Mesh) ActiveAttribute() (vcolor.Attribute, bool) {
	if m.activeAttr < 0 {
		return nil, false
	}
	return m.attrs[m.activeAttr], true
}

func (m *Mesh) AttributeByName(name string) (vcolor.Attribute, bool) {
	for _, a := range m.attrs {
		if a.name == name {
			return a, true
		}
	}
	return nil, false
}
