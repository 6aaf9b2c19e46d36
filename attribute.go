package vcolor

// Element is an index into the active layer's element space: a vertex
// index for point-domain layers, a corner index for corner-domain layers.
type Element int

// Layer is a resolved color attribute: the attribute handle plus the two
// facts every operation branches on.
type Layer struct {
	Attr   Attribute
	Corner bool // domain is Corner rather than Point
	Byte   bool // storage is byte-quantized, sRGB-encoded
}

// layerFor wraps an attribute into a Layer.
func layerFor(attr Attribute) Layer {
	return Layer{
		Attr:   attr,
		Corner: attr.Domain() == DomainCorner,
		Byte:   attr.Precision() == PrecisionByte,
	}
}

// ResolveActive resolves the mesh's active color attribute.
// It fails with a ContextError when no active attribute exists.
func ResolveActive(m Mesh) (Layer, error) {
	attr, ok := m.ActiveAttribute()
	if !ok {
		return Layer{}, ctxErrorf("no active color attribute")
	}
	l := layerFor(attr)
	Logger().Debug("resolved color attribute",
		"name", attr.Name(), "domain", attr.Domain().String(), "precision", attr.Precision().String())
	return l, nil
}

// Color reads an element's stored color.
func (l Layer) Color(e Element) RGBA {
	if l.Corner {
		return l.Attr.CornerColor(CornerID(e))
	}
	return l.Attr.VertexColor(VertexID(e))
}

// SetColor writes an element's stored color.
func (l Layer) SetColor(e Element, c RGBA) {
	if l.Corner {
		l.Attr.SetCornerColor(CornerID(e), c)
	} else {
		l.Attr.SetVertexColor(VertexID(e), c)
	}
}

// Modify reads the element's color, blends other into it and writes the
// result back, clamping each channel to [0, 1] when clip is set. Byte
// layers are effectively clipped by their storage either way.
func (l Layer) Modify(e Element, mode BlendMode, clip bool, factor float64, other RGBA) {
	out := Blend(mode, factor, l.Color(e), other)
	if clip {
		out = out.Clamped()
	}
	l.SetColor(e, out)
}

// BrushColor prepares an externally supplied linear-light color for
// writing through this layer: byte layers store sRGB, so the RGB
// channels are encoded first.
func (l Layer) BrushColor(c RGBA) RGBA {
	if l.Byte {
		return LinearToSRGBColor(c)
	}
	return c
}

// Filter selects which elements an operation touches.
type Filter int

const (
	// FilterAll visits every element of the layer's domain.
	FilterAll Filter = iota
	// FilterSelected visits elements of selected vertices/faces.
	FilterSelected
	// FilterActive visits the corners of the active face (corner domain)
	// or the singleton active vertex (point domain).
	FilterActive
	// FilterActiveVertexCorners visits corners of selected faces that
	// reference the active vertex (corner domain) or the active vertex
	// (point domain).
	FilterActiveVertexCorners
)

// Collect builds the ordered element list a filter describes. An empty
// result is not an error; callers needing a non-empty selection check it
// themselves.
func Collect(m Mesh, l Layer, f Filter) []Element {
	if l.Corner {
		return collectCorners(m, f)
	}
	return collectVertices(m, f)
}

func collectCorners(m Mesh, f Filter) []Element {
	var elems []Element
	switch f {
	case FilterAll:
		for fi := 0; fi < m.FaceCount(); fi++ {
			for _, c := range m.FaceCorners(FaceID(fi)) {
				elems = append(elems, Element(c))
			}
		}
	case FilterSelected:
		for fi := 0; fi < m.FaceCount(); fi++ {
			if !m.FaceSelected(FaceID(fi)) {
				continue
			}
			for _, c := range m.FaceCorners(FaceID(fi)) {
				elems = append(elems, Element(c))
			}
		}
	case FilterActive:
		active, ok := m.ActiveFace()
		if !ok {
			return nil
		}
		for _, c := range m.FaceCorners(active) {
			elems = append(elems, Element(c))
		}
	case FilterActiveVertexCorners:
		active, ok := m.ActiveVertex()
		if !ok {
			return nil
		}
		for fi := 0; fi < m.FaceCount(); fi++ {
			if !m.FaceSelected(FaceID(fi)) {
				continue
			}
			for _, c := range m.FaceCorners(FaceID(fi)) {
				if m.CornerVertex(c) == active {
					elems = append(elems, Element(c))
				}
			}
		}
	}
	return elems
}

func collectVertices(m Mesh, f Filter) []Element {
	var elems []Element
	switch f {
	case FilterAll:
		for v := 0; v < m.VertexCount(); v++ {
			elems = append(elems, Element(v))
		}
	case FilterSelected:
		for v := 0; v < m.VertexCount(); v++ {
			if m.VertexSelected(VertexID(v)) {
				elems = append(elems, Element(v))
			}
		}
	case FilterActive, FilterActiveVertexCorners:
		active, ok := m.ActiveVertex()
		if !ok {
			return nil
		}
		elems = append(elems, Element(active))
	}
	return elems
}

// AverageColor sums the colors of the given elements and divides by the
// count. An empty input yields the zero color, not an error.
func AverageColor(l Layer, elems []Element) RGBA {
	var sum RGBA
	if len(elems) == 0 {
		return sum
	}
	for _, e := range elems {
		c := l.Color(e)
		sum.R += c.R
		sum.G += c.G
		sum.B += c.B
		sum.A += c.A
	}
	n := float64(len(elems))
	return RGBA{R: sum.R / n, G: sum.G / n, B: sum.B / n, A: sum.A / n}
}

// SaveColors captures the active layer's full color array, ordered by
// Collect(FilterAll). The returned slice is the snapshot an interactive
// edit restores on cancel or between speculative repaints.
func SaveColors(m Mesh) ([]RGBA, error) {
	layer, err := ResolveActive(m)
	if err != nil {
		return nil, err
	}
	elems := Collect(m, layer, FilterAll)
	saved := make([]RGBA, len(elems))
	for i, e := range elems {
		saved[i] = layer.Color(e)
	}
	return saved, nil
}

// RestoreColors writes a snapshot captured by SaveColors back verbatim.
// The snapshot must cover the same element count as the active layer.
func RestoreColors(m Mesh, saved []RGBA) error {
	layer, err := ResolveActive(m)
	if err != nil {
		return err
	}
	elems := Collect(m, layer, FilterAll)
	if len(saved) != len(elems) {
		return ctxErrorf("snapshot holds %d colors, active attribute has %d elements", len(saved), len(elems))
	}
	for i, e := range elems {
		layer.SetColor(e, saved[i])
	}
	return nil
}

// MergeAttributes blends the colors of the attribute named from into the
// attribute named into, element by element over the whole mesh. Both
// attributes must exist and share a domain.
func MergeAttributes(m Mesh, from, into string, mode BlendMode, factor float64, clip bool) error {
	fromAttr, ok := m.AttributeByName(from)
	if !ok {
		return ctxErrorf("color attribute %q not found", from)
	}
	intoAttr, ok := m.AttributeByName(into)
	if !ok {
		return ctxErrorf("color attribute %q not found", into)
	}
	if fromAttr.Domain() != intoAttr.Domain() {
		return ctxErrorf("color attributes %q and %q have different domains", from, into)
	}

	fromLayer := layerFor(fromAttr)
	intoLayer := layerFor(intoAttr)

	for _, e := range Collect(m, intoLayer, FilterAll) {
		intoLayer.Modify(e, mode, clip, factor, fromLayer.Color(e))
	}
	return nil
}
