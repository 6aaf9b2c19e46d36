package vcolor

import "math"

// Whole-layer and selection editing operations beyond the painters:
// brightness/contrast, clamping, merging and brush application.

// BrightnessContrast remaps the RGB channels of the active layer with a
// multiplier/offset derived from brightness and contrast (Werner D.
// Streidt's mapping). brightness and contrast use the familiar editor
// ranges (roughly -100..100). Alpha is untouched.
func BrightnessContrast(m Mesh, brightness, contrast float64, selectedOnly, clip bool) error {
	layer, err := ResolveActive(m)
	if err != nil {
		return err
	}

	filter := FilterAll
	if selectedOnly {
		filter = FilterSelected
	}
	elems := Collect(m, layer, filter)

	brightness /= 100.0
	delta := contrast / 200.0

	var multiplier, offset float64
	if contrast > 0 {
		multiplier = 1.0 - delta*2.0
		multiplier = 1.0 / math.Max(multiplier, 1.192092896e-07)
		offset = multiplier * (brightness - delta)
	} else {
		delta = -delta
		multiplier = math.Max(1.0-delta*2.0, 0.0)
		offset = multiplier*brightness + delta
	}

	for _, e := range elems {
		c := layer.Color(e)
		c.R = c.R*multiplier + offset
		c.G = c.G*multiplier + offset
		c.B = c.B*multiplier + offset
		if clip {
			c.R = clamp01(c.R)
			c.G = clamp01(c.G)
			c.B = clamp01(c.B)
		}
		layer.SetColor(e, c)
	}
	return nil
}

// ClipColors clamps every channel of the active layer to [0, 1].
func ClipColors(m Mesh) error {
	layer, err := ResolveActive(m)
	if err != nil {
		return err
	}
	for _, e := range Collect(m, layer, FilterAll) {
		layer.SetColor(e, layer.Color(e).Clamped())
	}
	return nil
}

// CopyActiveToSelected writes the average color of the active element's
// corners (or the active vertex's color) over every selected element.
func CopyActiveToSelected(m Mesh) error {
	layer, err := ResolveActive(m)
	if err != nil {
		return err
	}

	selected := Collect(m, layer, FilterSelected)
	active := Collect(m, layer, FilterActive)

	if len(active) == 0 {
		if layer.Corner {
			return ctxErrorf("active element has to be a face when the color attribute domain is Corner")
		}
		return ctxErrorf("no active element found")
	}

	activeColor := AverageColor(layer, active)
	for _, e := range selected {
		layer.SetColor(e, activeColor)
	}
	return nil
}

// SetSelectionColor blends a brush color into the current selection.
// color is supplied in linear light; byte layers receive it sRGB-encoded.
// With activeCornerOnly set, only the corners of selected faces that
// reference the active vertex are painted (point domain: only the active
// vertex), which is how a single seam corner gets retouched.
func SetSelectionColor(m Mesh, activeCornerOnly bool, mode BlendMode, factor float64, color RGBA, clip bool) error {
	layer, err := ResolveActive(m)
	if err != nil {
		return err
	}
	brush := layer.BrushColor(color)

	var elems []Element
	if activeCornerOnly {
		if _, ok := m.ActiveVertex(); !ok {
			return ctxErrorf("no active vertex found")
		}
		elems = Collect(m, layer, FilterActiveVertexCorners)
	} else if layer.Corner {
		// Corners of selected faces, plus corners of selected vertices
		// that do not belong to any selected face (stray verts keep
		// getting painted at seams).
		inSelectedFace := make(map[VertexID]bool)
		for fi := 0; fi < m.FaceCount(); fi++ {
			if !m.FaceSelected(FaceID(fi)) {
				continue
			}
			for _, c := range m.FaceCorners(FaceID(fi)) {
				elems = append(elems, Element(c))
				inSelectedFace[m.CornerVertex(c)] = true
			}
		}
		for v := 0; v < m.VertexCount(); v++ {
			vid := VertexID(v)
			if !m.VertexSelected(vid) || inSelectedFace[vid] {
				continue
			}
			for _, c := range m.VertexCorners(vid) {
				elems = append(elems, Element(c))
			}
		}
	} else {
		elems = Collect(m, layer, FilterSelected)
	}

	for _, e := range elems {
		layer.Modify(e, mode, clip, factor, brush)
	}
	return nil
}

// SelectionColor returns the averaged color of the current selection
// signature in linear light (byte layers are decoded before returning).
func SelectionColor(m Mesh) (RGBA, error) {
	layer, err := ResolveActive(m)
	if err != nil {
		return RGBA{}, err
	}

	sig := selectionSignature(m, layer)

	out := sig.average
	if sig.kind != signatureAverage {
		var sum RGBA
		for _, c := range sig.colors {
			sum.R += c.R
			sum.G += c.G
			sum.B += c.B
			sum.A += c.A
		}
		n := float64(len(sig.colors))
		out = RGBA{R: sum.R / n, G: sum.G / n, B: sum.B / n, A: sum.A / n}
	}

	if layer.Byte {
		out = SRGBToLinearColor(out)
	}
	return out, nil
}

// ActiveCornerColor returns the color of the active vertex's corner in
// the first selected face, in linear light. All selected vertices must
// belong to that face, which pins the query to a single seam corner.
func ActiveCornerColor(m Mesh) (RGBA, error) {
	layer, err := ResolveActive(m)
	if err != nil {
		return RGBA{}, err
	}

	if !layer.Corner {
		return RGBA{}, ctxErrorf("color attribute domain has to be Corner")
	}

	active, ok := m.ActiveVertex()
	if !ok {
		return RGBA{}, ctxErrorf("no active vertex found")
	}

	var face FaceID
	found := false
	for fi := 0; fi < m.FaceCount(); fi++ {
		if m.FaceSelected(FaceID(fi)) {
			face = FaceID(fi)
			found = true
			break
		}
	}
	if !found {
		return RGBA{}, ctxErrorf("no faces selected")
	}

	corners := m.FaceCorners(face)
	if m.SelectedVertexCount() > len(corners) {
		return RGBA{}, ctxErrorf("all selected vertices must belong to the selected face")
	}

	for _, c := range corners {
		if m.CornerVertex(c) == active {
			out := layer.Color(Element(c))
			if layer.Byte {
				out = SRGBToLinearColor(out)
			}
			return out, nil
		}
	}
	return RGBA{}, ctxErrorf("active vertex is not part of the selected face")
}
