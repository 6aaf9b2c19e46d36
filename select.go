package vcolor

import "math"

// Selection operations: flood-fill region growing over mesh adjacency and
// similarity matching against the current selection's color signature.
// These are the only operations that write selection flags.

// colorDistance returns the Euclidean length of the channel difference,
// over RGB only when ignoreAlpha is set.
func colorDistance(a, b RGBA, ignoreAlpha bool) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	sum := dr*dr + dg*dg + db*db
	if !ignoreAlpha {
		da := a.A - b.A
		sum += da * da
	}
	return math.Sqrt(sum)
}

// faceAverageColor averages a face's corner colors.
func faceAverageColor(m Mesh, layer Layer, f FaceID) RGBA {
	corners := m.FaceCorners(f)
	elems := make([]Element, len(corners))
	for i, c := range corners {
		elems[i] = Element(c)
	}
	return AverageColor(layer, elems)
}

// SelectLinked grows the selection outward from the active element,
// absorbing neighbors whose color is within threshold. For corner-domain
// attributes the walk runs over faces (comparing corner-color averages),
// otherwise over vertices. With deselect set, flags are cleared instead.
// checkCorners widens face adjacency from shared-edge to shared-vertex.
func SelectLinked(m Mesh, checkCorners bool, threshold float64, ignoreAlpha, deselect bool) error {
	layer, err := ResolveActive(m)
	if err != nil {
		return err
	}

	if layer.Corner {
		face, ok := m.ActiveFace()
		if !ok {
			return ctxErrorf("no active face")
		}
		floodFillFaces(m, layer, face, threshold, ignoreAlpha, !deselect, checkCorners)
		return nil
	}

	vert, ok := m.ActiveVertex()
	if !ok {
		return ctxErrorf("no active vertex")
	}
	floodFillVertices(m, layer, vert, threshold, ignoreAlpha, !deselect)
	return nil
}

// floodFillVertices runs a breadth-first walk over vertex-edge adjacency.
// A neighbor is absorbed iff its flag differs from selectValue and its
// color is within threshold of the seed color; absorbed vertices are
// enqueued exactly once, so the queue length is bounded by the vertex
// count even on cyclic meshes.
func floodFillVertices(m Mesh, layer Layer, seed VertexID, threshold float64, ignoreAlpha, selectValue bool) {
	color := layer.Color(Element(seed))

	queue := []VertexID{seed}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range m.VertexEdges(v) {
			other := m.OtherVertex(e, v)
			if m.VertexSelected(other) == selectValue {
				// Skip if already done
				continue
			}
			if colorDistance(layer.Color(Element(other)), color, ignoreAlpha) <= threshold {
				m.SetVertexSelected(other, selectValue)
				queue = append(queue, other)
			}
		}
	}
}

// floodFillFaces is the face-domain flood fill. Face color is the average
// of its corner colors. Adjacency is shared-vertex when checkCorners is
// set, otherwise shared-edge via radial corner traversal; a boundary edge
// (radial next is the corner itself) contributes no neighbor.
func floodFillFaces(m Mesh, layer Layer, seed FaceID, threshold float64, ignoreAlpha, selectValue, checkCorners bool) {
	color := faceAverageColor(m, layer, seed)

	queue := []FaceID{seed}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		var neighbors []FaceID
		if checkCorners {
			for _, c := range m.FaceCorners(f) {
				neighbors = append(neighbors, m.VertexFaces(m.CornerVertex(c))...)
			}
		} else {
			for _, c := range m.FaceCorners(f) {
				r := m.RadialNextCorner(c)
				if r != c {
					neighbors = append(neighbors, m.CornerFace(r))
				}
			}
		}

		for _, other := range neighbors {
			if m.FaceSelected(other) == selectValue {
				continue
			}
			if colorDistance(faceAverageColor(m, layer, other), color, ignoreAlpha) <= threshold {
				m.SetFaceSelected(other, selectValue)
				queue = append(queue, other)
			}
		}
	}
}

// signatureKind describes the shape of the current selection for
// similarity matching.
type signatureKind int

const (
	// signatureAverage compares a single averaged color.
	signatureAverage signatureKind = iota
	// signatureVertex holds the corner-color multiset of one selected
	// vertex.
	signatureVertex
	// signatureEdge holds the corner colors of one selected edge plus
	// their radial neighbors.
	signatureEdge
)

type signature struct {
	kind    signatureKind
	colors  []RGBA // corner colors for vertex/edge kinds
	average RGBA   // averaged color for signatureAverage
}

// selectionSignature derives the selection's color signature. Corner
// domain distinguishes one-vertex and one-edge selections so seams can be
// matched corner by corner; everything else collapses to an average.
func selectionSignature(m Mesh, layer Layer) signature {
	if layer.Corner {
		switch {
		case m.SelectedVertexCount() == 1:
			for v := 0; v < m.VertexCount(); v++ {
				if !m.VertexSelected(VertexID(v)) {
					continue
				}
				var colors []RGBA
				for _, c := range m.VertexCorners(VertexID(v)) {
					colors = append(colors, layer.Color(Element(c)))
				}
				return signature{kind: signatureVertex, colors: colors}
			}
		case m.SelectedVertexCount() == 2 && m.SelectedEdgeCount() == 1:
			for e := 0; e < m.EdgeCount(); e++ {
				if !m.EdgeSelected(EdgeID(e)) {
					continue
				}
				var colors []RGBA
				for _, c := range edgeSignatureCorners(m, EdgeID(e)) {
					colors = append(colors, layer.Color(Element(c)))
				}
				return signature{kind: signatureEdge, colors: colors}
			}
		case m.SelectedFaceCount() > 0:
			return signature{average: AverageColor(layer, Collect(m, layer, FilterSelected))}
		default:
			var elems []Element
			for v := 0; v < m.VertexCount(); v++ {
				if !m.VertexSelected(VertexID(v)) {
					continue
				}
				for _, c := range m.VertexCorners(VertexID(v)) {
					elems = append(elems, Element(c))
				}
			}
			return signature{average: AverageColor(layer, elems)}
		}
	}
	return signature{average: AverageColor(layer, Collect(m, layer, FilterSelected))}
}

// edgeSignatureCorners returns an edge's corners followed by each
// corner's radial neighbor, the 2×linked-loop-count set a seam edge
// exposes.
func edgeSignatureCorners(m Mesh, e EdgeID) []CornerID {
	loops := m.EdgeCorners(e)
	out := make([]CornerID, 0, len(loops)*2)
	out = append(out, loops...)
	for _, c := range loops {
		out = append(out, m.RadialNextCorner(c))
	}
	return out
}

// greedyMatchDistance computes the average matching distance between a
// signature and a candidate color multiset of the same size: for each
// signature color the closest remaining candidate is removed and half its
// Euclidean distance accumulated. Nearest-available pairing approximates
// a permutation-invariant distance cheaply; it is not an optimal
// assignment, but it is stable, and corner orderings differ across meshes
// so an order-sensitive comparison would miss valid matches.
func greedyMatchDistance(sig, candidates []RGBA, ignoreAlpha bool) float64 {
	remaining := append([]RGBA(nil), candidates...)

	cumulative := 0.0
	for _, sc := range sig {
		best := 0
		bestDist := math.Inf(1)
		for i, c := range remaining {
			if d := colorDistance(c, sc, ignoreAlpha) * 0.5; d < bestDist {
				best, bestDist = i, d
			}
		}
		remaining = append(remaining[:best], remaining[best+1:]...)
		cumulative += bestDist
	}
	return cumulative / float64(len(sig))
}

// SelectSimilar selects every element whose color signature is within
// threshold of the current selection's signature. A single selected
// vertex matches vertices with the same corner count, a single selected
// edge matches edges with the same linked-loop count; any other selection
// shape compares plain averaged colors.
func SelectSimilar(m Mesh, threshold float64, ignoreAlpha bool) error {
	layer, err := ResolveActive(m)
	if err != nil {
		return err
	}

	sig := selectionSignature(m, layer)

	switch sig.kind {
	case signatureVertex:
		for v := 0; v < m.VertexCount(); v++ {
			corners := m.VertexCorners(VertexID(v))
			if len(corners) != len(sig.colors) {
				continue
			}
			colors := make([]RGBA, len(corners))
			for i, c := range corners {
				colors[i] = layer.Color(Element(c))
			}
			if greedyMatchDistance(sig.colors, colors, ignoreAlpha) > threshold {
				continue
			}
			m.SetVertexSelected(VertexID(v), true)
		}

	case signatureEdge:
		for e := 0; e < m.EdgeCount(); e++ {
			loops := m.EdgeCorners(EdgeID(e))
			if len(loops)*2 != len(sig.colors) {
				continue
			}
			all := edgeSignatureCorners(m, EdgeID(e))
			colors := make([]RGBA, len(all))
			for i, c := range all {
				colors[i] = layer.Color(Element(c))
			}
			if greedyMatchDistance(sig.colors, colors, ignoreAlpha) > threshold {
				continue
			}
			m.SetEdgeSelected(EdgeID(e), true)
		}

	default:
		if layer.Corner {
			for f := 0; f < m.FaceCount(); f++ {
				color := faceAverageColor(m, layer, FaceID(f))
				if colorDistance(color, sig.average, ignoreAlpha)*0.5 > threshold {
					continue
				}
				m.SetFaceSelected(FaceID(f), true)
			}
		} else {
			for v := 0; v < m.VertexCount(); v++ {
				color := layer.Color(Element(v))
				if colorDistance(color, sig.average, ignoreAlpha)*0.5 > threshold {
					continue
				}
				m.SetVertexSelected(VertexID(v), true)
			}
		}
	}
	return nil
}
