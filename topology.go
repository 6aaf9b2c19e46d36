package vcolor

// TopologyExtentClampMode controls how per-edge strip extents combine
// when several seed edges are painted together.
type TopologyExtentClampMode int

const (
	// ClampMinimum grades every edge over the shortest extent found.
	ClampMinimum TopologyExtentClampMode = iota
	// ClampMaximum grades every edge over the longest extent found.
	ClampMaximum
	// ClampIndividual grades each edge over its own extent.
	ClampIndividual
)

// maxEdgeTopologyExtent caps the face strip walk so malformed meshes
// cannot loop forever.
const maxEdgeTopologyExtent = 10000

// TopologyGradient holds the parameters of one topology-driven gradient:
// the gradient flows along quad strips starting from the selected edges
// rather than through space.
type TopologyGradient struct {
	Mirror bool

	Interp InterpMode
	Blend  BlendMode
	Clip   bool

	FactorBegin, FactorEnd float64
	ColorBegin, ColorEnd   RGBA

	// Distance is the gradient length in face steps. Fractional values
	// paint a partial last step; negative values flip Direction.
	Distance  float64
	ClampMode TopologyExtentClampMode

	// Direction picks which way each strip walks from its seed edge.
	Direction Vec3
}

// PaintTopologyGradient paints a gradient along the quad strip behind
// every selected edge. Strips end at non-manifold edges, at wraparound,
// at triangles (inclusive) or at n-gons (exclusive). With Mirror set the
// whole pass runs a second time in the opposite direction.
func PaintTopologyGradient(m Mesh, g TopologyGradient) error {
	layer, err := ResolveActive(m)
	if err != nil {
		return err
	}

	var edges []EdgeID
	for e := 0; e < m.EdgeCount(); e++ {
		if m.EdgeSelected(EdgeID(e)) {
			edges = append(edges, EdgeID(e))
		}
	}
	if len(edges) == 0 {
		return ctxErrorf("no edges selected")
	}

	if g.Distance == 0 {
		return nil
	}
	dir := g.Direction
	if lengthSquared3(dir) == 0 {
		return nil
	}

	distance := g.Distance
	if distance < 0 {
		dir = neg3(dir)
		distance = -distance
	}

	col0 := layer.BrushColor(g.ColorBegin)
	col1 := layer.BrushColor(g.ColorEnd)
	clip := g.Clip
	if layer.Byte {
		clip = false
	}

	paintTopologyGradientPass(m, layer, edges, g, distance, clip, col0, col1, dir)
	if g.Mirror {
		paintTopologyGradientPass(m, layer, edges, g, distance, clip, col0, col1, neg3(dir))
	}
	return nil
}

// stripStep crosses the current quad to its opposite edge and then over
// that edge into the adjacent face.
func stripStep(m Mesh, c CornerID) CornerID {
	return m.RadialNextCorner(m.NextCorner(m.NextCorner(c)))
}

// findFirstLoop picks, among the faces adjacent to the edge, the one
// whose strip step is best aligned with direction. Ties keep the first
// face.
func findFirstLoop(m Mesh, e EdgeID, direction Vec3) (CornerID, bool) {
	corners := m.EdgeCorners(e)
	if len(corners) == 0 {
		return 0, false
	}

	a0 := corners[0]
	a1 := stripStep(m, a0)
	aDiff := stepAlignment(m, a0, a1, direction)

	if len(corners) < 2 {
		// A lone face only qualifies when its step does not point away
		// from the direction.
		if aDiff < 0 {
			return 0, false
		}
		return a0, true
	}

	b0 := corners[1]
	b1 := stripStep(m, b0)
	bDiff := stepAlignment(m, b0, b1, direction)

	if bDiff > aDiff {
		return b0, true
	}
	return a0, true
}

func stepAlignment(m Mesh, from, to CornerID, direction Vec3) float64 {
	step := sub3(m.Position(m.CornerVertex(to)), m.Position(m.CornerVertex(from)))
	return dot3(normalize3(step), direction)
}

// findEdgeExtent walks the face strip from the edge and counts how many
// face steps the gradient can take before the strip ends.
func findEdgeExtent(m Mesh, e EdgeID, direction Vec3) int {
	var loop0 CornerID
	var firstFace FaceID
	for faceIdx := 1; faceIdx < maxEdgeTopologyExtent; faceIdx++ {
		if faceIdx == 1 {
			var ok bool
			loop0, ok = findFirstLoop(m, e, direction)
			if !ok {
				return 0
			}
			firstFace = m.CornerFace(loop0)
		} else {
			loop0 = stripStep(m, loop0)
		}

		loop1 := m.NextCorner(loop0)
		loopFront0 := m.NextCorner(loop1)

		curFace := m.CornerFace(loop0)
		nextFace := m.CornerFace(m.RadialNextCorner(loopFront0))

		if nextFace == curFace {
			// Boundary or non-manifold front edge.
			return faceIdx
		}
		if nextFace == firstFace {
			// Wrapped around.
			return faceIdx
		}

		switch n := len(m.FaceCorners(curFace)); {
		case n == 3:
			return faceIdx
		case n > 4:
			return faceIdx - 1
		}
	}
	Logger().Warn("face strip walk hit the iteration cap",
		"edge", int(e), "cap", maxEdgeTopologyExtent)
	return 0
}

func paintTopologyGradientPass(m Mesh, layer Layer, edges []EdgeID, g TopologyGradient, distance float64, clip bool, col0, col1 RGBA, direction Vec3) {
	edgeExtents := make([]int, len(edges))
	minimumExtent := maxEdgeTopologyExtent
	maximumExtent := 0
	for i, e := range edges {
		ext := findEdgeExtent(m, e, direction)
		edgeExtents[i] = ext
		if ext < minimumExtent {
			minimumExtent = ext
		}
		if ext > maximumExtent {
			maximumExtent = ext
		}
	}

	factorA := g.FactorBegin
	factorB := g.FactorEnd - g.FactorBegin

	for i, e := range edges {
		var extent float64
		switch g.ClampMode {
		case ClampMaximum:
			extent = min(distance, float64(maximumExtent))
		case ClampMinimum:
			extent = min(distance, float64(minimumExtent))
		case ClampIndividual:
			extent = min(float64(edgeExtents[i]), distance)
		}

		lastFaceIdx := int(extent)
		if lastFaceIdx < 1 {
			lastFaceIdx = 1
		}
		denom := max(extent, 1)

		integerDistance := extent == float64(int(extent))
		isPartialStep := extent < 1

		stepCount := lastFaceIdx
		if !isPartialStep {
			stepCount++
		}

		var loop0 CornerID
		var firstFace FaceID
		prevFace := FaceID(-1)
		haveLoop := false
		for faceIdx := 0; faceIdx < stepCount; faceIdx++ {
			if !haveLoop {
				var ok bool
				loop0, ok = findFirstLoop(m, e, direction)
				if !ok {
					// Wire edge with no adjacent face.
					break
				}
				haveLoop = true
				firstFace = m.CornerFace(loop0)
			} else {
				loop0 = stripStep(m, loop0)
			}

			loop1 := m.NextCorner(loop0)

			loopBack0 := m.RadialNextCorner(loop0)
			loopBack1 := m.NextCorner(loopBack0)

			loopFront0 := m.NextCorner(loop1)

			curFace := m.CornerFace(loop0)
			faceCorners := len(m.FaceCorners(curFace))
			isNgon := faceCorners > 4

			weight := float64(faceIdx) / denom
			blendFac := factorA + weight*factorB
			blendCol := Interp(g.Interp, weight, col0, col1)

			if faceIdx != lastFaceIdx && faceCorners == 3 {
				// A triangle has no far edge to continue the strip. Paint
				// its near corners with this step's weight and its apex
				// with the next step's, then stop.
				if !layer.Corner {
					layer.Modify(Element(m.CornerVertex(loop0)), g.Blend, clip, blendFac, blendCol)
					layer.Modify(Element(m.CornerVertex(loop1)), g.Blend, clip, blendFac, blendCol)
				} else {
					if faceIdx != 0 {
						layer.Modify(Element(loopBack0), g.Blend, clip, blendFac, blendCol)
						layer.Modify(Element(loopBack1), g.Blend, clip, blendFac, blendCol)
					}
					layer.Modify(Element(loop0), g.Blend, clip, blendFac, blendCol)
					layer.Modify(Element(loop1), g.Blend, clip, blendFac, blendCol)
				}

				weight = float64(faceIdx+1) / denom
				blendFac = factorA + weight*factorB
				blendCol = Interp(g.Interp, weight, col0, col1)
				if !layer.Corner {
					layer.Modify(Element(m.CornerVertex(loopFront0)), g.Blend, clip, blendFac, blendCol)
				} else {
					layer.Modify(Element(loopFront0), g.Blend, clip, blendFac, blendCol)
				}
				break
			}

			if !layer.Corner {
				layer.Modify(Element(m.CornerVertex(loop0)), g.Blend, clip, blendFac, blendCol)
				layer.Modify(Element(m.CornerVertex(loop1)), g.Blend, clip, blendFac, blendCol)
			} else {
				switch {
				case integerDistance:
					// Snapped distance. Consecutive steps share the edge
					// between them, so each face paints its back corners
					// and the previous face's front pair is skipped.
					if faceIdx != 0 {
						layer.Modify(Element(loopBack0), g.Blend, clip, blendFac, blendCol)
						layer.Modify(Element(loopBack1), g.Blend, clip, blendFac, blendCol)
					}
					if faceIdx != lastFaceIdx && !isNgon {
						layer.Modify(Element(loop0), g.Blend, clip, blendFac, blendCol)
						layer.Modify(Element(loop1), g.Blend, clip, blendFac, blendCol)
					}
				case isPartialStep:
					// Less than one full step. Only the seed edge's own
					// corners are touched.
					layer.Modify(Element(loop0), g.Blend, clip, blendFac, blendCol)
					layer.Modify(Element(loop1), g.Blend, clip, blendFac, blendCol)
				default:
					// Decimal distance. The last face's near corners take
					// the final weight as well.
					if faceIdx != 0 {
						layer.Modify(Element(loopBack0), g.Blend, clip, blendFac, blendCol)
						layer.Modify(Element(loopBack1), g.Blend, clip, blendFac, blendCol)
					}
					layer.Modify(Element(loop0), g.Blend, clip, blendFac, blendCol)
					layer.Modify(Element(loop1), g.Blend, clip, blendFac, blendCol)
				}
			}

			if faceIdx != 0 && curFace == firstFace {
				// Wrapped around.
				break
			}
			if prevFace == curFace {
				// Non-manifold.
				break
			}
			prevFace = curFace
		}
	}
}
