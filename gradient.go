package vcolor

// GradientType selects the gradient's spatial shape.
type GradientType int

const (
	// GradientLinear grades along the segment from Start to End.
	GradientLinear GradientType = iota
	// GradientRadial grades outward from Start; the radius is the
	// distance to End.
	GradientRadial
)

// SharpEdgeMode is the policy for how gradient boundaries interact with
// per-corner seams.
type SharpEdgeMode int

const (
	// SharpEdgeOff clips corners purely by their own position.
	SharpEdgeOff SharpEdgeMode = iota
	// SharpEdgeVertex lets a corner exactly on the boundary in when an
	// adjacent corner of the same face is strictly inside, smoothing
	// boundaries at shared vertices.
	SharpEdgeVertex
	// SharpEdgeFace additionally discards whole faces that are not
	// completely inside the non-extended directions.
	SharpEdgeFace
)

// GradientExtend tells which directions the gradient reaches past its
// segment or circle.
type GradientExtend int

const (
	// ExtendOff clips at both boundaries.
	ExtendOff GradientExtend = iota
	// ExtendForward continues past the end point (outward past the
	// radius for radial gradients).
	ExtendForward
	// ExtendBackward continues behind the start point.
	ExtendBackward
	// ExtendBoth never clips.
	ExtendBoth
)

// forward reports whether the mode extends past the far boundary.
func (e GradientExtend) forward() bool {
	return e == ExtendForward || e == ExtendBoth
}

// backward reports whether the mode extends behind the near boundary.
func (e GradientExtend) backward() bool {
	return e == ExtendBackward || e == ExtendBoth
}

// Gradient holds the parameters of one spatial gradient application.
// Constructed per invocation, never persisted.
type Gradient struct {
	Type         GradientType
	SelectedOnly bool
	Extend       GradientExtend
	SharpEdge    SharpEdgeMode

	Interp InterpMode
	Blend  BlendMode
	Clip   bool

	FactorBegin, FactorEnd float64
	ColorBegin, ColorEnd   RGBA

	// Start and End are the two 3D endpoints. A zero-length segment makes
	// the whole call a silent no-op.
	Start, End Vec3
}

// boundarySnap treats distances this close to a boundary as exactly on
// it, so corners shared between inside and outside faces resolve
// consistently.
const boundarySnap = 1e-4

// PaintGradient rasterizes a two-color gradient over the active layer's
// elements. Candidate elements honor SelectedOnly and the extend/sharp
// boundary policies; each included element gets a weight from its spatial
// position, a blend factor lerped between FactorBegin and FactorEnd, and
// a target color from the interpolation mode.
func PaintGradient(m Mesh, g Gradient) error {
	layer, err := ResolveActive(m)
	if err != nil {
		return err
	}

	col0 := layer.BrushColor(g.ColorBegin)
	col1 := layer.BrushColor(g.ColorEnd)
	clip := g.Clip
	if layer.Byte {
		// Byte storage clamps on its own.
		clip = false
	}

	l0, l1 := g.Start, g.End
	radius := length3(sub3(l1, l0))
	if radius == 0 {
		return nil
	}
	radiusSquared := radius * radius

	var elems []Element
	var coords []Vec3

	if layer.Corner {
		var faces []FaceID
		for f := 0; f < m.FaceCount(); f++ {
			if !g.SelectedOnly || m.FaceSelected(FaceID(f)) {
				faces = append(faces, FaceID(f))
			}
		}
		if g.Extend == ExtendBoth {
			for _, f := range faces {
				for _, c := range m.FaceCorners(f) {
					elems = append(elems, Element(c))
					coords = append(coords, m.Position(m.CornerVertex(c)))
				}
			}
		} else {
			elems, coords = filterGradientCorners(m, faces, g, l0, l1, radiusSquared)
		}
	} else {
		for v := 0; v < m.VertexCount(); v++ {
			vid := VertexID(v)
			if g.SelectedOnly && !m.VertexSelected(vid) {
				continue
			}
			co := m.Position(vid)
			switch g.Type {
			case GradientLinear:
				t := projectPointLine(co, l0, l1)
				if !g.Extend.backward() && t < 0 {
					continue
				}
				if !g.Extend.forward() && t > 1 {
					continue
				}
			case GradientRadial:
				if !g.Extend.forward() && lengthSquared3(sub3(l0, co)) > radiusSquared {
					continue
				}
			}
			elems = append(elems, Element(v))
			coords = append(coords, co)
		}
	}

	Logger().Debug("painting gradient",
		"type", int(g.Type), "elements", len(elems), "corner", layer.Corner)

	factorA := g.FactorBegin
	factorB := g.FactorEnd - g.FactorBegin

	for i, e := range elems {
		co := coords[i]

		var weight float64
		switch g.Type {
		case GradientLinear:
			weight = projectPointLine(co, l0, l1)
		case GradientRadial:
			weight = length3(sub3(co, l0)) / radius
		}
		weight = clamp01(weight)

		blendFac := factorA + weight*factorB
		blendCol := Interp(g.Interp, weight, col0, col1)
		layer.Modify(e, g.Blend, clip, blendFac, blendCol)
	}
	return nil
}

// filterGradientCorners applies the boundary filter for corner-domain
// gradients: face-level culling when SharpEdgeFace is set, then
// per-corner checks in each non-extended direction.
func filterGradientCorners(m Mesh, faces []FaceID, g Gradient, l0, l1 Vec3, radiusSquared float64) ([]Element, []Vec3) {
	sharp := g.SharpEdge != SharpEdgeOff
	extendFwd := g.Extend.forward()
	extendBack := g.Extend.backward()

	if g.SharpEdge == SharpEdgeFace {
		kept := faces[:0]
		for _, f := range faces {
			switch g.Type {
			case GradientLinear:
				if !extendBack && !faceInsideLinear(m, f, l0, l1) {
					continue
				}
				if !extendFwd && !faceInsideLinear(m, f, l1, l0) {
					continue
				}
			case GradientRadial:
				if !extendFwd && !faceInsideRadial(m, f, l0, radiusSquared) {
					continue
				}
			}
			kept = append(kept, f)
		}
		faces = kept
	}

	var elems []Element
	var coords []Vec3
	for _, f := range faces {
		for _, c := range m.FaceCorners(f) {
			switch g.Type {
			case GradientLinear:
				if !extendBack && !cornerInsideLinear(m, c, l0, l1, sharp) {
					continue
				}
				if !extendFwd && !cornerInsideLinear(m, c, l1, l0, sharp) {
					continue
				}
			case GradientRadial:
				if !extendFwd && !cornerInsideRadial(m, c, l0, radiusSquared, sharp) {
					continue
				}
			}
			elems = append(elems, Element(c))
			coords = append(coords, m.Position(m.CornerVertex(c)))
		}
	}
	return elems, coords
}

// distanceToLine is the signed projection fraction of co onto l0→l1,
// snapped to zero within boundarySnap. Negative values are outside the
// boundary at l0.
func distanceToLine(co, l0, l1 Vec3) float64 {
	d := projectPointLine(co, l0, l1)
	if d < boundarySnap && d > -boundarySnap {
		return 0
	}
	return d
}

// distanceToRadius is the signed squared-radius margin of co against the
// circle at center, snapped to zero within boundarySnap. Negative values
// are outside the circle.
func distanceToRadius(co, center Vec3, radiusSquared float64) float64 {
	d := radiusSquared - lengthSquared3(sub3(center, co))
	if d < boundarySnap && d > -boundarySnap {
		return 0
	}
	return d
}

// faceInsideLinear reports whether every vertex of the face is on the
// inside of the boundary at l0.
func faceInsideLinear(m Mesh, f FaceID, l0, l1 Vec3) bool {
	for _, c := range m.FaceCorners(f) {
		if distanceToLine(m.Position(m.CornerVertex(c)), l0, l1) < 0 {
			return false
		}
	}
	return true
}

// faceInsideRadial reports whether every vertex of the face lies within
// the radius.
func faceInsideRadial(m Mesh, f FaceID, l0 Vec3, radiusSquared float64) bool {
	for _, c := range m.FaceCorners(f) {
		if distanceToRadius(m.Position(m.CornerVertex(c)), l0, radiusSquared) < 0 {
			return false
		}
	}
	return true
}

// cornerInsideLinear checks one corner against the boundary at l0. With
// sharp bounds, a corner exactly on the boundary defers to its
// neighboring corners in the same face.
func cornerInsideLinear(m Mesh, c CornerID, l0, l1 Vec3, sharp bool) bool {
	dist := distanceToLine(m.Position(m.CornerVertex(c)), l0, l1)
	if dist < 0 {
		return false
	}
	if !sharp {
		return true
	}
	if dist == 0 {
		dist = distanceToLine(m.Position(m.CornerVertex(m.PrevCorner(c))), l0, l1)
		if dist == 0 {
			dist = distanceToLine(m.Position(m.CornerVertex(m.NextCorner(c))), l0, l1)
		}
		if dist < 0 {
			return false
		}
	}
	return true
}

// cornerInsideRadial checks one corner against the circle. With sharp
// bounds, a corner exactly on the circle is kept only when an adjacent
// corner of the same face is strictly inside.
func cornerInsideRadial(m Mesh, c CornerID, l0 Vec3, radiusSquared float64, sharp bool) bool {
	dist := distanceToRadius(m.Position(m.CornerVertex(c)), l0, radiusSquared)
	if dist < 0 {
		return false
	}
	if !sharp {
		return true
	}
	if dist == 0 {
		hasInsideNeighbor := false
		for _, n := range [2]CornerID{m.PrevCorner(c), m.NextCorner(c)} {
			if distanceToRadius(m.Position(m.CornerVertex(n)), l0, radiusSquared) > 0 {
				hasInsideNeighbor = true
				break
			}
		}
		if !hasInsideNeighbor {
			return false
		}
	}
	return true
}

var gradientTypeNames = map[GradientType]string{
	GradientLinear: "LINEAR",
	GradientRadial: "RADIAL",
}

// String returns the canonical name of the gradient type.
func (t GradientType) String() string {
	if s, ok := gradientTypeNames[t]; ok {
		return s
	}
	return "LINEAR"
}

// ParseGradientType resolves a canonical type name. The second return
// value reports whether the name was recognized.
func ParseGradientType(s string) (GradientType, bool) {
	for t, name := range gradientTypeNames {
		if s == name {
			return t, true
		}
	}
	return GradientLinear, false
}

var extendNames = map[GradientExtend]string{
	ExtendOff:      "OFF",
	ExtendForward:  "FORWARD",
	ExtendBackward: "BACKWARD",
	ExtendBoth:     "BOTH",
}

// String returns the canonical name of the extend mode.
func (e GradientExtend) String() string {
	if s, ok := extendNames[e]; ok {
		return s
	}
	return "OFF"
}

// ParseGradientExtend resolves a canonical extend mode name. The second
// return value reports whether the name was recognized.
func ParseGradientExtend(s string) (GradientExtend, bool) {
	for e, name := range extendNames {
		if s == name {
			return e, true
		}
	}
	return ExtendOff, false
}

var sharpEdgeNames = map[SharpEdgeMode]string{
	SharpEdgeOff:    "OFF",
	SharpEdgeVertex: "VERTEX",
	SharpEdgeFace:   "FACE",
}

// String returns the canonical name of the sharp edge mode.
func (m SharpEdgeMode) String() string {
	if s, ok := sharpEdgeNames[m]; ok {
		return s
	}
	return "OFF"
}

// ParseSharpEdgeMode resolves a canonical sharp edge mode name. The
// second return value reports whether the name was recognized.
func ParseSharpEdgeMode(s string) (SharpEdgeMode, bool) {
	for m, name := range sharpEdgeNames {
		if s == name {
			return m, true
		}
	}
	return SharpEdgeOff, false
}
