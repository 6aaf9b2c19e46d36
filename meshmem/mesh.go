// Package meshmem provides an in-memory reference implementation of the
// vcolor.Mesh surface: topology derived from positions and face index
// lists, per-element selection flags, and float or byte color attribute
// storage. It backs the command line tool and hosts that have no mesh
// representation of their own.
package meshmem

import (
	"fmt"

	"github.com/meshkit/vcolor"
)

type corner struct {
	vertex vcolor.VertexID
	face   vcolor.FaceID
	edge   vcolor.EdgeID

	next, prev vcolor.CornerID
	radialNext vcolor.CornerID
}

type activeKind uint8

const (
	activeNone activeKind = iota
	activeVertex
	activeFace
)

// Mesh is a self-contained mesh: immutable topology built by New, plus
// mutable selection state and color attributes.
type Mesh struct {
	positions []vcolor.Vec3
	edges     [][2]vcolor.VertexID
	corners   []corner

	// faceCornerStart[f] .. faceCornerStart[f+1] index the corners of
	// face f, in winding order.
	faceCornerStart []int

	vertexEdges   [][]vcolor.EdgeID
	vertexFaces   [][]vcolor.FaceID
	vertexCorners [][]vcolor.CornerID
	edgeCorners   [][]vcolor.CornerID

	vertSel, edgeSel, faceSel    []bool
	selVerts, selEdges, selFaces int

	active     activeKind
	activeVert vcolor.VertexID
	activeFace vcolor.FaceID

	attrs      []*Attribute
	activeAttr int
}

// New builds a mesh from vertex positions and faces given as lists of
// vertex indices in winding order. Edges, corners and radial cycles are
// derived; every face needs at least three distinct vertices.
func New(positions []vcolor.Vec3, faces [][]int) (*Mesh, error) {
	m := &Mesh{
		positions:       positions,
		faceCornerStart: make([]int, 1, len(faces)+1),
		vertexEdges:     make([][]vcolor.EdgeID, len(positions)),
		vertexFaces:     make([][]vcolor.FaceID, len(positions)),
		vertexCorners:   make([][]vcolor.CornerID, len(positions)),
		vertSel:         make([]bool, len(positions)),
		faceSel:         make([]bool, len(faces)),
		activeAttr:      -1,
	}

	edgeIndex := make(map[[2]vcolor.VertexID]vcolor.EdgeID)
	edgeKey := func(a, b vcolor.VertexID) [2]vcolor.VertexID {
		if b < a {
			a, b = b, a
		}
		return [2]vcolor.VertexID{a, b}
	}

	for fi, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("meshmem: face %d has %d vertices, need at least 3", fi, len(face))
		}
		f := vcolor.FaceID(fi)
		base := vcolor.CornerID(len(m.corners))
		n := len(face)
		for i, vi := range face {
			if vi < 0 || vi >= len(positions) {
				return nil, fmt.Errorf("meshmem: face %d references vertex %d of %d", fi, vi, len(positions))
			}
			v := vcolor.VertexID(vi)
			wi := face[(i+1)%n]
			if wi == vi {
				return nil, fmt.Errorf("meshmem: face %d repeats vertex %d", fi, vi)
			}
			w := vcolor.VertexID(wi)

			key := edgeKey(v, w)
			e, ok := edgeIndex[key]
			if !ok {
				e = vcolor.EdgeID(len(m.edges))
				edgeIndex[key] = e
				m.edges = append(m.edges, [2]vcolor.VertexID{key[0], key[1]})
				m.vertexEdges[v] = append(m.vertexEdges[v], e)
				m.vertexEdges[w] = append(m.vertexEdges[w], e)
				m.edgeCorners = append(m.edgeCorners, nil)
			}

			c := base + vcolor.CornerID(i)
			m.corners = append(m.corners, corner{
				vertex: v,
				face:   f,
				edge:   e,
				next:   base + vcolor.CornerID((i+1)%n),
				prev:   base + vcolor.CornerID((i+n-1)%n),
			})
			m.vertexCorners[v] = append(m.vertexCorners[v], c)
			m.edgeCorners[e] = append(m.edgeCorners[e], c)
		}
		for _, vi := range face {
			m.vertexFaces[vi] = append(m.vertexFaces[vi], f)
		}
		m.faceCornerStart = append(m.faceCornerStart, len(m.corners))
	}

	// Radial cycles: corners of an edge link circularly; a boundary
	// edge's lone corner links to itself.
	for _, cs := range m.edgeCorners {
		for i, c := range cs {
			m.corners[c].radialNext = cs[(i+1)%len(cs)]
		}
	}

	m.edgeSel = make([]bool, len(m.edges))
	return m, nil
}

func (m *Mesh) VertexCount() int { return len(m.positions) }
func (m *Mesh) EdgeCount() int   { return len(m.edges) }
func (m *Mesh) FaceCount() int   { return len(m.faceCornerStart) - 1 }
func (m *Mesh) CornerCount() int { return len(m.corners) }

func (m *Mesh) Position(v vcolor.VertexID) vcolor.Vec3 { return m.positions[v] }

func (m *Mesh) VertexEdges(v vcolor.VertexID) []vcolor.EdgeID     { return m.vertexEdges[v] }
func (m *Mesh) VertexFaces(v vcolor.VertexID) []vcolor.FaceID     { return m.vertexFaces[v] }
func (m *Mesh) VertexCorners(v vcolor.VertexID) []vcolor.CornerID { return m.vertexCorners[v] }

func (m *Mesh) EdgeVertices(e vcolor.EdgeID) (vcolor.VertexID, vcolor.VertexID) {
	return m.edges[e][0], m.edges[e][1]
}

func (m *Mesh) EdgeCorners(e vcolor.EdgeID) []vcolor.CornerID { return m.edgeCorners[e] }

func (m *Mesh) OtherVertex(e vcolor.EdgeID, v vcolor.VertexID) vcolor.VertexID {
	if m.edges[e][0] == v {
		return m.edges[e][1]
	}
	return m.edges[e][0]
}

func (m *Mesh) FaceCorners(f vcolor.FaceID) []vcolor.CornerID {
	start, end := m.faceCornerStart[f], m.faceCornerStart[f+1]
	cs := make([]vcolor.CornerID, end-start)
	for i := range cs {
		cs[i] = vcolor.CornerID(start + i)
	}
	return cs
}

func (m *Mesh) CornerVertex(c vcolor.CornerID) vcolor.VertexID { return m.corners[c].vertex }
func (m *Mesh) CornerFace(c vcolor.CornerID) vcolor.FaceID     { return m.corners[c].face }
func (m *Mesh) NextCorner(c vcolor.CornerID) vcolor.CornerID   { return m.corners[c].next }
func (m *Mesh) PrevCorner(c vcolor.CornerID) vcolor.CornerID   { return m.corners[c].prev }

func (m *Mesh) RadialNextCorner(c vcolor.CornerID) vcolor.CornerID {
	return m.corners[c].radialNext
}

func (m *Mesh) VertexSelected(v vcolor.VertexID) bool { return m.vertSel[v] }
func (m *Mesh) EdgeSelected(e vcolor.EdgeID) bool     { return m.edgeSel[e] }
func (m *Mesh) FaceSelected(f vcolor.FaceID) bool     { return m.faceSel[f] }

func (m *Mesh) SetVertexSelected(v vcolor.VertexID, sel bool) {
	if m.vertSel[v] != sel {
		m.vertSel[v] = sel
		if sel {
			m.selVerts++
		} else {
			m.selVerts--
		}
	}
}

func (m *Mesh) SetEdgeSelected(e vcolor.EdgeID, sel bool) {
	if m.edgeSel[e] != sel {
		m.edgeSel[e] = sel
		if sel {
			m.selEdges++
		} else {
			m.selEdges--
		}
	}
}

func (m *Mesh) SetFaceSelected(f vcolor.FaceID, sel bool) {
	if m.faceSel[f] != sel {
		m.faceSel[f] = sel
		if sel {
			m.selFaces++
		} else {
			m.selFaces--
		}
	}
}

func (m *Mesh) SelectedVertexCount() int { return m.selVerts }
func (m *Mesh) SelectedEdgeCount() int   { return m.selEdges }
func (m *Mesh) SelectedFaceCount() int   { return m.selFaces }

// SetActiveVertex marks a vertex as the most recent element in the
// selection history.
func (m *Mesh) SetActiveVertex(v vcolor.VertexID) {
	m.active = activeVertex
	m.activeVert = v
}

// SetActiveFace marks a face as the most recent element in the selection
// history.
func (m *Mesh) SetActiveFace(f vcolor.FaceID) {
	m.active = activeFace
	m.activeFace = f
}

// ClearActive empties the selection history.
func (m *Mesh) ClearActive() { m.active = activeNone }

func (m *Mesh) ActiveVertex() (vcolor.VertexID, bool) {
	return m.activeVert, m.active == activeVertex
}

func (m *Mesh) ActiveFace() (vcolor.FaceID, bool) {
	return m.activeFace, m.active == activeFace
}

// SelectFaceWhole selects a face together with its vertices and edges,
// the way an edit-mode face click would.
func (m *Mesh) SelectFaceWhole(f vcolor.FaceID) {
	m.SetFaceSelected(f, true)
	for _, c := range m.FaceCorners(f) {
		m.SetVertexSelected(m.corners[c].vertex, true)
		m.SetEdgeSelected(m.corners[c].edge, true)
	}
}

// DeselectAll clears every selection flag and the active element.
func (m *Mesh) DeselectAll() {
	for i := range m.vertSel {
		m.vertSel[i] = false
	}
	for i := range m.edgeSel {
		m.edgeSel[i] = false
	}
	for i := range m.faceSel {
		m.faceSel[i] = false
	}
	m.selVerts, m.selEdges, m.selFaces = 0, 0, 0
	m.active = activeNone
}
