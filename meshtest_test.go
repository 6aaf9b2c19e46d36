package vcolor_test

import (
	"math"
	"testing"

	"github.com/meshkit/vcolor"
	"github.com/meshkit/vcolor/meshmem"
)

const testEpsilon = 1e-6

func closeRGBA(a, b vcolor.RGBA, eps float64) bool {
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}

// newGrid builds a nx by ny quad grid in the XY plane. Vertex (i, j)
// sits at position (i, j, 0) with index j*(nx+1)+i; faces are wound
// counterclockwise.
func newGrid(t *testing.T, nx, ny int) *meshmem.Mesh {
	t.Helper()
	var positions []vcolor.Vec3
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			positions = append(positions, vcolor.V3(float64(i), float64(j), 0))
		}
	}
	var faces [][]int
	stride := nx + 1
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v := j*stride + i
			faces = append(faces, []int{v, v + 1, v + 1 + stride, v + stride})
		}
	}
	m, err := meshmem.New(positions, faces)
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}
	return m
}

// gridVertex maps grid coordinates to the vertex index newGrid assigns.
func gridVertex(nx, i, j int) vcolor.VertexID {
	return vcolor.VertexID(j*(nx+1) + i)
}

// addFloatAttr attaches a float attribute filled with the given color
// and makes it active.
func addFloatAttr(t *testing.T, m *meshmem.Mesh, domain vcolor.Domain, fill vcolor.RGBA) *meshmem.Attribute {
	t.Helper()
	attr, err := m.AddAttribute("Col", domain, vcolor.PrecisionFloat)
	if err != nil {
		t.Fatalf("adding attribute: %v", err)
	}
	attr.Fill(fill)
	if err := m.SetActiveAttribute("Col"); err != nil {
		t.Fatalf("activating attribute: %v", err)
	}
	return attr
}

// edgeBetween finds the edge connecting two vertices.
func edgeBetween(t *testing.T, m *meshmem.Mesh, a, b vcolor.VertexID) vcolor.EdgeID {
	t.Helper()
	for _, e := range m.VertexEdges(a) {
		if m.OtherVertex(e, a) == b {
			return e
		}
	}
	t.Fatalf("no edge between %d and %d", a, b)
	return 0
}
