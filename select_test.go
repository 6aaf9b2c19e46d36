package vcolor_test

import (
	"errors"
	"testing"

	"github.com/meshkit/vcolor"
)

func TestSelectLinkedVertices(t *testing.T) {
	m := newGrid(t, 2, 2)
	attr := addFloatAttr(t, m, vcolor.DomainPoint, vcolor.RGBA{A: 1})

	red := vcolor.RGBA{R: 1, A: 1}
	region := []vcolor.VertexID{
		gridVertex(2, 0, 0),
		gridVertex(2, 1, 0),
		gridVertex(2, 0, 1),
	}
	for _, v := range region {
		attr.SetVertexColor(v, red)
	}

	seed := gridVertex(2, 0, 0)
	m.SetActiveVertex(seed)
	m.SetVertexSelected(seed, true)

	if err := vcolor.SelectLinked(m, false, 0.01, false, false); err != nil {
		t.Fatal(err)
	}

	for _, v := range region {
		if !m.VertexSelected(v) {
			t.Errorf("vertex %d in red region not selected", v)
		}
	}
	for v := 0; v < m.VertexCount(); v++ {
		vid := vcolor.VertexID(v)
		if m.VertexSelected(vid) && attr.VertexColor(vid).R != 1 {
			t.Errorf("black vertex %d was selected", v)
		}
	}
}

func TestSelectLinkedNeedsActive(t *testing.T) {
	t.Run("corner domain", func(t *testing.T) {
		m := newGrid(t, 1, 1)
		addFloatAttr(t, m, vcolor.DomainCorner, vcolor.RGBA{A: 1})
		err := vcolor.SelectLinked(m, false, 0.1, false, false)
		var ce *vcolor.ContextError
		if !errors.As(err, &ce) {
			t.Fatalf("SelectLinked without active face = %v, want ContextError", err)
		}
	})
	t.Run("point domain", func(t *testing.T) {
		m := newGrid(t, 1, 1)
		addFloatAttr(t, m, vcolor.DomainPoint, vcolor.RGBA{A: 1})
		if err := vcolor.SelectLinked(m, false, 0.1, false, false); err == nil {
			t.Fatal("SelectLinked without active vertex succeeded")
		}
	})
}

// paintFace writes a color over every corner of a face.
func paintFace(m vcolor.Mesh, attr vcolor.Attribute, f vcolor.FaceID, c vcolor.RGBA) {
	for _, corner := range m.FaceCorners(f) {
		attr.SetCornerColor(corner, c)
	}
}

func TestSelectLinkedFacesSharedEdge(t *testing.T) {
	m := newGrid(t, 2, 2)
	attr := addFloatAttr(t, m, vcolor.DomainCorner, vcolor.RGBA{A: 1})

	red := vcolor.RGBA{R: 1, A: 1}
	paintFace(m, attr, 0, red)
	paintFace(m, attr, 1, red)

	m.SetActiveFace(0)
	m.SetFaceSelected(0, true)

	if err := vcolor.SelectLinked(m, false, 0.01, false, false); err != nil {
		t.Fatal(err)
	}

	if !m.FaceSelected(1) {
		t.Error("red edge-adjacent face not selected")
	}
	if m.FaceSelected(2) || m.FaceSelected(3) {
		t.Error("black face was selected")
	}
}

func TestSelectLinkedFacesDiagonal(t *testing.T) {
	// Faces 0 and 3 share only the center vertex. Edge adjacency cannot
	// bridge them; vertex adjacency can.
	build := func(t *testing.T) (vcolor.Mesh, vcolor.Attribute) {
		m := newGrid(t, 2, 2)
		attr := addFloatAttr(t, m, vcolor.DomainCorner, vcolor.RGBA{A: 1})
		red := vcolor.RGBA{R: 1, A: 1}
		paintFace(m, attr, 0, red)
		paintFace(m, attr, 3, red)
		m.SetActiveFace(0)
		m.SetFaceSelected(0, true)
		return m, attr
	}

	m, _ := build(t)
	if err := vcolor.SelectLinked(m, false, 0.01, false, false); err != nil {
		t.Fatal(err)
	}
	if m.FaceSelected(3) {
		t.Error("shared-edge adjacency crossed a diagonal")
	}

	m, _ = build(t)
	if err := vcolor.SelectLinked(m, true, 0.01, false, false); err != nil {
		t.Fatal(err)
	}
	if !m.FaceSelected(3) {
		t.Error("shared-vertex adjacency missed the diagonal face")
	}
}

func TestSelectLinkedDeselect(t *testing.T) {
	m := newGrid(t, 2, 1)
	addFloatAttr(t, m, vcolor.DomainPoint, vcolor.RGBA{A: 1})

	for v := 0; v < m.VertexCount(); v++ {
		m.SetVertexSelected(vcolor.VertexID(v), true)
	}
	m.SetActiveVertex(0)

	if err := vcolor.SelectLinked(m, false, 0.01, false, true); err != nil {
		t.Fatal(err)
	}
	// Every vertex shares the uniform color, so the whole component
	// deselects except possibly the seed, which the walk never revisits.
	for v := 1; v < m.VertexCount(); v++ {
		if m.VertexSelected(vcolor.VertexID(v)) {
			t.Errorf("vertex %d still selected", v)
		}
	}
}

func TestSelectSimilarVertexCorners(t *testing.T) {
	m := newGrid(t, 2, 1)
	attr := addFloatAttr(t, m, vcolor.DomainCorner, vcolor.RGBA{A: 1})

	red := vcolor.RGBA{R: 1, A: 1}
	green := vcolor.RGBA{G: 1, A: 1}

	// The two interior vertices each own two corners. Give the second
	// the same colors in swapped order; the matching is order-free.
	v1 := gridVertex(2, 1, 0)
	v2 := gridVertex(2, 1, 1)
	c1 := m.VertexCorners(v1)
	c2 := m.VertexCorners(v2)
	attr.SetCornerColor(c1[0], red)
	attr.SetCornerColor(c1[1], green)
	attr.SetCornerColor(c2[0], green)
	attr.SetCornerColor(c2[1], red)

	m.SetVertexSelected(v1, true)

	if err := vcolor.SelectSimilar(m, 0.01, false); err != nil {
		t.Fatal(err)
	}

	if !m.VertexSelected(v2) {
		t.Error("vertex with matching corner multiset not selected")
	}
	// One-corner vertices never qualify regardless of color.
	for _, v := range []vcolor.VertexID{gridVertex(2, 0, 0), gridVertex(2, 2, 1)} {
		if m.VertexSelected(v) {
			t.Errorf("vertex %d with different corner count selected", v)
		}
	}
}

func TestSelectSimilarAverageVertices(t *testing.T) {
	m := newGrid(t, 2, 1)
	attr := addFloatAttr(t, m, vcolor.DomainPoint, vcolor.RGBA{A: 1})

	red := vcolor.RGBA{R: 1, A: 1}
	attr.SetVertexColor(0, red)
	attr.SetVertexColor(3, red)
	m.SetVertexSelected(0, true)

	if err := vcolor.SelectSimilar(m, 0.01, false); err != nil {
		t.Fatal(err)
	}
	if !m.VertexSelected(3) {
		t.Error("same-color vertex not selected")
	}
	if m.VertexSelected(1) {
		t.Error("different-color vertex selected")
	}
}

func TestSelectSimilarIgnoreAlpha(t *testing.T) {
	m := newGrid(t, 2, 1)
	attr := addFloatAttr(t, m, vcolor.DomainPoint, vcolor.RGBA{A: 1})

	attr.SetVertexColor(0, vcolor.RGBA{R: 1, A: 1})
	attr.SetVertexColor(3, vcolor.RGBA{R: 1, A: 0.2})
	m.SetVertexSelected(0, true)

	if err := vcolor.SelectSimilar(m, 0.01, false); err != nil {
		t.Fatal(err)
	}
	if m.VertexSelected(3) {
		t.Error("alpha mismatch slipped through an alpha-aware match")
	}

	m.DeselectAll()
	m.SetVertexSelected(0, true)
	if err := vcolor.SelectSimilar(m, 0.01, true); err != nil {
		t.Fatal(err)
	}
	if !m.VertexSelected(3) {
		t.Error("ignoreAlpha still compared alpha")
	}
}

func TestSelectSimilarEdges(t *testing.T) {
	m := newGrid(t, 2, 1)
	attr := addFloatAttr(t, m, vcolor.DomainCorner, vcolor.RGBA{A: 1})

	red := vcolor.RGBA{R: 1, A: 1}
	paintFace(m, attr, 0, red)
	paintFace(m, attr, 1, red)

	// Select one interior edge: two vertices plus the edge flag.
	v1 := gridVertex(2, 1, 0)
	v2 := gridVertex(2, 1, 1)
	e := edgeBetween(t, m, v1, v2)
	m.SetVertexSelected(v1, true)
	m.SetVertexSelected(v2, true)
	m.SetEdgeSelected(e, true)

	if err := vcolor.SelectSimilar(m, 0.01, false); err != nil {
		t.Fatal(err)
	}

	// Boundary edges expose half the corner signature and never match.
	boundary := edgeBetween(t, m, gridVertex(2, 0, 0), gridVertex(2, 0, 1))
	if m.EdgeSelected(boundary) {
		t.Error("boundary edge matched an interior edge signature")
	}
}
