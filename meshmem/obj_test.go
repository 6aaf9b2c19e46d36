package meshmem

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/meshkit/vcolor"
)

func TestReadOBJ(t *testing.T) {
	src := `# a colored quad and a triangle
v 0 0 0 1 0 0
v 1 0 0 0 1 0
v 1 1 0 0 0 1
v 0 1 0 0.5 0.5 0.5
v 2 0 0

f 1/1/1 2/2/2 3/3/3 4/4/4
f 2 5 -3
`
	m, err := ReadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadOBJ: %v", err)
	}
	if m.VertexCount() != 5 || m.FaceCount() != 2 {
		t.Fatalf("got %d vertices, %d faces", m.VertexCount(), m.FaceCount())
	}
	if got := m.Position(4); got != vcolor.V3(2, 0, 0) {
		t.Errorf("Position(4) = %v", got)
	}

	// Slashed refs keep only the vertex index; the negative index in the
	// second face resolves relative to the vertex count.
	tri := m.FaceCorners(1)
	want := []vcolor.VertexID{1, 4, 2}
	for i, c := range tri {
		if got := m.CornerVertex(c); got != want[i] {
			t.Errorf("face 1 corner %d = vertex %d, want %d", i, got, want[i])
		}
	}

	attr, ok := m.ActiveAttribute()
	if !ok {
		t.Fatal("no color attribute imported")
	}
	if attr.Name() != "Col" || attr.Domain() != vcolor.DomainPoint {
		t.Fatalf("attribute %q on domain %v", attr.Name(), attr.Domain())
	}
	if got := attr.VertexColor(0); got != (vcolor.RGBA{R: 1, A: 1}) {
		t.Errorf("VertexColor(0) = %v", got)
	}
	// The colorless vertex defaults to white.
	if got := attr.VertexColor(4); got != vcolor.White {
		t.Errorf("VertexColor(4) = %v, want white", got)
	}
}

func TestReadOBJNoColors(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := ReadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.ActiveAttribute(); ok {
		t.Error("color attribute created without color data")
	}
}

func TestReadOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short vertex", "v 0 0\n"},
		{"bad coordinate", "v 0 0 x\n"},
		{"bad color", "v 0 0 0 1 1 x\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"bad index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 z\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadOBJ(strings.NewReader(tt.src)); err == nil {
				t.Error("no error")
			}
		})
	}
}

func TestWriteOBJRoundTrip(t *testing.T) {
	m := twoQuads(t)
	attr, err := m.AddAttribute("Col", vcolor.DomainPoint, vcolor.PrecisionFloat)
	if err != nil {
		t.Fatal(err)
	}
	for v := 0; v < m.VertexCount(); v++ {
		attr.SetVertexColor(vcolor.VertexID(v), vcolor.RGBA{R: float64(v) * 0.125, G: 0.25, B: 1, A: 1})
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	m2, err := ReadOBJ(&buf)
	if err != nil {
		t.Fatalf("ReadOBJ: %v", err)
	}
	if m2.VertexCount() != m.VertexCount() || m2.FaceCount() != m.FaceCount() {
		t.Fatalf("round trip: %d vertices, %d faces", m2.VertexCount(), m2.FaceCount())
	}
	for v := 0; v < m.VertexCount(); v++ {
		if got, want := m2.Position(vcolor.VertexID(v)), m.Position(vcolor.VertexID(v)); got != want {
			t.Errorf("Position(%d) = %v, want %v", v, got, want)
		}
	}
	attr2, ok := m2.ActiveAttribute()
	if !ok {
		t.Fatal("colors lost in round trip")
	}
	for v := 0; v < m.VertexCount(); v++ {
		got := attr2.VertexColor(vcolor.VertexID(v))
		want := attr.VertexColor(vcolor.VertexID(v))
		if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.G-want.G) > 1e-9 || math.Abs(got.B-want.B) > 1e-9 {
			t.Errorf("VertexColor(%d) = %v, want %v", v, got, want)
		}
	}
	for f := 0; f < m.FaceCount(); f++ {
		got := m2.FaceCorners(vcolor.FaceID(f))
		want := m.FaceCorners(vcolor.FaceID(f))
		if len(got) != len(want) {
			t.Fatalf("face %d has %d corners, want %d", f, len(got), len(want))
		}
		for i := range got {
			if m2.CornerVertex(got[i]) != m.CornerVertex(want[i]) {
				t.Errorf("face %d corner %d mismatch", f, i)
			}
		}
	}
}

func TestWriteOBJCornerAverage(t *testing.T) {
	m := twoQuads(t)
	attr, err := m.AddAttribute("Col", vcolor.DomainCorner, vcolor.PrecisionFloat)
	if err != nil {
		t.Fatal(err)
	}
	// Vertex 1 sits on both faces; give its two corners different reds.
	corners := m.VertexCorners(1)
	if len(corners) != 2 {
		t.Fatalf("vertex 1 has %d corners", len(corners))
	}
	attr.SetCornerColor(corners[0], vcolor.RGBA{R: 0, A: 1})
	attr.SetCornerColor(corners[1], vcolor.RGBA{R: 1, A: 1})

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m); err != nil {
		t.Fatal(err)
	}
	m2, err := ReadOBJ(&buf)
	if err != nil {
		t.Fatal(err)
	}
	attr2, _ := m2.ActiveAttribute()
	if got := attr2.VertexColor(1).R; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("exported red = %v, want 0.5", got)
	}
}
