package meshmem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/meshkit/vcolor"
)

// objColorAttribute is the attribute name vertex colors land in on
// import.
const objColorAttribute = "Col"

// ReadOBJ parses a Wavefront OBJ stream into a mesh. Only `v` and `f`
// records are used; other records are skipped. Vertex lines may carry
// the common color extension (`v x y z r g b`), in which case a
// point-domain float attribute named "Col" is created with those values.
// Channel values pass through as written, no color space conversion is
// applied.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	var positions []vcolor.Vec3
	var colors []vcolor.RGBA
	var faces [][]int
	hasColors := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("meshmem: obj line %d: vertex needs 3 coordinates", lineNo)
			}
			var co [3]float64
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("meshmem: obj line %d: %w", lineNo, err)
				}
				co[i] = f
			}
			positions = append(positions, vcolor.V3(co[0], co[1], co[2]))

			col := vcolor.White
			if len(fields) >= 7 {
				var ch [3]float64
				for i := 0; i < 3; i++ {
					f, err := strconv.ParseFloat(fields[i+4], 64)
					if err != nil {
						return nil, fmt.Errorf("meshmem: obj line %d: %w", lineNo, err)
					}
					ch[i] = f
				}
				col = vcolor.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 1}
				hasColors = true
			}
			colors = append(colors, col)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("meshmem: obj line %d: face needs 3 vertices", lineNo)
			}
			face := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				// Only the vertex index matters; texture and normal
				// references after the slash are dropped.
				if i := strings.IndexByte(ref, '/'); i >= 0 {
					ref = ref[:i]
				}
				idx, err := strconv.Atoi(ref)
				if err != nil {
					return nil, fmt.Errorf("meshmem: obj line %d: %w", lineNo, err)
				}
				switch {
				case idx > 0:
					idx--
				case idx < 0:
					idx += len(positions)
				default:
					return nil, fmt.Errorf("meshmem: obj line %d: face index 0", lineNo)
				}
				face = append(face, idx)
			}
			faces = append(faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("meshmem: reading obj: %w", err)
	}

	m, err := New(positions, faces)
	if err != nil {
		return nil, err
	}
	if hasColors {
		attr, err := m.AddAttribute(objColorAttribute, vcolor.DomainPoint, vcolor.PrecisionFloat)
		if err != nil {
			return nil, err
		}
		for v, c := range colors {
			attr.SetVertexColor(vcolor.VertexID(v), c)
		}
	}
	return m, nil
}

// WriteOBJ serializes the mesh as Wavefront OBJ. When the mesh has an
// active color attribute its values are appended to each vertex line;
// corner-domain attributes export the average of the vertex's corners.
// Channel values are written as stored.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	attr, hasAttr := m.ActiveAttribute()
	for v := 0; v < m.VertexCount(); v++ {
		vid := vcolor.VertexID(v)
		p := m.Position(vid)
		if hasAttr {
			c := vertexExportColor(m, attr, vid)
			fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", p[0], p[1], p[2], c.R, c.G, c.B)
		} else {
			fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
		}
	}

	for f := 0; f < m.FaceCount(); f++ {
		bw.WriteString("f")
		for _, c := range m.FaceCorners(vcolor.FaceID(f)) {
			fmt.Fprintf(bw, " %d", int(m.CornerVertex(c))+1)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func vertexExportColor(m *Mesh, attr vcolor.Attribute, v vcolor.VertexID) vcolor.RGBA {
	if attr.Domain() == vcolor.DomainPoint {
		return attr.VertexColor(v)
	}
	corners := m.VertexCorners(v)
	if len(corners) == 0 {
		return vcolor.RGBA{}
	}
	var sum vcolor.RGBA
	for _, c := range corners {
		cc := attr.CornerColor(c)
		sum.R += cc.R
		sum.G += cc.G
		sum.B += cc.B
		sum.A += cc.A
	}
	n := float64(len(corners))
	return vcolor.RGBA{R: sum.R / n, G: sum.G / n, B: sum.B / n, A: sum.A / n}
}
