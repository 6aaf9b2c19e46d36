package vcolor

// Element handles. Handles are dense indices assigned by the host; the
// core only passes them back into the interfaces below and uses them to
// order snapshot buffers.
type (
	// VertexID identifies a mesh vertex.
	VertexID int
	// EdgeID identifies a mesh edge.
	EdgeID int
	// FaceID identifies a mesh face.
	FaceID int
	// CornerID identifies a face corner (loop): a face's reference to one
	// of its vertices in winding order. Corners carry their own color
	// when the attribute domain is Corner, enabling hard seams.
	CornerID int
)

// Domain tells whether a color attribute stores one value per vertex or
// per face corner.
type Domain uint8

const (
	// DomainPoint stores one color per vertex.
	DomainPoint Domain = iota
	// DomainCorner stores one color per face corner.
	DomainCorner
)

// String returns the canonical name of the domain.
func (d Domain) String() string {
	if d == DomainCorner {
		return "CORNER"
	}
	return "POINT"
}

// Precision tells how a color attribute stores its channels.
type Precision uint8

const (
	// PrecisionFloat stores unclamped 32-bit float RGBA in linear light.
	PrecisionFloat Precision = iota
	// PrecisionByte stores 8 bits per channel, sRGB-encoded, implicitly
	// clamped to [0, 1] by the storage itself.
	PrecisionByte
)

// String returns the canonical name of the precision.
func (p Precision) String() string {
	if p == PrecisionByte {
		return "BYTE_COLOR"
	}
	return "FLOAT_COLOR"
}

// Attribute is one color attribute on a mesh. Color reads and writes use
// whichever accessor pair matches the attribute's domain; the other pair
// is never called. Values pass through as stored: byte-precision
// attributes hold sRGB-encoded channels and quantize on write.
type Attribute interface {
	Name() string
	Domain() Domain
	Precision() Precision

	VertexColor(v VertexID) RGBA
	SetVertexColor(v VertexID, c RGBA)
	CornerColor(c CornerID) RGBA
	SetCornerColor(c CornerID, col RGBA)
}

// Topology is the read-only adjacency and position surface of a host
// mesh. The core never mutates topology.
type Topology interface {
	VertexCount() int
	EdgeCount() int
	FaceCount() int
	CornerCount() int

	// Position returns the 3D position of a vertex.
	Position(v VertexID) Vec3

	// VertexEdges returns the edges incident to a vertex.
	VertexEdges(v VertexID) []EdgeID
	// VertexFaces returns the faces incident to a vertex.
	VertexFaces(v VertexID) []FaceID
	// VertexCorners returns every corner referencing a vertex, across all
	// of its faces.
	VertexCorners(v VertexID) []CornerID

	// EdgeVertices returns the two endpoints of an edge.
	EdgeVertices(e EdgeID) (VertexID, VertexID)
	// EdgeCorners returns the corners whose outgoing edge (corner →
	// next corner) is e, one per face using the edge.
	EdgeCorners(e EdgeID) []CornerID
	// OtherVertex returns the endpoint of e that is not v.
	OtherVertex(e EdgeID, v VertexID) VertexID

	// FaceCorners returns a face's corners in winding order.
	FaceCorners(f FaceID) []CornerID

	// CornerVertex returns the vertex a corner references.
	CornerVertex(c CornerID) VertexID
	// CornerFace returns the face a corner belongs to.
	CornerFace(c CornerID) FaceID
	// NextCorner and PrevCorner walk a face's winding cycle.
	NextCorner(c CornerID) CornerID
	PrevCorner(c CornerID) CornerID
	// RadialNextCorner crosses a corner's edge to the corresponding
	// corner of the adjacent face. On a boundary edge it returns the
	// corner itself.
	RadialNextCorner(c CornerID) CornerID
}

// Selection is the per-element boolean flag store plus the host's
// selection-history notion of a single active element. The core reads
// flags everywhere and writes them only from the flood-fill and
// similarity selectors.
type Selection interface {
	VertexSelected(v VertexID) bool
	SetVertexSelected(v VertexID, sel bool)
	EdgeSelected(e EdgeID) bool
	SetEdgeSelected(e EdgeID, sel bool)
	FaceSelected(f FaceID) bool
	SetFaceSelected(f FaceID, sel bool)

	// SelectedVertexCount, SelectedEdgeCount and SelectedFaceCount report
	// the selection totals the host tracks.
	SelectedVertexCount() int
	SelectedEdgeCount() int
	SelectedFaceCount() int

	// ActiveVertex returns the active vertex from the selection history,
	// if the most recent active element is a vertex.
	ActiveVertex() (VertexID, bool)
	// ActiveFace returns the active face from the selection history, if
	// the most recent active element is a face.
	ActiveFace() (FaceID, bool)
}

// Attributes exposes a mesh's color attribute list. The active pointer is
// managed externally; the core only resolves it.
type Attributes interface {
	// ActiveAttribute returns the attribute the host marks active.
	ActiveAttribute() (Attribute, bool)
	// AttributeByName looks an attribute up by name.
	AttributeByName(name string) (Attribute, bool)
}

// Mesh is the full surface the core needs from a host. Implement it once
// per host; meshmem provides a reference implementation.
type Mesh interface {
	Topology
	Selection
	Attributes
}
