// Package vcolor edits per-vertex and per-face-corner color attributes on
// polygon meshes.
//
// # Overview
//
// vcolor is the host-independent core of a mesh vertex color editing
// toolkit. The host application owns the mesh, its selection state and all
// input handling; it adapts its mesh to the [Mesh] interface and calls the
// operations here. The core never creates or destroys topology; it reads
// positions, adjacency and selection flags, and reads/writes RGBA color
// payloads.
//
// # Quick Start
//
//	import (
//		"github.com/meshkit/vcolor"
//		"github.com/meshkit/vcolor/meshmem"
//	)
//
//	m := meshmem.New(positions, faces)
//	m.AddAttribute("Col", vcolor.DomainCorner, vcolor.PrecisionFloat)
//
//	err := vcolor.PaintGradient(m, vcolor.Gradient{
//		Type:       vcolor.GradientLinear,
//		Blend:      vcolor.BlendMix,
//		Interp:     vcolor.InterpOklabLinear,
//		Clip:       true,
//		FactorBegin: 1, FactorEnd: 1,
//		ColorBegin: vcolor.Red, ColorEnd: vcolor.Blue,
//		Start: vcolor.V3(0, 0, 0), End: vcolor.V3(0, 0, 1),
//	})
//
// # Architecture
//
// The library is organized into:
//   - Color math: colorspace.go, blend.go, interp.go
//   - Attribute engine: mesh.go, attribute.go, edit.go
//   - Selection: select.go (flood fill, similarity matching)
//   - Painters: gradient.go (spatial), topology.go (quad-strip walking)
//   - Orchestration: session.go (snapshot-backed interactive placement)
//
// All colors are handled as linear-light RGBA internally. Byte-precision
// attributes store sRGB-encoded values; the conversion happens exactly at
// the read/write boundary and only on the RGB channels.
//
// # Errors
//
// Precondition failures (no active attribute, empty selection, missing
// active element) are reported as [*ContextError] before any mutation
// occurs. Numeric degenerate inputs (zero-length gradients, zero distance,
// empty averages) are silent no-ops, never errors.
package vcolor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
