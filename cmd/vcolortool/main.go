// Command vcolortool applies vertex color operations to OBJ meshes in
// batch: gradients, fills and brightness/contrast, configured by flags
// and optional preset files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/meshkit/vcolor"
	"github.com/meshkit/vcolor/meshmem"
	"github.com/meshkit/vcolor/preset"
)

func main() {
	var (
		in         = flag.String("in", "", "input OBJ file")
		out        = flag.String("out", "", "output OBJ file")
		presetPath = flag.String("preset", "", "preset YAML file (defaults apply if empty)")
		op         = flag.String("op", "gradient", "operation: gradient, topology-gradient, fill, brightness")
		attr       = flag.String("attr", "", "color attribute to edit (default: active)")

		start    = flag.String("start", "0,0,0", "gradient start point x,y,z")
		end      = flag.String("end", "0,0,1", "gradient end point x,y,z")
		fillCol  = flag.String("color", "1,1,1,1", "fill color r,g,b,a")
		distance = flag.Float64("distance", 1, "topology gradient distance in face steps")
		dir      = flag.String("direction", "0,0,1", "topology gradient direction x,y,z")
		bright   = flag.Float64("brightness", 0, "brightness offset, -100..100")
		contrast = flag.Float64("contrast", 0, "contrast offset, -100..100")
		quiet    = flag.Bool("quiet", false, "suppress progress output")
	)
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	p := preset.Default()
	if *presetPath != "" {
		var err error
		p, err = preset.Load(*presetPath)
		if err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	m, err := meshmem.ReadOBJ(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to read mesh: %v", err)
	}

	if _, ok := m.ActiveAttribute(); !ok {
		// Meshes without imported colors start from transparent black.
		if _, err := m.AddAttribute("Col", vcolor.DomainPoint, vcolor.PrecisionFloat); err != nil {
			log.Fatalf("Failed to create color attribute: %v", err)
		}
	}
	if *attr != "" {
		if err := m.SetActiveAttribute(*attr); err != nil {
			log.Fatalf("Failed to select attribute: %v", err)
		}
	}

	switch *op {
	case "gradient":
		err = runGradient(m, p, *start, *end, *quiet)
	case "topology-gradient":
		err = runTopologyGradient(m, p, *distance, *dir)
	case "fill":
		err = runFill(m, p, *fillCol, *quiet)
	case "brightness":
		err = vcolor.BrightnessContrast(m, *bright, *contrast, false, p.Clip)
	default:
		log.Fatalf("Unknown operation %q", *op)
	}
	if err != nil {
		log.Fatalf("Failed to apply %s: %v", *op, err)
	}

	of, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := meshmem.WriteOBJ(of, m); err != nil {
		of.Close()
		log.Fatalf("Failed to write mesh: %v", err)
	}
	if err := of.Close(); err != nil {
		log.Fatalf("Failed to write mesh: %v", err)
	}

	log.Printf("Wrote %s (%d vertices, %d faces)\n", *out, m.VertexCount(), m.FaceCount())
}

func runGradient(m *meshmem.Mesh, p preset.Preset, startSpec, endSpec string, quiet bool) error {
	start, err := parseVec3(startSpec)
	if err != nil {
		return err
	}
	end, err := parseVec3(endSpec)
	if err != nil {
		return err
	}
	g, err := p.Gradient(start, end)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if !quiet {
		bar = progressbar.Default(-1, "painting gradient")
		defer bar.Close()
	}
	return vcolor.PaintGradient(m, g)
}

func runTopologyGradient(m *meshmem.Mesh, p preset.Preset, distance float64, dirSpec string) error {
	direction, err := parseVec3(dirSpec)
	if err != nil {
		return err
	}
	modes, err := p.Modes()
	if err != nil {
		return err
	}

	// A plain OBJ has no selection state; seed from every edge.
	for e := 0; e < m.EdgeCount(); e++ {
		m.SetEdgeSelected(vcolor.EdgeID(e), true)
	}

	return vcolor.PaintTopologyGradient(m, vcolor.TopologyGradient{
		Interp:      modes.Interp,
		Blend:       modes.Blend,
		Clip:        p.Clip,
		FactorBegin: p.FactorBegin,
		FactorEnd:   p.FactorEnd,
		ColorBegin:  p.ColorBegin.RGBA(),
		ColorEnd:    p.ColorEnd.RGBA(),
		Distance:    distance,
		ClampMode:   vcolor.ClampIndividual,
		Direction:   direction,
	})
}

func runFill(m *meshmem.Mesh, p preset.Preset, colorSpec string, quiet bool) error {
	col, err := parseColor(colorSpec)
	if err != nil {
		return err
	}
	modes, err := p.Modes()
	if err != nil {
		return err
	}

	layer, err := vcolor.ResolveActive(m)
	if err != nil {
		return err
	}
	elems := vcolor.Collect(m, layer, vcolor.FilterAll)

	var bar *progressbar.ProgressBar
	if !quiet {
		bar = progressbar.Default(int64(len(elems)), "filling")
		defer bar.Close()
	}

	brush := layer.BrushColor(col)
	for _, e := range elems {
		layer.Modify(e, modes.Blend, p.Clip && !layer.Byte, p.FactorBegin, brush)
		if bar != nil {
			bar.Add(1)
		}
	}
	return nil
}

func parseVec3(s string) (vcolor.Vec3, error) {
	parts, err := parseFloats(s, 3)
	if err != nil {
		return vcolor.Vec3{}, fmt.Errorf("bad vector %q: %w", s, err)
	}
	return vcolor.V3(parts[0], parts[1], parts[2]), nil
}

func parseColor(s string) (vcolor.RGBA, error) {
	parts, err := parseFloats(s, 4)
	if err != nil {
		return vcolor.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return vcolor.RGBA{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d components", n)
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
