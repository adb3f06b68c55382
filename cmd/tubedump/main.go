// tubedump is a headless CLI that advances the wander simulation and
// writes the resulting tube mesh as a Wavefront OBJ file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/andrepology/pond/internal/config"
	"github.com/andrepology/pond/internal/engine/motion"
	"github.com/andrepology/pond/pkg/tube"
)

func main() {
	var (
		output = flag.String("o", "tube.obj", "Output OBJ file path")
		ticks  = flag.Int("ticks", 120, "Simulation steps before the snapshot")
		dt     = flag.Float64("dt", 1.0/60.0, "Simulation step size in seconds")
		points = flag.Int("points", 0, "Centerline control point count")
		frames = flag.Bool("frames", false, "Print attachment frames to stdout")
	)
	flag.Parse()

	cfg := config.Default()
	if *points > 0 {
		cfg.Motion.PointCount = *points
	}

	mover := motion.New(motion.Config{
		PointCount:     cfg.Motion.PointCount,
		Spacing:        cfg.Motion.Spacing,
		Speed:          cfg.Motion.Speed,
		TurnRate:       cfg.Motion.TurnRate,
		WanderStrength: cfg.Motion.WanderStrength,
		Bounds:         cfg.Motion.Bounds,
	})
	for i := 0; i < *ticks; i++ {
		mover.Step(float32(*dt))
	}

	tb := tube.New(tube.Config{
		SamplesPerSegment: cfg.Tube.SamplesPerSegment,
		RingSegments:      cfg.Tube.RingSegments,
		MaxRadius:         cfg.Tube.MaxRadius,
		HeadRoundness:     cfg.Tube.HeadRoundness,
		TailSharpness:     cfg.Tube.TailSharpness,
		BellyAmount:       cfg.Tube.BellyAmount,
		BellyFrequency:    cfg.Tube.BellyFrequency,
		AttachmentStep:    cfg.Tube.AttachmentStep,
	})
	tb.Update(mover.Points(), mover.Head(), mover.HeadDirection())

	if err := writeOBJ(*output, tb); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s: %d vertices, %d triangles\n",
		*output, tb.VertexCount(), len(tb.Indices())/3)

	if *frames {
		for _, f := range tb.Attachments() {
			fmt.Printf("s=%.3f pos=(%.3f %.3f %.3f) r=%.3f\n",
				f.ArcFraction, f.Position.X, f.Position.Y, f.Position.Z, f.Radius)
		}
	}
}

// writeOBJ dumps the mesh in Wavefront OBJ format. OBJ indices are
// 1-based and faces reference vertex/uv/normal triplets.
func writeOBJ(path string, tb *tube.Tube) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# pond tube mesh")
	fmt.Fprintln(w, "o tube")

	pos := tb.Positions()
	nrm := tb.Normals()
	uv := tb.UVs()
	for i := 0; i < tb.VertexCount(); i++ {
		fmt.Fprintf(w, "v %g %g %g\n", pos[i*3], pos[i*3+1], pos[i*3+2])
	}
	for i := 0; i < tb.VertexCount(); i++ {
		fmt.Fprintf(w, "vt %g %g\n", uv[i*2], uv[i*2+1])
	}
	for i := 0; i < tb.VertexCount(); i++ {
		fmt.Fprintf(w, "vn %g %g %g\n", nrm[i*3], nrm[i*3+1], nrm[i*3+2])
	}

	idx := tb.Indices()
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, c := idx[i]+1, idx[i+1]+1, idx[i+2]+1
		fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
