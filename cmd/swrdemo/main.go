// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command swrdemo draws a small scene through the swr input assembler and
// saves it as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/raster"
	"github.com/gogpu/swr/shader"
	"github.com/gogpu/swr/vertex"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run parses args, draws the demo scene and saves or reports the result.
// Shader source from -wgsl is written to stdout.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("swrdemo", flag.ContinueOnError)
	var (
		width      = fs.Int("width", 640, "image width")
		height     = fs.Int("height", 480, "image height")
		output     = fs.String("output", "swrdemo.png", "output file")
		format     = fs.String("format", "pos=f3,color=ub4", "vertex format, e.g. pos=f3,normal,color=ub4,tex0")
		rasterizer = fs.String("rasterizer", raster.NameSoftware, "rasterizer name")
		sticky     = fs.Bool("sticky", false, "carry immediate-mode attributes across vertices")
		wgsl       = fs.Bool("wgsl", false, "print the WGSL vertex stage for -format and exit")
		verbose    = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		swr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	f, err := vertex.ParseFormat(*format)
	if err != nil {
		return fmt.Errorf("invalid -format: %w", err)
	}

	if *wgsl {
		if err := printShader(stdout, f); err != nil {
			return fmt.Errorf("generate shader: %w", err)
		}
		return nil
	}

	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *width, *height)
	}
	target := raster.NewPixmapTarget(*width, *height)
	target.Clear(color.RGBA{R: 24, G: 24, B: 32, A: 255})

	r, err := raster.New(*rasterizer, target)
	if err != nil {
		return fmt.Errorf("create rasterizer: %w", err)
	}

	carry := swr.CarryReset
	if *sticky {
		carry = swr.CarrySticky
	}
	ctx := swr.NewContext(
		swr.WithFormat(f),
		swr.WithRasterizer(r),
		swr.WithAttributeCarry(carry),
	)

	vp := shader.NewViewport(*width, *height)
	if err := drawBackground(ctx, vp); err != nil {
		return fmt.Errorf("draw background: %w", err)
	}
	if err := drawPyramid(ctx, vp, float32(*width)/float32(*height)); err != nil {
		return fmt.Errorf("draw pyramid: %w", err)
	}
	drawImmediate(ctx, vp)

	st := ctx.Stats()
	log.Printf("Drew %d triangles (%d skipped, %d vertices) with %s rasterizer, format %s\n",
		st.Triangles, st.Skipped, st.Vertices, *rasterizer, f)

	if rec, ok := r.(*raster.Recorder); ok {
		log.Printf("Recorded %d triangles\n", rec.Len())
		return nil
	}

	if err := savePNG(*output, target); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
	return nil
}

// drawBackground fills the screen with an indexed, Gouraud-shaded quad.
func drawBackground(ctx *swr.Context, vp shader.Viewport) error {
	quad := []vertex.Vertex{
		flat(-1, 1, 0.10, 0.20, 0.40),
		flat(1, 1, 0.20, 0.30, 0.50),
		flat(1, -1, 0.45, 0.45, 0.60),
		flat(-1, -1, 0.30, 0.35, 0.55),
	}
	ctx.SetShader(shader.NewTransform(shader.Identity(), vp))
	ctx.SetVertexBuffer(vertex.Pack(ctx.Format(), quad...))
	ctx.SetIndexBuffer(swr.Uint16Indices{0, 1, 2, 2, 3, 0})
	return ctx.DrawTrianglesIndexed(len(quad), 6)
}

// drawPyramid draws a rotated pyramid in perspective from a flat vertex
// list.
func drawPyramid(ctx *swr.Context, vp shader.Viewport, aspect float32) error {
	apex := solid(0, 0.8, 0, 1, 0.9, 0.2)
	base := []vertex.Vertex{
		solid(-0.7, -0.5, 0.7, 0.9, 0.2, 0.2),
		solid(0.7, -0.5, 0.7, 0.2, 0.8, 0.3),
		solid(0.7, -0.5, -0.7, 0.2, 0.4, 0.9),
		solid(-0.7, -0.5, -0.7, 0.8, 0.3, 0.8),
	}

	var tris []vertex.Vertex
	for i := range base {
		tris = append(tris, base[i], base[(i+1)%len(base)], apex)
	}

	mvp := shader.Perspective(math.Pi/3, aspect, 0.1, 100).
		Mul(shader.Translate(0, 0, -3)).
		Mul(shader.RotateX(0.3)).
		Mul(shader.RotateY(0.6))

	ctx.SetShader(shader.NewTransform(mvp, vp))
	ctx.SetVertexBuffer(vertex.Pack(ctx.Format(), tris...))
	return ctx.DrawTriangles(len(tris))
}

// drawImmediate draws a small fan of triangles in immediate mode.
func drawImmediate(ctx *swr.Context, vp shader.Viewport) {
	ctx.SetShader(shader.NewTransform(shader.Identity(), vp))

	ctx.Begin()
	defer ctx.End()

	const n = 6
	for i := range n {
		a0 := float64(i) * 2 * math.Pi / n
		a1 := float64(i+1) * 2 * math.Pi / n

		ctx.Color(1, 1, 1, 0.9)
		ctx.Vertex(-0.75, -0.7, 0, 1)
		ctx.Color(1, float32(i)/n, 0.2, 0.9)
		ctx.Vertex(-0.75+0.15*float32(math.Cos(a0)), -0.7+0.2*float32(math.Sin(a0)), 0, 1)
		ctx.Color(1, float32(i+1)/n, 0.2, 0.9)
		ctx.Vertex(-0.75+0.15*float32(math.Cos(a1)), -0.7+0.2*float32(math.Sin(a1)), 0, 1)
	}
}

// flat builds a vertex on the z=0 plane with an opaque color.
func flat(x, y, r, g, b float32) vertex.Vertex {
	return solid(x, y, 0, r, g, b)
}

// solid builds a vertex with an opaque color.
func solid(x, y, z, r, g, b float32) vertex.Vertex {
	v := vertex.New()
	v.Set(vertex.Pos, vertex.V4(x, y, z, 1))
	v.Set(vertex.Color, vertex.V4(r, g, b, 1))
	return v
}

func printShader(w io.Writer, f vertex.Format) error {
	src, err := f.VertexShaderWGSL()
	if err != nil {
		return err
	}
	spirv, err := vertex.CompileVertexShader(f)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, src); err != nil {
		return err
	}
	log.Printf("Compiled to %d bytes of SPIR-V\n", len(spirv))
	return nil
}

func savePNG(path string, target *raster.PixmapTarget) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, target.Image()); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
