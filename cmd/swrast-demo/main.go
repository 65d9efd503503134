// Command swrast-demo renders the fixture scenes used to validate the
// rasterizer and A-buffer (a single opaque triangle, two overlapping opaque
// triangles, and a translucent triangle over an opaque one) and writes each
// resolved framebuffer out as a BMP file.
//
// Usage:
//
//	swrast-demo -out ./out -size 64
//
// The demo is headless: it never opens a window, and exercises exactly the
// same Context API a real application would use.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/image/bmp"

	"github.com/gogpu/swrast"
	"github.com/gogpu/swrast/shader"
	"github.com/gogpu/swrast/vecmath"
)

var (
	outDir = flag.String("out", ".", "Directory to write the rendered BMP files to")
	size   = flag.Int("size", 64, "Width and height, in pixels, of each rendered scene")
)

func main() {
	flag.Parse()
	if err := run(*outDir, *size); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run(outDir string, size int) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	scenes := []struct {
		name string
		draw func(ctx *swrast.Context)
	}{
		{"opaque_triangle.bmp", drawSingleOpaqueTriangle},
		{"submission_order.bmp", drawOverlappingOpaqueTriangles},
		{"translucent_over_opaque.bmp", drawTranslucentOverOpaque},
	}

	for _, s := range scenes {
		ctx := swrast.Init(size, size)
		ctx.Clear(0x00000000, 1)
		s.draw(ctx)
		ctx.Resolve()

		path := filepath.Join(outDir, s.name)
		if err := writeBMP(path, ctx); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		fmt.Printf("wrote %s (%d fragments peak)\n", path, ctx.Stats().PeakFragments)
	}

	return nil
}

type colorVertex = shader.ColorVertex

func drawSingleOpaqueTriangle(ctx *swrast.Context) {
	verts := []colorVertex{
		{Position: vecmath.Vec3{X: -0.5, Y: -0.5, Z: 0}, Color: vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}},
		{Position: vecmath.Vec3{X: 0.5, Y: -0.5, Z: 0}, Color: vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}},
		{Position: vecmath.Vec3{X: 0, Y: 0.5, Z: 0}, Color: vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}},
	}
	uniforms := &shader.MVPUniforms{MVP: vecmath.Identity4()}
	ctx.SetProgram(shader.PassthroughVertex, shader.UnlitFragment, uniforms)
	drawVerts(ctx, verts)
}

func drawOverlappingOpaqueTriangles(ctx *swrast.Context) {
	uniforms := &shader.MVPUniforms{MVP: vecmath.Identity4()}
	ctx.SetProgram(shader.PassthroughVertex, shader.UnlitFragment, uniforms)

	back := []colorVertex{
		{Position: vecmath.Vec3{X: -0.6, Y: -0.6, Z: 0.8}, Color: vecmath.Vec4{X: 0, Y: 0, Z: 1, W: 1}},
		{Position: vecmath.Vec3{X: 0.6, Y: -0.6, Z: 0.8}, Color: vecmath.Vec4{X: 0, Y: 0, Z: 1, W: 1}},
		{Position: vecmath.Vec3{X: 0, Y: 0.6, Z: 0.8}, Color: vecmath.Vec4{X: 0, Y: 0, Z: 1, W: 1}},
	}
	front := []colorVertex{
		{Position: vecmath.Vec3{X: -0.4, Y: -0.4, Z: 0.2}, Color: vecmath.Vec4{X: 0, Y: 1, Z: 0, W: 1}},
		{Position: vecmath.Vec3{X: 0.4, Y: -0.4, Z: 0.2}, Color: vecmath.Vec4{X: 0, Y: 1, Z: 0, W: 1}},
		{Position: vecmath.Vec3{X: 0, Y: 0.4, Z: 0.2}, Color: vecmath.Vec4{X: 0, Y: 1, Z: 0, W: 1}},
	}

	drawVerts(ctx, back)
	drawVerts(ctx, front)
}

func drawTranslucentOverOpaque(ctx *swrast.Context) {
	uniforms := &shader.MVPUniforms{MVP: vecmath.Identity4()}
	ctx.SetProgram(shader.PassthroughVertex, shader.UnlitFragment, uniforms)

	opaque := []colorVertex{
		{Position: vecmath.Vec3{X: -0.6, Y: -0.6, Z: 0.5}, Color: vecmath.Vec4{X: 0, Y: 0, Z: 0, W: 1}},
		{Position: vecmath.Vec3{X: 0.6, Y: -0.6, Z: 0.5}, Color: vecmath.Vec4{X: 0, Y: 0, Z: 0, W: 1}},
		{Position: vecmath.Vec3{X: 0, Y: 0.6, Z: 0.5}, Color: vecmath.Vec4{X: 0, Y: 0, Z: 0, W: 1}},
	}
	translucent := []colorVertex{
		{Position: vecmath.Vec3{X: -0.5, Y: -0.5, Z: 0.2}, Color: vecmath.Vec4{X: 0, Y: 1, Z: 0, W: 0.5}},
		{Position: vecmath.Vec3{X: 0.5, Y: -0.5, Z: 0.2}, Color: vecmath.Vec4{X: 0, Y: 1, Z: 0, W: 0.5}},
		{Position: vecmath.Vec3{X: 0, Y: 0.5, Z: 0.2}, Color: vecmath.Vec4{X: 0, Y: 1, Z: 0, W: 0.5}},
	}

	drawVerts(ctx, opaque)
	drawVerts(ctx, translucent)
}

func drawVerts(ctx *swrast.Context, verts []colorVertex) {
	ctx.DrawTriangles(1, unsafe.Pointer(&verts[0]), unsafe.Sizeof(verts[0]))
}

func writeBMP(path string, ctx *swrast.Context) error {
	w, h := ctx.Width(), ctx.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	buf := ctx.ColorBuffer()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := vecmath.UnpackRGBA(buf[y*w+x])
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return bmp.Encode(f, img)
}
