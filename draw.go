package swrast

import (
	"unsafe"

	"github.com/gogpu/swrast/raster"
	"github.com/gogpu/swrast/shader"
)

const nearPlaneEpsilon = 1e-3

// DrawTriangles steps through count triangles (3*count vertex records) read
// from vertices, a buffer of caller-defined records spaced stride bytes
// apart. Each triple is run through the vertex shader, near-plane rejected,
// perspective divided, viewport mapped, and handed to the selected
// rasterizer, which inserts its shaded fragments into the A-buffer.
//
// The transform stacks are not applied automatically: vertex shaders read
// whatever matrices they need from their uniforms value, which the caller
// typically populates from GetModelViewMatrix/GetProjectionMatrix before
// calling DrawTriangles.
//
// DrawTriangles no-ops (after logging a warning) if no program is set or the
// framebuffer is zero-sized.
func (c *Context) DrawTriangles(count int, vertices unsafe.Pointer, stride uintptr) {
	if c == nil {
		return
	}
	if !c.program.IsValid() {
		Logger().Warn("draw_triangles: no-op, vertex or fragment shader unset")
		return
	}
	if c.width <= 0 || c.height <= 0 {
		Logger().Warn("draw_triangles: no-op, zero-size framebuffer")
		return
	}

	for i := 0; i < count; i++ {
		var tri raster.Triangle
		discard := false

		for j := 0; j < 3; j++ {
			vertexPtr := unsafeVertexAt(vertices, stride, i*3+j)
			out := c.program.Vertex(c.program.Uniforms, vertexPtr)

			if out.Position.W <= nearPlaneEpsilon {
				discard = true
			}
			tri.V[j] = out
		}
		if discard {
			continue
		}

		for j := 0; j < 3; j++ {
			p := &tri.V[j].Position
			invW := 1 / p.W
			p.X *= invW
			p.Y *= invW
			p.Z *= invW
			p.W = invW

			p.X = (p.X + 1) * float32(c.width) / 2
			p.Y = (1 - p.Y) * float32(c.height) / 2
		}

		raster.Rasterize(c.rastMode, tri, c.width, c.height, c.cullBackface, c.program.Fragment, c.program.Uniforms, c.insertFragment)
	}
}

func (c *Context) insertFragment(pixel int, z float32, out shader.FragmentOut) {
	c.abuf.Insert(pixel, z, out.Color, out.Opacity)
}
