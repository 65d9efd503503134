// Package swrast is a CPU-only software triangle rasterizer with a
// programmable vertex/fragment shader pipeline and an order-independent
// transparency A-buffer. It renders into an in-memory color buffer; there is
// no window system integration and no GPU acceleration.
package swrast

import (
	"unsafe"

	"github.com/gogpu/swrast/abuffer"
	"github.com/gogpu/swrast/raster"
	"github.com/gogpu/swrast/shader"
	"github.com/gogpu/swrast/vecmath"
)

// Context owns a color buffer, its transform stacks, the current shader
// program, and the A-buffer used to accumulate translucent fragments before
// Resolve composites them down to a flat image.
//
// Every exported method is safe to call on a nil *Context: it no-ops rather
// than panicking, matching the rest of the package's defensive style.
type Context struct {
	width, height int
	color         []uint32

	stacks *vecmath.StackPair

	program      shader.Program
	cullBackface bool
	rastMode     raster.Mode

	arena   *abuffer.Arena
	abuf    *abuffer.ABuffer
	clearBG uint32
}

// Init allocates a Context for a width x height color buffer. Both
// dimensions must be positive; Init returns nil otherwise.
func Init(width, height int) *Context {
	if width <= 0 || height <= 0 {
		return nil
	}
	arena := abuffer.NewArena()
	arena.SetLogger(Logger())
	c := &Context{
		width:    width,
		height:   height,
		color:    make([]uint32, width*height),
		stacks:   vecmath.NewStackPair(),
		rastMode: raster.ModeScalar,
		arena:    arena,
		abuf:     abuffer.New(width, height, arena),
	}
	return c
}

// Shutdown releases the Context's backing storage. The Context must not be
// used afterward.
func (c *Context) Shutdown() {
	if c == nil {
		return
	}
	c.color = nil
	c.abuf = nil
	c.arena = nil
}

// Width returns the color buffer's width in pixels.
func (c *Context) Width() int {
	if c == nil {
		return 0
	}
	return c.width
}

// Height returns the color buffer's height in pixels.
func (c *Context) Height() int {
	if c == nil {
		return 0
	}
	return c.height
}

// ColorBuffer returns the packed RGBA8 color buffer, row-major, one uint32
// per pixel (see vecmath.PackRGBA). Valid only after Resolve.
func (c *Context) ColorBuffer() []uint32 {
	if c == nil {
		return nil
	}
	return c.color
}

// Stats reports the A-buffer arena's current allocation profile.
func (c *Context) Stats() abuffer.Stats {
	if c == nil {
		return abuffer.Stats{}
	}
	return c.arena.Stats()
}

// Clear resets the color buffer to bg and discards every pending A-buffer
// fragment. depth is accepted for API symmetry with depth-buffered
// rasterizers but unused: this rasterizer has no depth buffer, only the
// A-buffer's per-pixel sorted list.
func (c *Context) Clear(bg uint32, depth float32) {
	if c == nil {
		return
	}
	c.clearBG = bg
	for i := range c.color {
		c.color[i] = bg
	}
	c.abuf.Reset()
}

// SetProgram installs the vertex and fragment shaders used by subsequent
// DrawTriangles calls, along with the opaque uniform value passed to both.
func (c *Context) SetProgram(vs shader.VertexShader, fs shader.FragmentShader, uniforms any) {
	if c == nil {
		return
	}
	c.program = shader.Program{Vertex: vs, Fragment: fs, Uniforms: uniforms}
}

// SetRasterizerMode selects the scalar or SIMD4 rasterizer variant.
func (c *Context) SetRasterizerMode(mode raster.Mode) {
	if c == nil {
		return
	}
	c.rastMode = mode
}

// EnableCullFace enables or disables back-face culling: triangles whose
// screen-space signed area E(v0,v1,v2) (spec §4.4's edge-function
// convention) is negative are discarded when enabled.
func (c *Context) EnableCullFace(enable bool) {
	if c == nil {
		return
	}
	c.cullBackface = enable
}

// unsafeVertexAt returns a pointer to the vertex at index i within a buffer
// of vertices spaced stride bytes apart, starting at base.
func unsafeVertexAt(base unsafe.Pointer, stride uintptr, i int) unsafe.Pointer {
	return unsafe.Pointer(uintptr(base) + uintptr(i)*stride)
}
