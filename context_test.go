package swrast

import (
	"testing"
	"unsafe"

	"github.com/gogpu/swrast/abuffer"
	"github.com/gogpu/swrast/raster"
	"github.com/gogpu/swrast/shader"
	"github.com/gogpu/swrast/vecmath"
)

func vertsPointer(verts []shader.ColorVertex) unsafe.Pointer {
	return unsafe.Pointer(&verts[0])
}

func vertsStride(verts []shader.ColorVertex) uintptr {
	return unsafe.Sizeof(verts[0])
}

func TestSingleOpaqueTriangle(t *testing.T) {
	ctx := Init(64, 64)
	ctx.Clear(0x00000000, 1)
	ctx.SetProgram(shader.PassthroughVertex, shader.UnlitFragment, &shader.MVPUniforms{MVP: vecmath.Identity4()})

	verts := []shader.ColorVertex{
		{Position: vecmath.Vec3{X: -0.5, Y: -0.5, Z: 0}, Color: vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}},
		{Position: vecmath.Vec3{X: 0.5, Y: -0.5, Z: 0}, Color: vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}},
		{Position: vecmath.Vec3{X: 0, Y: 0.5, Z: 0}, Color: vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}},
	}
	drawColorTriangle(ctx, verts)
	ctx.Resolve()

	center := ctx.ColorBuffer()[32*64+32]
	if center != 0xFF0000FF {
		t.Errorf("center pixel = 0x%08X, want 0xFF0000FF", center)
	}
	corner := ctx.ColorBuffer()[0]
	if corner != 0x00000000 {
		t.Errorf("corner pixel = 0x%08X, want 0x00000000", corner)
	}
}

func TestSubmissionOrderInvariance(t *testing.T) {
	render := func(firstColor, secondColor vecmath.Vec4, firstZ, secondZ float32) uint32 {
		ctx := Init(64, 64)
		ctx.Clear(0, 1)
		ctx.SetProgram(shader.PassthroughVertex, shader.UnlitFragment, &shader.MVPUniforms{MVP: vecmath.Identity4()})

		tri := func(z float32, c vecmath.Vec4) []shader.ColorVertex {
			return []shader.ColorVertex{
				{Position: vecmath.Vec3{X: -0.6, Y: -0.6, Z: z}, Color: c},
				{Position: vecmath.Vec3{X: 0.6, Y: -0.6, Z: z}, Color: c},
				{Position: vecmath.Vec3{X: 0, Y: 0.6, Z: z}, Color: c},
			}
		}
		drawColorTriangle(ctx, tri(firstZ, firstColor))
		drawColorTriangle(ctx, tri(secondZ, secondColor))
		ctx.Resolve()
		return ctx.ColorBuffer()[32*64+32]
	}

	red := vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}
	green := vecmath.Vec4{X: 0, Y: 1, Z: 0, W: 1}

	forward := render(red, green, 0.5, 0.2)
	reverse := render(green, red, 0.2, 0.5)

	// Packed little-endian RGBA (vecmath.PackRGBA): alpha in the top byte,
	// red in the bottom byte. Green at full opacity packs to 0xFF00FF00.
	if forward != 0xFF00FF00 {
		t.Errorf("forward order center = 0x%08X, want green 0xFF00FF00", forward)
	}
	if reverse != 0xFF00FF00 {
		t.Errorf("reverse order center = 0x%08X, want green 0xFF00FF00", reverse)
	}
}

func TestTranslucentOverOpaque(t *testing.T) {
	ctx := Init(64, 64)
	ctx.Clear(0, 1)
	ctx.SetProgram(shader.PassthroughVertex, shader.UnlitFragment, &shader.MVPUniforms{MVP: vecmath.Identity4()})

	opaque := []shader.ColorVertex{
		{Position: vecmath.Vec3{X: -0.6, Y: -0.6, Z: 0.5}, Color: vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}},
		{Position: vecmath.Vec3{X: 0.6, Y: -0.6, Z: 0.5}, Color: vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}},
		{Position: vecmath.Vec3{X: 0, Y: 0.6, Z: 0.5}, Color: vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}},
	}
	translucent := []shader.ColorVertex{
		{Position: vecmath.Vec3{X: -0.5, Y: -0.5, Z: 0.2}, Color: vecmath.Vec4{X: 0, Y: 1, Z: 0, W: 0.5}},
		{Position: vecmath.Vec3{X: 0.5, Y: -0.5, Z: 0.2}, Color: vecmath.Vec4{X: 0, Y: 1, Z: 0, W: 0.5}},
		{Position: vecmath.Vec3{X: 0, Y: 0.5, Z: 0.2}, Color: vecmath.Vec4{X: 0, Y: 1, Z: 0, W: 0.5}},
	}
	drawColorTriangle(ctx, opaque)
	drawColorTriangle(ctx, translucent)
	ctx.Resolve()

	r, g, b, _ := vecmath.UnpackRGBA(ctx.ColorBuffer()[32*64+32])
	if abs8(int(r), 128) > 1 {
		t.Errorf("R = %d, want ~128", r)
	}
	if abs8(int(g), 128) > 1 {
		t.Errorf("G = %d, want ~128", g)
	}
	if b != 0 {
		t.Errorf("B = %d, want 0", b)
	}
}

func abs8(a, b int) int {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

func TestABufferOpaqueCulling(t *testing.T) {
	arena := abuffer.NewArena()
	buf := abuffer.New(1, 1, arena)

	for i := 0; i < 100; i++ {
		buf.Insert(0, float32(i), vecmath.Vec3{X: 1, Y: 1, Z: 1}, vecmath.Vec3{X: 1, Y: 1, Z: 1})
	}

	if got := buf.Len(0); got != 1 {
		t.Errorf("list length = %d, want 1", got)
	}
	stats := arena.Stats()
	if stats.ActiveFragments != 1 {
		t.Errorf("active fragments = %d, want 1", stats.ActiveFragments)
	}
}

// fixedWVertexShader builds a VertexOut with clip w fixed at the uniform
// value, independent of the vertex's own data, to drive near-plane
// rejection deterministically.
func fixedWVertexShader(uniforms any, vertexPtr unsafe.Pointer) shader.VertexOut {
	w := *(uniforms.(*float32))
	v := (*shader.ColorVertex)(vertexPtr)
	return shader.VertexOut{
		Position: vecmath.Vec4{X: v.Position.X, Y: v.Position.Y, Z: v.Position.Z, W: w},
		Color:    v.Color,
	}
}

func TestNearPlaneRejection(t *testing.T) {
	render := func(w float32) *Context {
		ctx := Init(64, 64)
		ctx.Clear(0, 1)
		ctx.SetProgram(fixedWVertexShader, shader.UnlitFragment, &w)
		verts := []shader.ColorVertex{
			{Position: vecmath.Vec3{X: -0.5, Y: -0.5, Z: 0}, Color: vecmath.Vec4{X: 1, Y: 1, Z: 1, W: 1}},
			{Position: vecmath.Vec3{X: 0.5, Y: -0.5, Z: 0}, Color: vecmath.Vec4{X: 1, Y: 1, Z: 1, W: 1}},
			{Position: vecmath.Vec3{X: 0, Y: 0.5, Z: 0}, Color: vecmath.Vec4{X: 1, Y: 1, Z: 1, W: 1}},
		}
		drawColorTriangle(ctx, verts)
		ctx.Resolve()
		return ctx
	}

	rejected := render(0.0005)
	if c := rejected.ColorBuffer()[32*64+32]; c != 0 {
		t.Errorf("expected triangle with w=0.0005 to be rejected, got 0x%08X", c)
	}

	drawn := render(1)
	if c := drawn.ColorBuffer()[32*64+32]; c == 0 {
		t.Error("expected triangle with w=1 to be drawn")
	}
}

func TestMatrixStackPushPopIdentity(t *testing.T) {
	ctx := Init(4, 4)
	ctx.MatrixMode(vecmath.ModeModelView)
	ctx.LoadIdentity()
	ctx.Translate(1, 2, 3)
	before := ctx.GetModelViewMatrix()

	ctx.Push()
	ctx.Translate(5, 5, 5)
	ctx.Pop()

	after := ctx.GetModelViewMatrix()
	if after != before {
		t.Errorf("push/pop did not restore matrix: before=%v after=%v", before, after)
	}
}

func TestNilContextMethodsNoop(t *testing.T) {
	var ctx *Context
	ctx.Shutdown()
	ctx.Clear(0, 0)
	ctx.SetProgram(nil, nil, nil)
	ctx.SetRasterizerMode(raster.ModeSIMD4)
	ctx.EnableCullFace(true)
	ctx.DrawTriangles(0, nil, 0)
	ctx.Resolve()
	ctx.Push()
	ctx.Pop()
	ctx.Translate(1, 1, 1)

	if ctx.Width() != 0 || ctx.Height() != 0 {
		t.Error("nil Context should report zero dimensions")
	}
	if ctx.ColorBuffer() != nil {
		t.Error("nil Context should return a nil color buffer")
	}
}

func TestInitRejectsNonPositiveDimensions(t *testing.T) {
	if Init(0, 10) != nil {
		t.Error("Init(0, 10) should return nil")
	}
	if Init(10, -1) != nil {
		t.Error("Init(10, -1) should return nil")
	}
}

func drawColorTriangle(ctx *Context, verts []shader.ColorVertex) {
	ctx.DrawTriangles(1, vertsPointer(verts), vertsStride(verts))
}
