package raster

import (
	"github.com/gogpu/swrast/shader"
	"github.com/gogpu/swrast/vecmath"
)

// Mode selects which rasterizer variant a Context dispatches triangles to.
// The two variants are semantically identical; SIMD4 is a faster path that
// processes pixels four at a time.
type Mode int

const (
	// ModeScalar processes one pixel per iteration.
	ModeScalar Mode = iota
	// ModeSIMD4 processes four pixels per iteration using fixed-size arrays
	// the compiler can autovectorize, falling back to the scalar per-pixel
	// helper for shading and A-buffer insertion.
	ModeSIMD4
)

// degenerateAreaEpsilon is the minimum |signed area| a triangle must have
// to be rasterized; anything smaller is treated as degenerate.
const degenerateAreaEpsilon = 1e-4

// Sink receives one shaded fragment at (screen) pixel index px+py*width
// with interpolated depth z, for insertion into the A-buffer.
type Sink func(pixel int, z float32, out shader.FragmentOut)

// Triangle is the rasterizer's input: three vertices already advanced
// through the vertex stage (position.xyz in screen space, position.w =
// 1/w_clip, per spec §4.3).
type Triangle struct {
	V [3]shader.VertexOut
}

// boundingBox computes the integer pixel bounding box of the triangle,
// clamped to [0, width-1] x [0, height-1]. ok is false when the triangle's
// extent lies entirely outside the framebuffer.
func boundingBox(x0, y0, x1, y1, x2, y2 float32, width, height int) (minX, minY, maxX, maxY int, ok bool) {
	minXf := min3(x0, x1, x2)
	maxXf := max3(x0, x1, x2)
	minYf := min3(y0, y1, y2)
	maxYf := max3(y0, y1, y2)

	if maxXf < 0 || maxYf < 0 || minXf >= float32(width) || minYf >= float32(height) {
		return 0, 0, 0, 0, false
	}

	minX = clampInt(int(minXf), 0, width-1)
	maxX = clampInt(int(maxXf), 0, width-1)
	minY = clampInt(int(minYf), 0, height-1)
	maxY = clampInt(int(maxYf), 0, height-1)

	return minX, minY, maxX, maxY, minX <= maxX && minY <= maxY
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// shadePixel builds the interpolated vertex-out for the pixel at (px, py)
// given edge values w0, w1, w2 and the triangle's inverse area, runs the
// fragment shader, and forwards the result to sink if the interpolated
// depth lands in [0, 1].
func shadePixel(tri *Triangle, px, py int, w0, w1, w2, invArea float32, width int, fs shader.FragmentShader, uniforms any, sink Sink) {
	alpha := w0 * invArea
	beta := w1 * invArea
	gamma := w2 * invArea

	v0, v1, v2 := &tri.V[0], &tri.V[1], &tri.V[2]
	invW0, invW1, invW2 := v0.Position.W, v1.Position.W, v2.Position.W

	wRecip := alpha*invW0 + beta*invW1 + gamma*invW2
	if wRecip == 0 {
		return
	}
	wFinal := 1 / wRecip

	z := (v0.Position.Z*invW0*alpha + v1.Position.Z*invW1*beta + v2.Position.Z*invW2*gamma) * wFinal
	if z < 0 || z > 1 {
		return
	}

	wa := alpha * invW0 * wFinal
	wb := beta * invW1 * wFinal
	wg := gamma * invW2 * wFinal

	var out shader.VertexOut
	out.Position = vecmath.Vec4{X: float32(px) + 0.5, Y: float32(py) + 0.5, Z: z, W: wFinal}
	out.Color = vecmath.Vec4{
		X: v0.Color.X*wa + v1.Color.X*wb + v2.Color.X*wg,
		Y: v0.Color.Y*wa + v1.Color.Y*wb + v2.Color.Y*wg,
		Z: v0.Color.Z*wa + v1.Color.Z*wb + v2.Color.Z*wg,
		W: v0.Color.W*wa + v1.Color.W*wb + v2.Color.W*wg,
	}
	out.UV = vecmath.Vec2{
		X: v0.UV.X*wa + v1.UV.X*wb + v2.UV.X*wg,
		Y: v0.UV.Y*wa + v1.UV.Y*wb + v2.UV.Y*wg,
	}
	out.Normal = vecmath.Vec3{
		X: v0.Normal.X*wa + v1.Normal.X*wb + v2.Normal.X*wg,
		Y: v0.Normal.Y*wa + v1.Normal.Y*wb + v2.Normal.Y*wg,
		Z: v0.Normal.Z*wa + v1.Normal.Z*wb + v2.Normal.Z*wg,
	}
	if v0.HasTangent && v1.HasTangent && v2.HasTangent {
		out.HasTangent = true
		out.Tangent = vecmath.Vec4{
			X: v0.Tangent.X*wa + v1.Tangent.X*wb + v2.Tangent.X*wg,
			Y: v0.Tangent.Y*wa + v1.Tangent.Y*wb + v2.Tangent.Y*wg,
			Z: v0.Tangent.Z*wa + v1.Tangent.Z*wb + v2.Tangent.Z*wg,
			W: v0.Tangent.W*wa + v1.Tangent.W*wb + v2.Tangent.W*wg,
		}
	}
	out.Barycentric = vecmath.Vec3{X: alpha, Y: beta, Z: gamma}

	fragOut := fs(uniforms, &out)
	sink(py*width+px, z, fragOut)
}
