package shader

import (
	"unsafe"

	"github.com/gogpu/swrast/vecmath"
)

// ColorVertex is a minimal vertex input: object-space position plus an RGBA
// color, read directly from the caller's raw vertex buffer.
type ColorVertex struct {
	Position vecmath.Vec3
	Color    vecmath.Vec4
}

// MVPUniforms holds a single model-view-projection matrix, the simplest
// uniforms block a vertex shader can use.
type MVPUniforms struct {
	MVP vecmath.Mat4
}

// PassthroughVertex transforms a ColorVertex by uniforms.(*MVPUniforms).MVP
// and passes its color straight through for interpolation.
func PassthroughVertex(uniforms any, vertex unsafe.Pointer) VertexOut {
	u := uniforms.(*MVPUniforms)
	v := (*ColorVertex)(vertex)
	return VertexOut{
		Position: u.MVP.MulVec4(v.Position.V4(1)),
		Color:    v.Color,
	}
}

// UnlitFragment returns the interpolated vertex color premultiplied by full
// opacity, i.e. a flat-shaded opaque fragment.
func UnlitFragment(_ any, in *VertexOut) FragmentOut {
	c := in.Color
	return FragmentOut{
		Color:   vecmath.Vec3{X: c.X * c.W, Y: c.Y * c.W, Z: c.Z * c.W},
		Opacity: vecmath.Vec3{X: c.W, Y: c.W, Z: c.W},
	}
}

// BarycentricFragment visualizes the rasterizer's barycentric weights as a
// color, useful for debugging triangle coverage.
func BarycentricFragment(_ any, in *VertexOut) FragmentOut {
	return FragmentOut{
		Color:   in.Barycentric,
		Opacity: vecmath.Vec3{X: 1, Y: 1, Z: 1},
	}
}
