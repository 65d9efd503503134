// Package shader defines the vertex/fragment shader ABI the rasterizer
// invokes per triangle and per fragment, plus a handful of library shaders
// useful for testing and demos.
package shader

import (
	"unsafe"

	"github.com/gogpu/swrast/vecmath"
)

// VertexOut is the record produced by a vertex shader and consumed by the
// rasterizer. Position starts out in clip space; the core rewrites it to
// (screen-x, screen-y, ndc-z, 1/w) before the rasterizer sees it.
// Barycentric is written by the rasterizer itself and is only meaningful to
// a fragment shader that wants it (e.g. a wireframe overlay); the core
// never interprets it.
type VertexOut struct {
	Position    vecmath.Vec4
	Color       vecmath.Vec4
	UV          vecmath.Vec2
	Normal      vecmath.Vec3
	Tangent     vecmath.Vec4
	HasTangent  bool
	Barycentric vecmath.Vec3
}

// FragmentOut is the value a fragment shader returns: a premultiplied color
// and a per-channel opacity (transmission), both in [0, 1]. Opacity of 1
// means the fragment fully occludes that channel.
type FragmentOut struct {
	Color   vecmath.Vec3
	Opacity vecmath.Vec3
}

// VertexShader transforms one raw vertex record into a VertexOut. vertex
// points at stride bytes owned by the caller; the shader alone knows how to
// interpret them — the core never dereferences it itself.
type VertexShader func(uniforms any, vertex unsafe.Pointer) VertexOut

// FragmentShader computes a shaded color/opacity pair from an interpolated
// VertexOut.
type FragmentShader func(uniforms any, in *VertexOut) FragmentOut

// Program bundles a shader pair with the uniforms pointer the core forwards
// to both, untouched and uncopied.
type Program struct {
	Vertex   VertexShader
	Fragment FragmentShader
	Uniforms any
}

// IsValid reports whether both shader stages are set.
func (p Program) IsValid() bool {
	return p.Vertex != nil && p.Fragment != nil
}
