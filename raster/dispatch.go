package raster

import "github.com/gogpu/swrast/shader"

// Rasterize dispatches tri to the rasterizer variant selected by mode.
func Rasterize(mode Mode, tri Triangle, width, height int, cullBackface bool, fs shader.FragmentShader, uniforms any, sink Sink) {
	switch mode {
	case ModeSIMD4:
		RasterizeSIMD4(tri, width, height, cullBackface, fs, uniforms, sink)
	default:
		RasterizeScalar(tri, width, height, cullBackface, fs, uniforms, sink)
	}
}
