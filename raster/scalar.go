package raster

import "github.com/gogpu/swrast/shader"

// RasterizeScalar rasterizes tri into the width x height framebuffer using
// per-pixel incremental edge-function stepping: edges are evaluated once at
// the bounding box's top-left sample and then stepped by a constant delta
// per pixel/row, never re-evaluated from scratch.
func RasterizeScalar(tri Triangle, width, height int, cullBackface bool, fs shader.FragmentShader, uniforms any, sink Sink) {
	v0, v1, v2 := tri.V[0].Position, tri.V[1].Position, tri.V[2].Position

	// Edge 2 (v0->v1) evaluated at v2 gives the triangle's signed area,
	// before any winding normalization.
	signedArea := newEdgeFunction(v0.X, v0.Y, v1.X, v1.Y).evaluate(v2.X, v2.Y)

	if cullBackface && signedArea < 0 {
		return
	}
	if abs32(signedArea) < degenerateAreaEpsilon {
		return
	}

	minX, minY, maxX, maxY, ok := boundingBox(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y, width, height)
	if !ok {
		return
	}

	te := newTriangleEdges(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)

	startX := float32(minX) + 0.5
	startY := float32(minY) + 0.5

	rowW0 := te.edges[0].evaluate(startX, startY)
	rowW1 := te.edges[1].evaluate(startX, startY)
	rowW2 := te.edges[2].evaluate(startX, startY)

	stepX0, stepY0 := te.edges[0].A, te.edges[0].B
	stepX1, stepY1 := te.edges[1].A, te.edges[1].B
	stepX2, stepY2 := te.edges[2].A, te.edges[2].B

	for py := minY; py <= maxY; py++ {
		w0, w1, w2 := rowW0, rowW1, rowW2
		for px := minX; px <= maxX; px++ {
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				shadePixel(&tri, px, py, w0, w1, w2, te.invArea, width, fs, uniforms, sink)
			}
			w0 += stepX0
			w1 += stepX1
			w2 += stepX2
		}
		rowW0 += stepY0
		rowW1 += stepY1
		rowW2 += stepY2
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
