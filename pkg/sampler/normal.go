// normal.go - Tangent-space normal map sampler.
// Derives per-pixel surface normals from a synthetic height field via
// central differences and encodes them with the usual (n*0.5+0.5)*255
// remapping, so a flat surface reads as (127.5, 127.5, 255).
package sampler

import "math"

// HeightField returns the synthetic bump-surface height at a pixel.
// Three superposed sinusoids at distinct spatial frequencies; independent of
// canvas size, so it is meaningful at integer pixel coordinates only.
func HeightField(x, y int) float64 {
	return math.Sin(float64(x)*0.12)*0.5 +
		math.Cos(float64(y)*0.09)*0.4 +
		math.Sin(float64(x+y)*0.04)*0.35
}

// Normal samples the normal map for the height field.
func Normal(x, y, width, height int) (r, g, b float64) {
	sx1 := HeightField(max(x-1, 0), y)
	sx2 := HeightField(min(x+1, width-1), y)
	sy1 := HeightField(x, max(y-1, 0))
	sy2 := HeightField(x, min(y+1, height-1))

	dx := (sx2 - sx1) * 1.5
	dy := (sy2 - sy1) * 1.5

	nx, ny, nz := -dx, -dy, 1.0
	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	nx /= length
	ny /= length
	nz /= length

	return (nx*0.5 + 0.5) * 255, (ny*0.5 + 0.5) * 255, (nz*0.5 + 0.5) * 255
}
