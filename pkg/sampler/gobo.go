// gobo.go - Radial gobo (light cutout) mask sampler.
// Eight angular spokes intersected with an annulus, softened by a radial
// falloff band and lifted by a constant ambient floor. Grayscale output.
package sampler

import "math"

const (
	goboSpokes   = 8    // wedge beams around the circle
	goboInnerR   = 55   // annulus inner radius, exclusive
	goboOuterR   = 230  // annulus outer radius, exclusive
	goboBandR    = 140  // center of the soft falloff band
	goboAmbient  = 0.15 // constant ambient floor
	goboContrast = 0.85 // weight of the modulated signal
)

// Gobo samples the circular light-cutout mask. At the exact canvas center
// only the ambient floor contributes.
func Gobo(x, y, width, height int) (r, g, b float64) {
	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	dx := float64(x) - cx
	dy := float64(y) - cy

	rad := math.Hypot(dx, dy)
	ang := math.Atan2(dy, dx)

	lit := 0.0
	if math.Sin(ang*goboSpokes) > 0.2 && rad > goboInnerR && rad < goboOuterR {
		lit = 1.0
	}

	soft := 1 - math.Abs(rad-goboBandR)/goboBandR
	soft = math.Max(0, math.Min(1, soft))

	v := float64(int((goboAmbient + goboContrast*lit*soft) * 255))
	return v, v, v
}
