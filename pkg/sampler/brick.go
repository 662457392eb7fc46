// brick.go - Lit-brick base color sampler.
// A warm directional gradient with low-frequency noise, overlaid with a
// running-bond mortar grid: horizontal joints every 32 rows, vertical joints
// every 64 columns with a half-brick offset on alternating rows.
package sampler

import "math"

const (
	brickRow   = 32 // height of one course, including the joint
	brickSpan  = 64 // width of one brick, including the joint
	jointWidth = 2  // mortar thickness in pixels

	mortarBlock = 32 // column block width for mortar shading
	mortarEven  = 28 // mortar gray for even column blocks
	mortarOdd   = 18 // mortar gray for odd column blocks
)

// BaseTexture samples the brick base-color map.
func BaseTexture(x, y, width, height int) (r, g, b float64) {
	gx := float64(x) / float64(width)
	gy := float64(y) / float64(height)

	noise := (math.Sin(float64(x)*0.37) + math.Cos(float64(y)*0.29) + math.Sin(float64(x+y)*0.11)) * 7
	base := 112 + float64(int(20*gx+12*gy+noise))

	horizJoint := y%brickRow < jointWidth

	// Odd courses shift by a quarter span for the running bond.
	offset := 0
	if (y/brickRow)%2 == 1 {
		offset = brickSpan / 4
	}
	vertJoint := (x+offset)%brickSpan < jointWidth

	if horizJoint || vertJoint {
		mortar := float64(mortarEven)
		if (x/mortarBlock)%2 == 1 {
			mortar = mortarOdd
		}
		return mortar, mortar, mortar
	}

	// Fixed per-channel offsets push bricks toward warm red.
	return base + 28, base + 16, base + 8
}
