package qmandel

import "math"

// Shader maps an escape count and the iteration budget to a pixel color.
type Shader func(count, max uint) RGB

// Intensity scales count onto [0, 255] in steps of 256/max, clamped to
// 255: count*(256/max). The step is an integer, so budgets above 256 map
// every count to 0 and budgets that do not divide 256 never reach full
// white. A zero budget yields 0.
func Intensity(count, max uint) uint8 {
	if max == 0 {
		return 0
	}
	v := uint64(count) * uint64(256/max)
	return uint8(min(v, math.MaxUint8))
}

// Grayscale is the default Shader: all three channels equal to Intensity.
func Grayscale(count, max uint) RGB {
	return Gray(Intensity(count, max))
}
