package exact

import (
	"math"
	"math/bits"
)

// intBits is the number of value bits of int64.
const intBits = 63

// abs64 returns |x| as uint64. Correct for math.MinInt64.
func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// bitLen returns the position of the highest set bit of |x|.
func bitLen(x int64) int {
	return bits.Len64(abs64(x))
}

// mulExcess returns how many bits x*y would need beyond intBits, or 0 if
// the product fits.
func mulExcess(x, y int64) int {
	return max(0, bitLen(x)+bitLen(y)-intBits)
}

// mulFits reports whether x*y is representable, exactly rather than by bit count.
func mulFits(x, y int64) bool {
	hi, lo := bits.Mul64(abs64(x), abs64(y))
	return hi == 0 && lo <= math.MaxInt64
}

// addOverflows reports whether x+y would overflow int64.
func addOverflows(x, y int64) bool {
	if y >= 0 {
		return x > math.MaxInt64-y
	}
	return x < math.MinInt64-y
}

// roundShift returns x >> n rounded to nearest, i.e. (x + 1<<(n-1)) >> n,
// without forming the intermediate sum.
func roundShift(x int64, n int) int64 {
	if n <= 0 {
		return x
	}
	if n >= 64 {
		return 0
	}
	return (x >> n) + ((x >> (n - 1)) & 1)
}

// shiftLarger scales down whichever of x, y has the larger magnitude.
func shiftLarger(x, y int64, n int) (int64, int64) {
	if abs64(y) > abs64(x) {
		return x, roundShift(y, n)
	}
	return roundShift(x, n), y
}

// scaledCrossSum computes a*b + c*d scaled down by 2^shift so that no
// product or sum overflows. Both products are always scaled by the same
// factor, so the caller divides the common denominator by 2^shift.
func scaledCrossSum(a, b, c, d int64) (sum int64, shift int) {
	for {
		of := max(mulExcess(a, b), mulExcess(c, d))
		if of == 0 {
			break
		}
		a, b = shiftLarger(a, b, of)
		c, d = shiftLarger(c, d, of)
		shift += of
	}

	ab, cd := a*b, c*d
	if addOverflows(ab, cd) {
		return ab/2 + cd/2, shift + 1
	}
	return ab + cd, shift
}

// gcd returns the greatest common divisor of a and b. gcd(a, 0) == a.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
