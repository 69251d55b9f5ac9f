// Package exact provides rational and complex numbers over a fixed-width
// integer representation.
//
// # Overview
//
// A Rational is a normalized fraction of two int64 values. A Complex is a
// pair of Rationals. Both are small immutable values: every operation
// returns a new, normalized value and never mutates its receiver.
//
//	a := exact.New(2, 3)
//	b := exact.New(2, 5)
//	sum := a.Add(b, exact.New(1, -15)) // 1
//
// # Overflow
//
// Results are exact as long as the intermediate products fit in 63 bits.
// When they would not, the operands are coarsened before multiplying:
// addition shifts the larger factor of each cross product right (with
// rounding) and corrects the common denominator, multiplication halves the
// numerator and denominator of the larger operand until the bit lengths of
// each factor pair sum to at most 63.
// Precision is lost deterministically; no operation ever overflows.
//
// # Comparisons
//
// Equal compares normalized pairs exactly. Greater and Less compare float64
// approximations and are meant for magnitude decisions such as escape
// tests. Cmp is exact.
package exact
