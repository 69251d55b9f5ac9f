package exact

import (
	"math"
	"math/bits"
	"strconv"
)

// Rational is a normalized fraction num/den with den > 0 and
// gcd(|num|, den) == 1. The zero value is 0.
type Rational struct {
	num int64
	den int64 // 0 is read as 1 so that the zero value is valid
}

// Common values.
var (
	Zero = Rational{num: 0, den: 1}
	One  = Rational{num: 1, den: 1}
	Two  = Rational{num: 2, den: 1}
)

// New returns the normalized fraction num/den.
// The sign is folded onto the numerator and common factors are removed.
// A magnitude of 2^63 (from math.MinInt64) cannot be held as a positive
// int64 and is clamped to math.MaxInt64.
// New panics with ErrZeroDenominator if den is 0.
func New(num, den int64) Rational {
	if den == 0 {
		panic(ErrZeroDenominator)
	}
	if num == 0 {
		return Zero
	}
	neg := (num < 0) != (den < 0)
	n, d := abs64(num), abs64(den)

	g := gcd(n, d)
	n, d = n/g, d/g
	if n > math.MaxInt64 || d > math.MaxInt64 {
		n, d = min(n, math.MaxInt64), min(d, math.MaxInt64)
		g = gcd(n, d)
		n, d = n/g, d/g
	}

	if neg {
		return Rational{num: -int64(n), den: int64(d)}
	}
	return Rational{num: int64(n), den: int64(d)}
}

// Int returns the integer n as a Rational. math.MinInt64 is clamped to
// -math.MaxInt64, as in New.
func Int(n int64) Rational {
	if n == math.MinInt64 {
		n = -math.MaxInt64
	}
	return Rational{num: n, den: 1}
}

// Num returns the numerator.
func (q Rational) Num() int64 { return q.num }

// Denom returns the denominator, always > 0.
func (q Rational) Denom() int64 {
	if q.den == 0 {
		return 1
	}
	return q.den
}

// Sign returns -1, 0 or +1.
func (q Rational) Sign() int {
	switch {
	case q.num < 0:
		return -1
	case q.num > 0:
		return 1
	}
	return 0
}

// IsZero reports whether q == 0.
func (q Rational) IsZero() bool { return q.num == 0 }

// IsInt reports whether the denominator is 1.
func (q Rational) IsInt() bool { return q.Denom() == 1 }

// Neg returns -q.
func (q Rational) Neg() Rational {
	return Rational{num: -q.num, den: q.Denom()}
}

// Abs returns |q|.
func (q Rational) Abs() Rational {
	if q.num < 0 {
		return q.Neg()
	}
	return Rational{num: q.num, den: q.Denom()}
}

// Reciprocal returns 1/q. It panics with ErrDivisionByZero if q is zero.
func (q Rational) Reciprocal() Rational {
	if q.num == 0 {
		panic(ErrDivisionByZero)
	}
	return New(q.Denom(), q.num)
}

// Add returns q + rs[0] + rs[1] + ..., folded left to right.
func (q Rational) Add(rs ...Rational) Rational { return Fold(add, q, rs...) }

// Sub returns q - rs[0] - rs[1] - ..., folded left to right.
func (q Rational) Sub(rs ...Rational) Rational { return Fold(sub, q, rs...) }

// Mul returns q * rs[0] * rs[1] * ..., folded left to right.
func (q Rational) Mul(rs ...Rational) Rational { return Fold(mul, q, rs...) }

// Div returns q / rs[0] / rs[1] / ..., folded left to right.
func (q Rational) Div(rs ...Rational) Rational { return Fold(quo, q, rs...) }

// Square returns q * q.
func (q Rational) Square() Rational { return mul(q, q) }

// Equal reports whether q and r are the same fraction.
func (q Rational) Equal(r Rational) bool {
	return q.num == r.num && q.Denom() == r.Denom()
}

// Greater reports whether q > r using float64 approximations.
// Use Cmp when an exact ordering is required.
func (q Rational) Greater(r Rational) bool {
	return q.Float64() > r.Float64()
}

// Less reports whether q < r using float64 approximations.
func (q Rational) Less(r Rational) bool {
	return q.Float64() < r.Float64()
}

// Cmp compares q and r exactly and returns -1, 0 or +1.
func (q Rational) Cmp(r Rational) int {
	if qs, rs := q.Sign(), r.Sign(); qs != rs {
		if qs < rs {
			return -1
		}
		return 1
	}
	if q.num == 0 {
		return 0
	}

	// |q.num| * r.den vs |r.num| * q.den in 128 bits.
	lh, ll := bits.Mul64(abs64(q.num), uint64(r.Denom()))
	rh, rl := bits.Mul64(abs64(r.num), uint64(q.Denom()))
	c := 0
	switch {
	case lh < rh || (lh == rh && ll < rl):
		c = -1
	case lh > rh || (lh == rh && ll > rl):
		c = 1
	}
	return c * q.Sign()
}

// Float64 returns the nearest float64 to num/den.
func (q Rational) Float64() float64 {
	return float64(q.num) / float64(q.Denom())
}

// String returns "num/den", or "num" for integers.
func (q Rational) String() string {
	if q.IsInt() {
		return strconv.FormatInt(q.num, 10)
	}
	return strconv.FormatInt(q.num, 10) + "/" + strconv.FormatInt(q.Denom(), 10)
}

// halve coarsens q to (num/2)/(den/2). The caller ensures den > 1.
func (q Rational) halve() Rational {
	return New(q.num/2, q.Denom()/2)
}

// rebase returns q rounded to a fraction with denominator den, reporting
// false if the numerator would not fit.
func (q Rational) rebase(den int64) (Rational, bool) {
	d := uint64(q.Denom())
	hi, lo := bits.Mul64(abs64(q.num), uint64(den))
	lo, carry := bits.Add64(lo, d/2, 0)
	hi += carry
	if hi >= d {
		return Zero, false
	}
	n, _ := bits.Div64(hi, lo, d)
	if n > math.MaxInt64 {
		return Zero, false
	}
	if q.num < 0 {
		return New(-int64(n), den), true
	}
	return New(int64(n), den), true
}

// add is the binary overflow-safe sum.
func add(x, y Rational) Rational {
	// The common denominator itself must fit. Otherwise the operand with
	// the smaller denominator is rounded onto the larger one.
	for {
		g := int64(gcd(uint64(x.Denom()), uint64(y.Denom())))
		if mulFits(x.Denom()/g, y.Denom()) {
			break
		}
		if x.Denom() >= y.Denom() {
			if r, ok := y.rebase(x.Denom()); ok {
				y = r
			} else {
				x = x.halve()
			}
		} else {
			if r, ok := x.rebase(y.Denom()); ok {
				x = r
			} else {
				y = y.halve()
			}
		}
	}

	g := int64(gcd(uint64(x.Denom()), uint64(y.Denom())))
	expandX := y.Denom() / g
	expandY := x.Denom() / g
	lcm := expandY * y.Denom()

	sum, shift := scaledCrossSum(x.num, expandX, y.num, expandY)
	tz := bits.TrailingZeros64(uint64(lcm))
	if shift <= tz {
		return New(sum, lcm>>shift)
	}

	// The denominator cannot absorb the whole scale; carry the rest as
	// an explicit factor of 2^k.
	k := shift - tz
	base := New(sum, lcm>>tz)
	if k >= intBits-1 {
		return saturated(base.Sign())
	}
	return mul(base, Int(1<<k))
}

func sub(x, y Rational) Rational {
	return add(x, y.Neg())
}

// mul is the binary overflow-safe product. Operands are coarsened as soon
// as the bit lengths of either pair of factors sum past 63, even when the
// product itself would still fit.
func mul(x, y Rational) Rational {
	for mulExcess(x.num, y.num) > 0 || mulExcess(x.Denom(), y.Denom()) > 0 {
		if x.IsInt() && y.IsInt() {
			if mulFits(x.num, y.num) {
				break
			}
			return saturated(x.Sign() * y.Sign())
		}
		xLarger := x.Abs().Greater(y.Abs())
		switch {
		case xLarger && !x.IsInt():
			x = x.halve()
		case !xLarger && !y.IsInt():
			y = y.halve()
		case !x.IsInt():
			x = x.halve()
		default:
			y = y.halve()
		}
	}
	return New(x.num*y.num, x.Denom()*y.Denom())
}

// saturated returns the largest representable magnitude with the given sign.
func saturated(sign int) Rational {
	return Int(int64(sign) * math.MaxInt64)
}

func quo(x, y Rational) Rational {
	return mul(x, y.Reciprocal())
}
