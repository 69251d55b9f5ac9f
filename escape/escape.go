// Package escape implements the Mandelbrot escape-time evaluator and the
// mapping from pixel coordinates to points of the complex plane, both in
// exact rational arithmetic.
package escape

import "github.com/gogpu/qmandel/exact"

// DefaultIterations is the iteration budget used when none is given.
const DefaultIterations = 16

// bailout is the squared escape radius.
var bailout = exact.Int(4)

// Result is the outcome of evaluating one point.
type Result struct {
	// Count is the number of iterations performed before |z|² exceeded 4,
	// or the budget if it never did. Count equals the budget both for
	// points that stayed bounded and for points that escaped on the
	// final iteration.
	Count uint

	// Escaped distinguishes the two meanings of Count == budget.
	Escaped bool
}

// Iterate returns the escape count of c with budget n: starting from
// z = 0, it applies z ← z² + c until |z|² > 4 and returns the number of
// updates made. Points that do not escape within n updates return n.
func Iterate(c exact.Complex, n uint) uint {
	return Evaluate(c, n).Count
}

// Evaluate is Iterate with the escape state made explicit.
func Evaluate(c exact.Complex, n uint) Result {
	var z exact.Complex
	for i := range n {
		if escaped(z) {
			return Result{Count: i, Escaped: true}
		}
		z = z.Square().Add(c)
	}
	return Result{Count: n, Escaped: escaped(z)}
}

func escaped(z exact.Complex) bool {
	return z.NormSq().Greater(bailout)
}
