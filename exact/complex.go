package exact

// Complex is a complex number with Rational parts.
// The zero value is 0+0i. Complex values are comparable.
type Complex struct {
	re Rational
	im Rational
}

// Imaginary unit.
var I = Complex{re: Zero, im: One}

// C returns re + im·i.
func C(re, im Rational) Complex {
	return Complex{re: re, im: im}
}

// Real returns re + 0i.
func Real(re Rational) Complex {
	return Complex{re: re, im: Zero}
}

// Re returns the real part.
func (z Complex) Re() Rational { return z.re }

// Im returns the imaginary part.
func (z Complex) Im() Rational { return z.im }

// Add returns z + ws[0] + ws[1] + ..., folded left to right.
func (z Complex) Add(ws ...Complex) Complex { return Fold(cadd, z, ws...) }

// Sub returns z - ws[0] - ws[1] - ..., folded left to right.
func (z Complex) Sub(ws ...Complex) Complex { return Fold(csub, z, ws...) }

// Mul returns z * ws[0] * ws[1] * ..., folded left to right.
func (z Complex) Mul(ws ...Complex) Complex { return Fold(cmul, z, ws...) }

// Div returns z / ws[0] / ws[1] / ..., folded left to right.
func (z Complex) Div(ws ...Complex) Complex { return Fold(cquo, z, ws...) }

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: z.re.Neg(), im: z.im.Neg()}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: z.im.Neg()}
}

// Square returns z².
func (z Complex) Square() Complex { return cmul(z, z) }

// NormSq returns |z|² = re² + im².
func (z Complex) NormSq() Rational {
	return add(z.re.Square(), z.im.Square())
}

// Reciprocal returns 1/z. It panics with ErrDivisionByZero if z is zero.
func (z Complex) Reciprocal() Complex {
	n := z.NormSq()
	return Complex{re: quo(z.re, n), im: quo(z.im.Neg(), n)}
}

// IsZero reports whether z == 0.
func (z Complex) IsZero() bool { return z.re.IsZero() && z.im.IsZero() }

// Equal reports whether both parts are equal.
func (z Complex) Equal(w Complex) bool {
	return z.re.Equal(w.re) && z.im.Equal(w.im)
}

// Complex128 returns the nearest complex128.
func (z Complex) Complex128() complex128 {
	return complex(z.re.Float64(), z.im.Float64())
}

// String returns "re,im", the form accepted by ParseComplex.
func (z Complex) String() string {
	return z.re.String() + "," + z.im.String()
}

func cadd(z, w Complex) Complex {
	return Complex{re: add(z.re, w.re), im: add(z.im, w.im)}
}

func csub(z, w Complex) Complex {
	return Complex{re: sub(z.re, w.re), im: sub(z.im, w.im)}
}

// (a+bi)(c+di) = (ac − bd) + (bc + ad)i
func cmul(z, w Complex) Complex {
	return Complex{
		re: sub(mul(z.re, w.re), mul(z.im, w.im)),
		im: add(mul(z.im, w.re), mul(z.re, w.im)),
	}
}

// (a+bi)/(c+di) = ((ac+bd) + (bc−ad)i) / (c²+d²)
func cquo(z, w Complex) Complex {
	n := w.NormSq()
	return Complex{
		re: quo(add(mul(z.re, w.re), mul(z.im, w.im)), n),
		im: quo(sub(mul(z.im, w.re), mul(z.re, w.im)), n),
	}
}
