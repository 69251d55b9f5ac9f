package exact

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// maxFracDigits is the longest decimal fraction whose denominator fits int64.
const maxFracDigits = 18

// ParseRational parses "n", "n/d" or a decimal such as "-0.75".
// Decimals are converted exactly: "0.75" is 3/4.
func ParseRational(s string) (Rational, error) {
	q, err := parseRational(strings.TrimSpace(s))
	if err != nil {
		return Zero, fmt.Errorf("exact: parse %q: %w", s, err)
	}
	return q, nil
}

func parseRational(s string) (Rational, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := parseInt(strings.TrimSpace(num))
		if err != nil {
			return Zero, err
		}
		d, err := parseInt(strings.TrimSpace(den))
		if err != nil {
			return Zero, err
		}
		if d == 0 {
			return Zero, ErrZeroDenominator
		}
		return New(n, d), nil
	}

	if whole, frac, ok := strings.Cut(s, "."); ok {
		return parseDecimal(whole, frac)
	}

	n, err := parseInt(s)
	if err != nil {
		return Zero, err
	}
	return Int(n), nil
}

func parseDecimal(whole, frac string) (Rational, error) {
	neg := false
	switch {
	case strings.HasPrefix(whole, "-"):
		neg, whole = true, whole[1:]
	case strings.HasPrefix(whole, "+"):
		whole = whole[1:]
	}
	if whole == "" && frac == "" {
		return Zero, ErrSyntax
	}
	if len(frac) > maxFracDigits {
		return Zero, ErrRange
	}
	for _, r := range frac {
		if r < '0' || r > '9' {
			return Zero, ErrSyntax
		}
	}
	if strings.ContainsAny(whole, "+-") {
		return Zero, ErrSyntax
	}

	var w int64
	if whole != "" {
		var err error
		if w, err = parseInt(whole); err != nil {
			return Zero, err
		}
	}
	var f int64
	if frac != "" {
		var err error
		if f, err = parseInt(frac); err != nil {
			return Zero, err
		}
	}

	den := int64(1)
	for range len(frac) {
		den *= 10
	}
	if !mulFits(w, den) || addOverflows(w*den, f) {
		return Zero, ErrRange
	}
	num := w*den + f
	if neg {
		num = -num
	}
	return New(num, den), nil
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrRange
		}
		return 0, ErrSyntax
	}
	return n, nil
}

// ParseComplex parses "re,im" or "re" where each part is accepted by
// ParseRational. Surrounding parentheses are ignored.
func ParseComplex(s string) (Complex, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")

	re, im, hasIm := strings.Cut(t, ",")
	r, err := parseRational(strings.TrimSpace(re))
	if err != nil {
		return Complex{}, fmt.Errorf("exact: parse %q: %w", s, err)
	}
	if !hasIm {
		return Real(r), nil
	}
	i, err := parseRational(strings.TrimSpace(im))
	if err != nil {
		return Complex{}, fmt.Errorf("exact: parse %q: %w", s, err)
	}
	return C(r, i), nil
}

// MarshalText implements encoding.TextMarshaler.
func (q Rational) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Rational) UnmarshalText(text []byte) error {
	v, err := ParseRational(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (z Complex) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Complex) UnmarshalText(text []byte) error {
	v, err := ParseComplex(string(text))
	if err != nil {
		return err
	}
	*z = v
	return nil
}
