package exact

import "errors"

// Sentinel errors for the exact package.
var (
	// ErrZeroDenominator is the panic value of New when den is zero.
	ErrZeroDenominator = errors.New("exact: zero denominator")

	// ErrDivisionByZero is the panic value of Reciprocal and Div on a zero divisor.
	ErrDivisionByZero = errors.New("exact: division by zero")

	// ErrSyntax is returned when a string is not a valid number.
	ErrSyntax = errors.New("exact: invalid syntax")

	// ErrRange is returned when a parsed number does not fit in int64.
	ErrRange = errors.New("exact: value out of range")
)
