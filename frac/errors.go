package frac

import "errors"

var (
	// ErrDivideByZero signals a zero denominator or division by a zero fraction.
	ErrDivideByZero = errors.New("frac: division by zero")
	// ErrSyntax signals a malformed fraction literal.
	ErrSyntax = errors.New("frac: invalid syntax")
	// ErrRange signals a literal outside the representable range.
	ErrRange = errors.New("frac: value out of range")
)
