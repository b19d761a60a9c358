package frac

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a literal to a fraction. Three forms are accepted: an
// integer "7", a quotient "-3/4", and a decimal "1.25". Decimal literals
// convert exactly.
//
// Malformed input returns a wrapped ErrSyntax, a zero denominator returns
// ErrDivideByZero, and literals beyond the int64 range return ErrRange.
func Parse(s string) (Frac, error) {
	if s == "" {
		return Frac{}, fmt.Errorf("%w: empty input", ErrSyntax)
	}
	if numLit, denLit, isQuot := strings.Cut(s, "/"); isQuot {
		num, err := strconv.ParseInt(numLit, 10, 64)
		if err != nil {
			return Frac{}, literalErr(s, err)
		}
		den, err := strconv.ParseInt(denLit, 10, 64)
		if err != nil {
			return Frac{}, literalErr(s, err)
		}
		if den == 0 {
			return Frac{}, fmt.Errorf("%w: %q", ErrDivideByZero, s)
		}
		return reduced(num, den), nil
	}
	return parseDecimal(s)
}

// parseDecimal handles the integer and decimal-point forms. The sign is
// split off first: parsing the integer part on its own would lose the sign
// of literals like "-0.5".
func parseDecimal(s string) (Frac, error) {
	neg := false
	body := s
	switch s[0] {
	case '+':
		body = s[1:]
	case '-':
		neg = true
		body = s[1:]
	}
	intPart, fracPart, isDec := strings.Cut(body, ".")
	if !isDec {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Frac{}, literalErr(s, err)
		}
		return FromInt(n), nil
	}
	if intPart == "" && fracPart == "" {
		return Frac{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if intPart == "" {
		intPart = "0"
	}
	if fracPart == "" {
		fracPart = "0"
	}
	// 10^18 is the largest power of ten an int64 denominator can hold.
	if len(fracPart) > 18 {
		return Frac{}, fmt.Errorf("%w: %q has too many decimal digits", ErrRange, s)
	}
	digits := intPart + fracPart
	num, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Frac{}, literalErr(s, err)
	}
	den := int64(1)
	for i := 0; i < len(fracPart); i++ {
		den *= 10
	}
	if neg {
		num = -num
	}
	return reduced(num, den), nil
}

func literalErr(s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q", ErrRange, s)
	}
	return fmt.Errorf("%w: %q", ErrSyntax, s)
}
