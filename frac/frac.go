// Package frac provides an exact rational number type, kept in lowest terms.
package frac

import (
	"fmt"
	"strconv"
)

// Frac is a rational number in lowest terms. The denominator is always
// positive and shares no factor with the numerator; the sign lives in the
// numerator. The zero value reads as 0.
//
// Frac is immutable: arithmetic operations return new values.
type Frac struct {
	num int64
	den int64 // 0 stands in for 1, making the zero value usable
}

// New creates the fraction num/den in lowest terms.
//
// Returns ErrDivideByZero if den is 0.
func New(num, den int64) (Frac, error) {
	if den == 0 {
		return Frac{}, fmt.Errorf("%w: %d/0", ErrDivideByZero, num)
	}
	return reduced(num, den), nil
}

// FromInt creates the fraction n/1.
func FromInt(n int64) Frac {
	return Frac{num: n, den: 1}
}

// Num returns the numerator. It carries the sign.
func (f Frac) Num() int64 {
	return f.num
}

// Den returns the denominator. It is always positive.
func (f Frac) Den() int64 {
	return f.d()
}

// Sign returns -1, 0, or 1 depending on the sign of f.
func (f Frac) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether f is 0.
func (f Frac) IsZero() bool {
	return f.num == 0
}

// IsInt reports whether f is an integer.
func (f Frac) IsInt() bool {
	return f.d() == 1
}

// Float64 returns the nearest floating-point approximation of f.
func (f Frac) Float64() float64 {
	return float64(f.num) / float64(f.d())
}

// String renders the fraction as "n/d", or as plain "n" for integers.
func (f Frac) String() string {
	if f.IsInt() {
		return strconv.FormatInt(f.num, 10)
	}
	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.d(), 10)
}

// --- Normalization helpers -------------------------------------------------

// d is the effective denominator, mapping the zero value's 0 to 1.
func (f Frac) d() int64 {
	if f.den == 0 {
		return 1
	}
	return f.den
}

// reduced normalizes the sign into the numerator and divides out the gcd.
// Magnitudes beyond int64 wrap, like Go's built-in integer arithmetic.
func reduced(num, den int64) Frac {
	if num == 0 {
		return Frac{num: 0, den: 1}
	}
	neg := (num < 0) != (den < 0)
	n := abs64(num)
	d := abs64(den)
	g := gcd64(n, d)
	out := Frac{num: int64(n / g), den: int64(d / g)}
	if neg {
		out.num = -out.num
	}
	return out
}

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs64 returns |x| as uint64, exact even for math.MinInt64.
func abs64(x int64) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}
