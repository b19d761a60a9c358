package frac

import "math/bits"

// Compare returns -1, 0, or 1 according to the numeric order of a and b.
// It is usable directly as a tree comparator.
//
// Cross products are computed in 128 bits, so comparison is exact over the
// full value range and never wraps.
func Compare(a, b Frac) int {
	as, bs := a.Sign(), b.Sign()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	case as == 0:
		return 0
	}
	hi1, lo1 := bits.Mul64(abs64(a.num), uint64(b.d()))
	hi2, lo2 := bits.Mul64(abs64(b.num), uint64(a.d()))
	r := cmp128(hi1, lo1, hi2, lo2)
	if as < 0 {
		return -r
	}
	return r
}

// Cmp compares f and x numerically.
func (f Frac) Cmp(x Frac) int {
	return Compare(f, x)
}

// Equal reports whether f and x denote the same number.
func (f Frac) Equal(x Frac) bool {
	return Compare(f, x) == 0
}

// Less reports whether f is numerically smaller than x.
func (f Frac) Less(x Frac) bool {
	return Compare(f, x) < 0
}

func cmp128(hi1, lo1, hi2, lo2 uint64) int {
	switch {
	case hi1 < hi2:
		return -1
	case hi1 > hi2:
		return 1
	case lo1 < lo2:
		return -1
	case lo1 > lo2:
		return 1
	default:
		return 0
	}
}
