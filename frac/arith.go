package frac

import "fmt"

// Neg returns -f.
func (f Frac) Neg() Frac {
	return Frac{num: -f.num, den: f.d()}
}

// Abs returns the absolute value of f.
func (f Frac) Abs() Frac {
	if f.num < 0 {
		return f.Neg()
	}
	return f
}

// Add returns f + x in lowest terms.
//
// Factoring the denominators' gcd out first keeps intermediate products
// small when the denominators share factors.
func (f Frac) Add(x Frac) Frac {
	fd, xd := f.d(), x.d()
	g := int64(gcd64(uint64(fd), uint64(xd)))
	num := f.num*(xd/g) + x.num*(fd/g)
	den := fd / g * xd
	return reduced(num, den)
}

// Sub returns f - x in lowest terms.
func (f Frac) Sub(x Frac) Frac {
	return f.Add(x.Neg())
}

// Mul returns f * x in lowest terms.
//
// Numerators are reduced against the opposite denominators before
// multiplying, so the result needs no final gcd pass.
func (f Frac) Mul(x Frac) Frac {
	fd, xd := f.d(), x.d()
	g1 := int64(gcd64(abs64(f.num), uint64(xd)))
	g2 := int64(gcd64(abs64(x.num), uint64(fd)))
	return Frac{
		num: (f.num / g1) * (x.num / g2),
		den: (fd / g2) * (xd / g1),
	}
}

// Div returns f / x in lowest terms.
//
// Returns ErrDivideByZero if x is 0.
func (f Frac) Div(x Frac) (Frac, error) {
	inv, err := x.Inv()
	if err != nil {
		return Frac{}, err
	}
	return f.Mul(inv), nil
}

// Inv returns the reciprocal of f.
//
// Returns ErrDivideByZero if f is 0.
func (f Frac) Inv() (Frac, error) {
	if f.num == 0 {
		return Frac{}, fmt.Errorf("%w: zero has no reciprocal", ErrDivideByZero)
	}
	if f.num < 0 {
		return Frac{num: -f.d(), den: -f.num}, nil
	}
	return Frac{num: f.d(), den: f.num}, nil
}
