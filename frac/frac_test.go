package frac

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustNew(t *testing.T, num, den int64) Frac {
	t.Helper()
	f, err := New(num, den)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", num, den, err)
	}
	return f
}

func toRat(f Frac) *big.Rat {
	return big.NewRat(f.Num(), f.Den())
}

func assertReduced(t *testing.T, f Frac) {
	t.Helper()
	if f.Den() < 1 {
		t.Fatalf("%s: denominator not positive", f)
	}
	if f.Num() == 0 {
		if f.Den() != 1 {
			t.Fatalf("zero must read 0/1, got 0/%d", f.Den())
		}
		return
	}
	if g := gcd64(abs64(f.Num()), uint64(f.Den())); g != 1 {
		t.Fatalf("%s: not in lowest terms (gcd %d)", f, g)
	}
}

func TestNewNormalizes(t *testing.T) {
	assert := assert.New(t)
	type tc struct {
		num, den         int64
		wantNum, wantDen int64
	}
	cases := []tc{
		{num: 2, den: 4, wantNum: 1, wantDen: 2},
		{num: -2, den: 4, wantNum: -1, wantDen: 2},
		{num: 2, den: -4, wantNum: -1, wantDen: 2},
		{num: -2, den: -4, wantNum: 1, wantDen: 2},
		{num: 0, den: 5, wantNum: 0, wantDen: 1},
		{num: 0, den: -5, wantNum: 0, wantDen: 1},
		{num: 6, den: 3, wantNum: 2, wantDen: 1},
		{num: 17, den: 17, wantNum: 1, wantDen: 1},
		{num: 355, den: 113, wantNum: 355, wantDen: 113},
	}
	for _, c := range cases {
		f := mustNew(t, c.num, c.den)
		assert.Equal(c.wantNum, f.Num(), "num of %d/%d", c.num, c.den)
		assert.Equal(c.wantDen, f.Den(), "den of %d/%d", c.num, c.den)
		assertReduced(t, f)
	}
}

func TestNewRejectsZeroDenominator(t *testing.T) {
	_, err := New(3, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestZeroValueReadsAsZero(t *testing.T) {
	assert := assert.New(t)
	var zero Frac
	assert.True(zero.IsZero())
	assert.True(zero.IsInt())
	assert.Equal(int64(0), zero.Num())
	assert.Equal(int64(1), zero.Den())
	assert.Equal(0, zero.Sign())
	assert.Equal("0", zero.String())
	assert.True(zero.Equal(FromInt(0)))
	assert.True(zero.Add(FromInt(3)).Equal(FromInt(3)))
}

func TestStringFormats(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("1/2", mustNew(t, 1, 2).String())
	assert.Equal("-1/2", mustNew(t, 1, -2).String())
	assert.Equal("5", mustNew(t, 10, 2).String())
	assert.Equal("-7", FromInt(-7).String())
	assert.Equal("0", FromInt(0).String())
}

func TestParseStringRoundTrip(t *testing.T) {
	assert := assert.New(t)
	vals := []Frac{
		FromInt(0),
		FromInt(-7),
		FromInt(9223372036854775807),
		mustNew(t, 1, 2),
		mustNew(t, -3, 4),
		mustNew(t, 22, 7),
		mustNew(t, -9223372036854775807, 9223372036854775806),
	}
	for _, f := range vals {
		got, err := Parse(f.String())
		if assert.NoError(err, "Parse(%q)", f.String()) {
			assert.Equal(f, got, "round trip of %s", f)
		}
	}
}

func TestParseForms(t *testing.T) {
	assert := assert.New(t)
	type tc struct {
		in   string
		want Frac
	}
	cases := []tc{
		{in: "7", want: FromInt(7)},
		{in: "-7", want: FromInt(-7)},
		{in: "+7", want: FromInt(7)},
		{in: "3/4", want: mustNew(t, 3, 4)},
		{in: "-3/4", want: mustNew(t, -3, 4)},
		{in: "2/4", want: mustNew(t, 1, 2)},
		{in: "2/-4", want: mustNew(t, -1, 2)},
		{in: "1.25", want: mustNew(t, 5, 4)},
		{in: "-0.5", want: mustNew(t, -1, 2)},
		{in: "+0.5", want: mustNew(t, 1, 2)},
		{in: ".5", want: mustNew(t, 1, 2)},
		{in: "5.", want: FromInt(5)},
		{in: "0.000000000000000001", want: mustNew(t, 1, 1000000000000000000)},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if !assert.NoError(err, "Parse(%q)", c.in) {
			continue
		}
		assert.Equal(c.want, got, "Parse(%q)", c.in)
	}
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)
	type tc struct {
		in   string
		want error
	}
	cases := []tc{
		{in: "", want: ErrSyntax},
		{in: "abc", want: ErrSyntax},
		{in: "1/2/3", want: ErrSyntax},
		{in: "1.2.3", want: ErrSyntax},
		{in: "--2", want: ErrSyntax},
		{in: ".", want: ErrSyntax},
		{in: "1.5/2", want: ErrSyntax},
		{in: "1/0", want: ErrDivideByZero},
		{in: "9223372036854775808", want: ErrRange},
		{in: "92233720368547758080/3", want: ErrRange},
		{in: "0.0000000000000000001", want: ErrRange},
	}
	for _, c := range cases {
		_, err := Parse(c.in)
		assert.ErrorIs(err, c.want, "Parse(%q)", c.in)
	}
}

func TestArithmeticMatchesBigRat(t *testing.T) {
	assert := assert.New(t)
	var vals []Frac
	for _, num := range []int64{-9, -7, -2, -1, 0, 1, 2, 3, 5, 8, 12} {
		for _, den := range []int64{1, 2, 3, 4, 7, 9, 10} {
			vals = append(vals, mustNew(t, num, den))
		}
	}
	for _, a := range vals {
		for _, b := range vals {
			ra, rb := toRat(a), toRat(b)

			sum := a.Add(b)
			assertReduced(t, sum)
			assert.Equal(0, toRat(sum).Cmp(new(big.Rat).Add(ra, rb)), "%s + %s", a, b)

			diff := a.Sub(b)
			assertReduced(t, diff)
			assert.Equal(0, toRat(diff).Cmp(new(big.Rat).Sub(ra, rb)), "%s - %s", a, b)

			prod := a.Mul(b)
			assertReduced(t, prod)
			assert.Equal(0, toRat(prod).Cmp(new(big.Rat).Mul(ra, rb)), "%s * %s", a, b)

			quot, err := a.Div(b)
			if b.IsZero() {
				assert.ErrorIs(err, ErrDivideByZero, "%s / %s", a, b)
				continue
			}
			if !assert.NoError(err, "%s / %s", a, b) {
				continue
			}
			assertReduced(t, quot)
			assert.Equal(0, toRat(quot).Cmp(new(big.Rat).Quo(ra, rb)), "%s / %s", a, b)
		}
	}
}

func TestNegAbsSign(t *testing.T) {
	assert := assert.New(t)
	half := mustNew(t, 1, 2)
	assert.Equal(mustNew(t, -1, 2), half.Neg())
	assert.Equal(half, half.Neg().Neg())
	assert.Equal(half, half.Neg().Abs())
	assert.Equal(half, half.Abs())
	assert.Equal(-1, mustNew(t, -3, 7).Sign())
	assert.Equal(1, mustNew(t, 3, 7).Sign())
	assert.Equal(0, FromInt(0).Neg().Sign())
}

func TestInvAndDiv(t *testing.T) {
	assert := assert.New(t)

	inv, err := mustNew(t, 2, 3).Inv()
	assert.NoError(err)
	assert.Equal(mustNew(t, 3, 2), inv)

	inv, err = mustNew(t, -2, 3).Inv()
	assert.NoError(err)
	assert.Equal(mustNew(t, -3, 2), inv)
	assertReduced(t, inv)

	_, err = FromInt(0).Inv()
	assert.ErrorIs(err, ErrDivideByZero)

	var zero Frac
	_, err = mustNew(t, 1, 2).Div(zero)
	assert.ErrorIs(err, ErrDivideByZero)
}

func TestFloat64Approximates(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0.5, mustNew(t, 1, 2).Float64())
	assert.Equal(-2.5, mustNew(t, -5, 2).Float64())
	assert.InDelta(0.3333333, mustNew(t, 1, 3).Float64(), 1e-6)
}
