package frac

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareIsExactAtExtremes(t *testing.T) {
	assert := assert.New(t)
	// Cross products of these wrap 64-bit arithmetic; the 128-bit compare
	// must still agree with big.Rat.
	vals := []Frac{
		FromInt(math.MinInt64 + 1),
		mustNew(t, math.MinInt64+1, math.MaxInt64),
		mustNew(t, -1, math.MaxInt64),
		FromInt(0),
		mustNew(t, 1, math.MaxInt64),
		mustNew(t, 1, math.MaxInt64-1),
		mustNew(t, math.MaxInt64-1, math.MaxInt64),
		FromInt(1),
		mustNew(t, math.MaxInt64, math.MaxInt64-2),
		mustNew(t, math.MaxInt64, 2),
		FromInt(math.MaxInt64),
	}
	for _, a := range vals {
		for _, b := range vals {
			want := toRat(a).Cmp(toRat(b))
			assert.Equal(want, Compare(a, b), "Compare(%s, %s)", a, b)
			assert.Equal(want, a.Cmp(b), "Cmp(%s, %s)", a, b)
			assert.Equal(want == 0, a.Equal(b), "Equal(%s, %s)", a, b)
			assert.Equal(want < 0, a.Less(b), "Less(%s, %s)", a, b)
		}
	}
}

func TestCompareSortsKnownSequence(t *testing.T) {
	assert := assert.New(t)
	vals := []Frac{
		mustNew(t, 3, 2),
		FromInt(2),
		mustNew(t, -1, 2),
		mustNew(t, 1, 3),
		FromInt(-1),
		mustNew(t, 4, 3),
		FromInt(0),
		mustNew(t, 2, 3),
		mustNew(t, -3, 2),
		mustNew(t, 1, 2),
		FromInt(1),
	}
	slices.SortFunc(vals, Compare)
	want := []string{"-3/2", "-1", "-1/2", "0", "1/3", "1/2", "2/3", "1", "4/3", "3/2", "2"}
	got := make([]string, len(vals))
	for i, f := range vals {
		got[i] = f.String()
	}
	assert.Equal(want, got)
}

func TestCompareDistinguishesNearEqual(t *testing.T) {
	assert := assert.New(t)
	// 1/3 in two closest int64 approximations: the float path could not
	// tell these apart.
	a := mustNew(t, 3074457345618258602, 9223372036854775805)
	b := mustNew(t, 3074457345618258603, 9223372036854775807)
	want := toRat(a).Cmp(toRat(b))
	assert.Equal(want, Compare(a, b))
	assert.Equal(-want, Compare(b, a))
	assert.NotEqual(0, Compare(a, b))
}
