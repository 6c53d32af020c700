package verify

import (
	"RotationDivisors/rotation"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate(t *testing.T) {
	assert.Equal(t, uint64(714285), Rotate(142857))
	assert.Equal(t, uint64(7), Rotate(7))
	assert.Equal(t, uint64(1), Rotate(10))
	assert.Equal(t, uint64(11), Rotate(11))
	assert.Equal(t, uint64(31), Rotate(13))
	assert.Equal(t, uint64(410256), Rotate(102564))
}

func TestBruteForce(t *testing.T) {
	tests := []struct {
		digits int
		sum    uint64
		count  int
	}{
		{2, 495, 9},
		{3, 5490, 18},
		{6, 98331, 52},
	}
	for _, tt := range tests {
		sum, count, err := BruteForce(tt.digits, 5)
		require.NoError(t, err)
		assert.Equal(t, tt.sum, sum, "10^%d", tt.digits)
		assert.Equal(t, tt.count, count, "10^%d", tt.digits)
	}

	_, _, err := BruteForce(1, 5)
	assert.Error(t, err)
	_, _, err = BruteForce(MaxBruteDigits+1, 5)
	assert.Error(t, err)
	_, _, err = BruteForce(4, 0)
	assert.Error(t, err)
}

func TestBruteForce_MatchesPatterns(t *testing.T) {
	for digits := 2; digits <= 6; digits++ {
		for _, width := range []int{1, 3, 5, 8} {
			want, _, err := BruteForce(digits, width)
			require.NoError(t, err)
			got, err := rotation.Sum(rotation.Config{Digits: digits, Width: width})
			require.NoError(t, err)
			assert.Equal(t, want, got, "digits=%d width=%d", digits, width)
		}
	}
}

func TestExact(t *testing.T) {
	r, err := Exact(7)
	require.NoError(t, err)
	assert.Equal(t, 61, r.Count)
	assert.True(t, r.Sum.Equal(decimal.NewFromInt(56698326)), r.Sum.String())

	r, err = Exact(20)
	require.NoError(t, err)
	assert.Equal(t, 202, r.Count)
	assert.Equal(t, "559014205466853928674", r.Sum.String())

	_, err = Exact(1)
	assert.Error(t, err)
}

func TestExact_MatchesPatterns(t *testing.T) {
	r, err := Exact(100)
	require.NoError(t, err)
	assert.Equal(t, 1104, r.Count)
	assert.Equal(t, uint64(59206), Reduce(r.Sum, 5))

	for _, width := range []int{1, 5, 9, 12, 18} {
		got, err := rotation.Sum(rotation.Config{Digits: 100, Width: width})
		require.NoError(t, err)
		assert.Equal(t, Reduce(r.Sum, width), got, "width=%d", width)
	}
}

func TestRotateDecimal(t *testing.T) {
	n := decimal.RequireFromString("105263157894736842")
	rot, err := RotateDecimal(n)
	require.NoError(t, err)
	assert.Equal(t, "210526315789473684", rot.String())
	assert.True(t, rot.Equal(n.Mul(decimal.NewFromInt(2))))

	_, err = RotateDecimal(decimal.RequireFromString("1.5"))
	assert.Error(t, err)
	_, err = RotateDecimal(decimal.NewFromInt(-12))
	assert.Error(t, err)
}

func TestReduce(t *testing.T) {
	assert.Equal(t, uint64(59206), Reduce(decimal.RequireFromString("937959206"), 5))
	assert.Equal(t, uint64(6), Reduce(decimal.NewFromInt(6), 5))
	assert.Panics(t, func() { Reduce(zero, 0) })
}
