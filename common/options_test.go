package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBound(t *testing.T) {
	tests := []struct {
		bound  string
		digits int
	}{
		{"10^100", 100},
		{"1e100", 100},
		{"1E7", 7},
		{"1_000", 3},
		{"100", 2},
		{" 10^2 ", 2},
		{"10^1_000", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.bound, func(t *testing.T) {
			digits, err := ParseBound(tt.bound)
			require.NoError(t, err)
			assert.Equal(t, tt.digits, digits)
		})
	}
}

func TestParseBound_Rejects(t *testing.T) {
	for _, bound := range []string{"", "10", "1e1", "10^0", "200", "5e10", "10^", "1e_", "10^99999999999", "1M"} {
		t.Run(bound, func(t *testing.T) {
			_, err := ParseBound(bound)
			assert.Error(t, err)
		})
	}
}

func TestDecodeBound(t *testing.T) {
	bound := "10^100"
	verbose := false
	assert.Equal(t, 100, DecodeBound(&bound, &verbose))

	width := 9
	assert.Equal(t, 9, DecodeWidth(&width, &verbose))
}
