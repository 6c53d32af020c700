package mp

import (
	"errors"
	"math/bits"
)

// MaxWidth is the largest number of decimal digits a Tail can hold. Every
// value below 10^18 fits comfortably in a uint64 and sums of two such values
// still do.
const MaxWidth = 18

// ErrOverflow is the panic value used when a conversion would not fit in
// 64 bits. It can only happen if the width limits are bypassed.
var ErrOverflow = errors.New("mp: value overflows uint64")

// Tail holds the low digits of a decimal value, least significant first.
// These structures are entirely static and thus are subject to copy
// semantics. Importantly, they can be built on the stack of a single caller.
type Tail struct {
	content [MaxWidth]uint8
	width   int
	n       int
}

// NewTail returns an empty tail that records at most width digits.
func NewTail(width int) Tail {
	if width < 1 || width > MaxWidth {
		panic("mp: tail width out of range")
	}
	return Tail{width: width}
}

// Width is the number of digits this tail can record.
func (a Tail) Width() int {
	return a.width
}

// Len is the number of digits recorded so far.
func (a Tail) Len() int {
	return a.n
}

// Push records d at the next position. Digits past the width are dropped
// since they cannot affect the value modulo 10^width.
func (a *Tail) Push(d uint8) {
	if d > 9 {
		panic("mp: digit > 9")
	}
	if a.n < a.width {
		a.content[a.n] = d
		a.n++
	}
}

// Digit returns the digit at position i, counting from the ones place.
func (a Tail) Digit(i int) uint8 {
	if i < 0 || i >= a.n {
		panic("mp: digit index out of range")
	}
	return a.content[i]
}

// Digits returns a copy of the recorded digits, least significant first.
func (a Tail) Digits() []uint8 {
	r := make([]uint8, a.n)
	copy(r, a.content[:a.n])
	return r
}

// Uint64 converts the recorded digits to an integer. The multiply and add at
// each step are checked and an overflow panics with ErrOverflow rather than
// wrapping.
func (a Tail) Uint64() uint64 {
	v := uint64(0)
	for i := a.n - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(v, 10)
		if hi != 0 {
			panic(ErrOverflow)
		}
		var carry uint64
		v, carry = bits.Add64(lo, uint64(a.content[i]), 0)
		if carry != 0 {
			panic(ErrOverflow)
		}
	}
	return v
}

// Pow10 returns 10^n. Anything past 10^19 does not fit and panics.
func Pow10(n int) uint64 {
	if n < 0 || n > 19 {
		panic(ErrOverflow)
	}
	r := uint64(1)
	for i := 0; i < n; i++ {
		r *= 10
	}
	return r
}

// MulAddMod returns (a*b + c) mod m. The product is formed in 128 bits so
// that nothing wraps for any m <= 10^18.
func MulAddMod(a, b, c, m uint64) uint64 {
	if m == 0 || m > Pow10(MaxWidth) {
		panic("mp: modulus out of range")
	}
	// a < m keeps hi < m, which Div64 requires
	hi, lo := bits.Mul64(a%m, b)
	_, rem := bits.Div64(hi, lo, m)
	return AddMod(rem, c, m)
}

// AddMod returns (a + b) mod m for m <= 10^18.
func AddMod(a, b, m uint64) uint64 {
	return (a%m + b%m) % m
}

// PowMod returns base^n mod m by repeated squaring.
func PowMod(base, n, m uint64) uint64 {
	z := uint64(1) % m
	base %= m
	for n > 0 {
		if n%2 == 1 {
			z = MulAddMod(z, base, 0, m)
		}
		n = n / 2
		base = MulAddMod(base, base, 0, m)
	}
	return z
}
