package verify

import (
	"fmt"
	"github.com/shopspring/decimal"
)

var (
	zero = decimal.NewFromInt(0)
	ten  = decimal.NewFromInt(10)
)

// Result is the exact outcome of a full check.
type Result struct {
	Sum   decimal.Decimal
	Count int
}

/*
Exact finds every n with 10 < n < 10^digits that divides its rotation and
sums them without any truncation.

It does not reuse the digit generator. If n has L digits, last digit d and
its rotation is m*n then

	d * 10^(L-1) + (n - d)/10 = m*n

which gives n = d * (10^L - 1) / (10m - 1). Every L, m and d is tried, the
division has to come out even and n has to really have L digits. Each hit is
then rotated as a string and checked again.
*/
func Exact(digits int) (Result, error) {
	if digits < 2 {
		return Result{}, fmt.Errorf("verify: digit bound %d < 2", digits)
	}

	r := Result{Sum: zero}
	for length := 2; length <= digits; length++ {
		nines := decimal.New(1, int32(length)).Sub(decimal.NewFromInt(1))
		low := decimal.New(1, int32(length-1))
		for m := int64(1); m <= 9; m++ {
			divisor := decimal.NewFromInt(10*m - 1)
			for d := int64(1); d <= 9; d++ {
				n, rem := nines.Mul(decimal.NewFromInt(d)).QuoRem(divisor, 0)
				if !rem.IsZero() || n.LessThan(low) {
					continue
				}
				rot, err := RotateDecimal(n)
				if err != nil {
					return Result{}, err
				}
				if !rot.Equal(n.Mul(decimal.NewFromInt(m))) || !rot.Mod(n).IsZero() {
					return Result{}, fmt.Errorf("verify: %s does not rotate to %d times itself", n, m)
				}
				r.Sum = r.Sum.Add(n)
				r.Count++
			}
		}
	}
	return r, nil
}

// RotateDecimal moves the last digit of a non-negative integer to the front.
func RotateDecimal(n decimal.Decimal) (decimal.Decimal, error) {
	if !n.IsInteger() || n.LessThan(zero) {
		return decimal.Decimal{}, fmt.Errorf("verify: cannot rotate %s", n)
	}
	s := n.String()
	return decimal.NewFromString(s[len(s)-1:] + s[:len(s)-1])
}

// Reduce returns the low width digits of a non-negative integer.
func Reduce(sum decimal.Decimal, width int) uint64 {
	if width < 1 || width > 18 {
		panic("verify: width out of range")
	}
	_, rem := sum.QuoRem(decimal.New(1, int32(width)), 0)
	return uint64(rem.IntPart())
}
