package rotation

import (
	"RotationDivisors/mp"
	"errors"
	"fmt"
)

// MaxSteps bounds the multiply-with-carry loop. Every multiplier and digit in
// range closes within 58 steps.
const MaxSteps = 200

// ErrNoClosure is returned when the digit recurrence fails to come back to
// its seed within MaxSteps.
var ErrNoClosure = errors.New("rotation: digit cycle did not close")

/*
Pattern is the repeating digit block of the numbers n with last digit Seed
for which rotating the last digit to the front gives Multiplier * n.

The block is built from the bottom. Since the rotation of n is
Multiplier * n, the digit in position i+1 of n is the digit in position i of
Multiplier * n, which is Multiplier times digit i plus the carry coming up
from below. When that product plus carry is exactly Seed the rotation has
wrapped around and the block is complete. 142857 is the one everybody knows:

	5 * 142857 = 714285

Only the lowest Tail.Width() digits are kept.
*/
type Pattern struct {
	Multiplier int
	Seed       int
	Period     int
	Leading    uint8
	Tail       mp.Tail
}

// Generate traces the block for multiplier m and least significant digit d,
// recording at most width digits.
func Generate(m, d, width int) (Pattern, error) {
	if m < 1 || m > 9 {
		return Pattern{}, fmt.Errorf("rotation: multiplier %d out of range", m)
	}
	if d < 1 || d > 9 {
		return Pattern{}, fmt.Errorf("rotation: digit %d out of range", d)
	}

	p := Pattern{
		Multiplier: m,
		Seed:       d,
		Tail:       mp.NewTail(width),
	}
	p.Tail.Push(uint8(d))

	current, carry := d, 0
	for step := 1; step <= MaxSteps; step++ {
		candidate := m*current + carry
		if candidate == d {
			// no carry left, the next digit would be the seed again
			p.Period = step
			p.Leading = uint8(current)
			return p, nil
		}
		current, carry = candidate%10, candidate/10
		p.Tail.Push(uint8(current))
	}
	return Pattern{}, fmt.Errorf("%w: multiplier %d, digit %d after %d steps", ErrNoClosure, m, d, MaxSteps)
}

// Valid is false when the block starts with a zero. Such a block describes a
// number with fewer digits than the period, for which the rotation picks up
// the zero instead of the seed and no longer equals Multiplier * n.
func (p Pattern) Valid() bool {
	return p.Period > 0 && p.Leading != 0
}

// Low is the value of the recorded low digits.
func (p Pattern) Low() uint64 {
	return p.Tail.Uint64()
}
