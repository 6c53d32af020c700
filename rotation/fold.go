package rotation

import (
	"RotationDivisors/mp"
)

// Repetitions is the number of whole copies of the block that fit in the
// given number of digits. Each copy count gives one qualifying number.
func (p Pattern) Repetitions(digits int) int {
	if p.Period <= 0 || digits <= 0 {
		return 0
	}
	return digits / p.Period
}

// Contribution returns the sum, modulo 10^width, of every number built by
// repeating the block up to the given number of digits. Invalid patterns
// contribute nothing.
func (p Pattern) Contribution(digits int) uint64 {
	if !p.Valid() {
		return 0
	}
	width := p.Tail.Width()
	modulus := mp.Pow10(width)
	v := p.Low()
	r := uint64(p.Repetitions(digits))

	if p.Period >= width {
		// every repetition has the same low digits
		return mp.MulAddMod(v, r, 0, modulus)
	}

	// short blocks: the low digits grow with each copy until they fill the tail
	shift := mp.PowMod(10, uint64(p.Period), modulus)
	sum, t := uint64(0), uint64(0)
	for k := uint64(0); k < r; k++ {
		t = mp.MulAddMod(t, shift, v, modulus)
		sum = mp.AddMod(sum, t, modulus)
	}
	return sum
}
