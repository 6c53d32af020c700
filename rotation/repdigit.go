package rotation

import (
	"RotationDivisors/mp"
)

// Repdigits returns the sum, modulo 10^width, of all numbers with 2 up to
// digits copies of the same non-zero digit. These are the multiplier 1
// solutions. Single digits are outside the range and are not counted.
func Repdigits(digits, width int) uint64 {
	modulus := mp.Pow10(width)

	// r runs through the repunits 11, 111, ... mod 10^width
	repunits, r := uint64(0), uint64(1)%modulus
	for n := 2; n <= digits; n++ {
		r = mp.MulAddMod(r, 10, 1, modulus)
		repunits = mp.AddMod(repunits, r, modulus)
	}

	// d * repunit summed over d = 1..9
	return mp.MulAddMod(repunits, 45, 0, modulus)
}
