package verify

import (
	"fmt"
)

// MaxBruteDigits is the largest bound BruteForce accepts. Past this the scan
// takes minutes and would need care with uint64 overflow in the rotation.
const MaxBruteDigits = 9

// Rotate moves the last decimal digit of n to the front. A trailing zero
// simply disappears, so Rotate(10) is 1.
func Rotate(n uint64) uint64 {
	last := n % 10
	rest := n / 10
	scale := uint64(1)
	for z := rest; z > 0; z = z / 10 {
		scale *= 10
	}
	return last*scale + rest
}

// BruteForce checks every n with 10 < n < 10^digits directly and returns the
// sum of those dividing their own rotation, modulo 10^width, along with how
// many there were.
func BruteForce(digits, width int) (uint64, int, error) {
	if digits < 2 || digits > MaxBruteDigits {
		return 0, 0, fmt.Errorf("verify: brute force bound 10^%d not in [10^2, 10^%d]", digits, MaxBruteDigits)
	}
	if width < 1 || width > 18 {
		return 0, 0, fmt.Errorf("verify: width %d not in [1, 18]", width)
	}

	limit := uint64(1)
	for i := 0; i < digits; i++ {
		limit *= 10
	}
	modulus := uint64(1)
	for i := 0; i < width; i++ {
		modulus *= 10
	}

	sum, count := uint64(0), 0
	for n := uint64(11); n < limit; n++ {
		if Rotate(n)%n == 0 {
			sum = (sum + n%modulus) % modulus
			count++
		}
	}
	return sum, count, nil
}
