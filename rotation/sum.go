package rotation

import (
	"RotationDivisors/mp"
	"errors"
	"fmt"
)

// ErrConfig is wrapped by every configuration error.
var ErrConfig = errors.New("rotation: invalid configuration")

// Config describes the range and precision of a sum. Digits is the largest
// number of digits a counted value may have, so a range that stops below 10^E
// has Digits = E. Width is the number of trailing digits of the sum that are
// computed.
type Config struct {
	Digits int
	Width  int
}

// Default is the sum over 10 < n < 10^100 taken modulo 10^5.
func Default() Config {
	return Config{Digits: 100, Width: 5}
}

func (c Config) Validate() error {
	if c.Digits < 2 {
		return fmt.Errorf("%w: digits %d < 2", ErrConfig, c.Digits)
	}
	if c.Width < 1 || c.Width > mp.MaxWidth {
		return fmt.Errorf("%w: width %d not in [1, %d]", ErrConfig, c.Width, mp.MaxWidth)
	}
	return nil
}

// Modulus is 10^Width.
func (c Config) Modulus() uint64 {
	return mp.Pow10(c.Width)
}

// Pair is the key a pattern is generated from.
type Pair struct {
	Multiplier int
	Digit      int
}

// Pairs lists every multiplier from 2 to 9 with every last digit from 1 to 9.
// Multiplier 1 is left to Repdigits.
func Pairs() []Pair {
	pairs := make([]Pair, 0, 8*9)
	for m := 2; m <= 9; m++ {
		for d := 1; d <= 9; d++ {
			pairs = append(pairs, Pair{Multiplier: m, Digit: d})
		}
	}
	return pairs
}

func (c Config) contribution(pair Pair) (uint64, error) {
	p, err := Generate(pair.Multiplier, pair.Digit, c.Width)
	if err != nil {
		return 0, err
	}
	return p.Contribution(c.Digits), nil
}

// Sum returns the sum, modulo 10^Width, of every n with 10 < n < 10^Digits
// that divides its own right rotation.
func Sum(c Config) (uint64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	modulus := c.Modulus()

	total := Repdigits(c.Digits, c.Width)
	for _, pair := range Pairs() {
		v, err := c.contribution(pair)
		if err != nil {
			return 0, err
		}
		total = mp.AddMod(total, v, modulus)
	}
	return total, nil
}

// Report summarizes one generated pattern.
type Report struct {
	Multiplier   int
	Digit        int
	Period       int
	Valid        bool
	Leading      int
	Low          uint64
	Repetitions  int
	Contribution uint64
}

// Patterns generates the pattern for every pair in Pairs order.
func Patterns(c Config) ([]Report, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	reports := make([]Report, 0, 8*9)
	for _, pair := range Pairs() {
		p, err := Generate(pair.Multiplier, pair.Digit, c.Width)
		if err != nil {
			return nil, err
		}
		r := Report{
			Multiplier:   p.Multiplier,
			Digit:        p.Seed,
			Period:       p.Period,
			Valid:        p.Valid(),
			Leading:      int(p.Leading),
			Low:          p.Low(),
			Contribution: p.Contribution(c.Digits),
		}
		if r.Valid {
			r.Repetitions = p.Repetitions(c.Digits)
		}
		reports = append(reports, r)
	}
	return reports, nil
}
