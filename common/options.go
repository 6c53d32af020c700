package common

import (
	"RotationDivisors/mp"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
)

var boundDecoder = regexp.MustCompile(`^(?:10\^([0-9_]+)|1[eE]([0-9_]+)|1((?:_?0)+))$`)

// ParseBound turns an exclusive upper bound such as "10^100", "1e100" or
// "1000" into the number of digits the largest counted value can have. The
// bound has to be a power of ten of at least 100.
func ParseBound(bound string) (int, error) {
	bound = strings.TrimSpace(bound)
	pieces := boundDecoder.FindStringSubmatch(bound)
	if pieces == nil {
		return 0, fmt.Errorf(`unrecognized bound "%s", expected a power of ten like 10^100, 1e100 or 1000`, bound)
	}

	digits := strings.Count(pieces[3], "0")
	if exponent := pieces[1] + pieces[2]; exponent != "" {
		dx, err := strconv.ParseInt(strings.ReplaceAll(exponent, "_", ""), 10, 32)
		if err != nil {
			return 0, fmt.Errorf(`bad exponent in bound "%s": %w`, bound, err)
		}
		digits = int(dx)
	}

	if digits < 2 {
		return 0, fmt.Errorf(`bound "%s" is too small, the range starts above 10`, bound)
	}
	return digits, nil
}

// DecodeBound is ParseBound for flag values. Errors are fatal.
func DecodeBound(boundString *string, verbose *bool) int {
	digits, err := ParseBound(*boundString)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("Bound: 10^%d (values with up to %d digits)", digits, digits)
	}
	return digits
}

// DecodeWidth checks the number of trailing digits requested.
func DecodeWidth(width *int, verbose *bool) int {
	if *width < 1 || *width > mp.MaxWidth {
		log.Fatalf("Width %d must be between 1 and %d", *width, mp.MaxWidth)
	}
	if *verbose {
		log.Printf("Width: %d (sum mod 10^%d)", *width, *width)
	}
	return *width
}
