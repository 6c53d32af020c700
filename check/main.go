package main

import (
	"RotationDivisors/common"
	"RotationDivisors/rotation"
	"RotationDivisors/verify"
	"flag"
	"fmt"
	"log"
	"time"
)

/*
Cross-checks the pattern sum against two independent computations.

The exact check builds every qualifying number in full with decimal
arithmetic from n = d * (10^L - 1) / (10m - 1), confirms that each really
divides its rotation and adds them up. For bounds up to 10^9 the brute force
check also tries every integer in the range. All results must agree in the
requested trailing digits.
*/
func main() {
	verbose := flag.Bool("verbose", false, "verbose output")
	limitString := flag.String("limit", "10^100", "Exclusive upper bound, a power of ten such as 10^100, 1e100 or 1000")
	width := flag.Int("width", 5, "Number of trailing digits to compare")
	flag.Parse()

	config := rotation.Config{
		Digits: common.DecodeBound(limitString, verbose),
		Width:  common.DecodeWidth(width, verbose),
	}

	t0 := time.Now()
	sum, err := rotation.Sum(config)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("patterns: %d (%v)", sum, time.Since(t0))
	}

	t0 = time.Now()
	exact, err := verify.Exact(config.Digits)
	if err != nil {
		log.Fatal(err)
	}
	reduced := verify.Reduce(exact.Sum, config.Width)
	if *verbose {
		log.Printf("exact: %d values, sum %s (%v)", exact.Count, exact.Sum, time.Since(t0))
	}
	if reduced != sum {
		log.Fatalf("exact sum ends in %d but patterns give %d", reduced, sum)
	}

	if config.Digits <= verify.MaxBruteDigits {
		t0 = time.Now()
		brute, count, err := verify.BruteForce(config.Digits, config.Width)
		if err != nil {
			log.Fatal(err)
		}
		if *verbose {
			log.Printf("brute force: %d values, %d (%v)", count, brute, time.Since(t0))
		}
		if brute != sum {
			log.Fatalf("brute force gives %d but patterns give %d", brute, sum)
		}
		if count != exact.Count {
			log.Fatalf("brute force found %d values but exact found %d", count, exact.Count)
		}
	}

	fmt.Printf("ok: %d values, sum mod 10^%d = %d\n", exact.Count, config.Width, sum)
}
