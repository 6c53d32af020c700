package main

import (
	"RotationDivisors/common"
	"RotationDivisors/rotation"
	"context"
	"flag"
	"fmt"
	"golang.org/x/text/message"
	"log"
	"os"
	"runtime/pprof"
	"time"
)

/*
Prints the last five digits of the sum of all n with 10 < n < 10^100 that
divide the number you get by moving their last digit to the front.

Apart from the numbers made of one repeated digit, every such n is a block of
digits repeated some number of times. The block depends only on the last
digit and on the ratio between the rotation and n, so there are just 72
blocks to generate. Only the low digits of each block are ever kept, and the
numbers themselves are never built.
*/
func main() {
	verbose := flag.Bool("verbose", false, "verbose output")
	limitString := flag.String("limit", "10^100", "Exclusive upper bound, a power of ten such as 10^100, 1e100 or 1000")
	width := flag.Int("width", 5, "Number of trailing digits of the sum to compute")
	threads := flag.Int("threads", 1, "Number of threads to spread the patterns over")
	cpuProfile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	config := rotation.Config{
		Digits: common.DecodeBound(limitString, verbose),
		Width:  common.DecodeWidth(width, verbose),
	}

	t0 := time.Now()
	var (
		sum uint64
		err error
	)
	if *threads > 1 {
		sum, err = rotation.SumParallel(context.Background(), config, *threads)
	} else {
		sum, err = rotation.Sum(config)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *verbose {
		p := message.NewPrinter(message.MatchLanguage("en"))
		log.Print(p.Sprintf("%d patterns over %d digits in %v", len(rotation.Pairs()), config.Digits, time.Since(t0)))
	}
	fmt.Println(sum)
}
