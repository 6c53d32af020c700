package main

import (
	"RotationDivisors/common"
	"RotationDivisors/rotation"
	"encoding/json"
	"flag"
	"golang.org/x/text/message"
	"log"
	"os"
)

/*
Lists the digit block behind every multiplier and last digit, how long it is,
whether it survives the leading zero check and what it adds to the sum. Handy
for seeing where the answer comes from and for spotting the 36 pairs that
fall out.
*/
func main() {
	verbose := flag.Bool("verbose", false, "verbose output")
	limitString := flag.String("limit", "10^100", "Exclusive upper bound, a power of ten such as 10^100, 1e100 or 1000")
	width := flag.Int("width", 5, "Number of trailing digits to keep")
	export := flag.String("json", "", "also write the table to this file as JSON")
	flag.Parse()

	config := rotation.Config{
		Digits: common.DecodeBound(limitString, verbose),
		Width:  common.DecodeWidth(width, verbose),
	}

	reports, err := rotation.Patterns(config)
	if err != nil {
		log.Fatal(err)
	}

	p := message.NewPrinter(message.MatchLanguage("en"))
	_, _ = p.Printf("%4s %5s %6s %7s %7s %24s %6s %24s\n", "mult", "digit", "period", "valid", "leading", "low", "copies", "contribution")
	valid := 0
	for _, r := range reports {
		if r.Valid {
			valid++
		}
		_, _ = p.Printf("%4d %5d %6d %7t %7d %24d %6d %24d\n",
			r.Multiplier, r.Digit, r.Period, r.Valid, r.Leading, r.Low, r.Repetitions, r.Contribution)
	}
	repdigits := rotation.Repdigits(config.Digits, config.Width)
	_, _ = p.Printf("%d of %d patterns valid, repeated digits add %d\n", valid, len(reports), repdigits)

	if *export != "" {
		f, err := os.OpenFile(*export, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			log.Fatal(err)
		}
		defer func(f *os.File) {
			_ = f.Close()
		}(f)
		output := struct {
			Digits    int
			Width     int
			Repdigits uint64
			Patterns  []rotation.Report
		}{
			Digits:    config.Digits,
			Width:     config.Width,
			Repdigits: repdigits,
			Patterns:  reports,
		}
		txt, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		_, err = f.Write(txt)
		if err != nil {
			log.Fatal(err)
		}
		if *verbose {
			log.Printf("wrote %s", *export)
		}
	}
}
