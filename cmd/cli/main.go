// Package main provides a CLI tool for checking Swedish personal identity
// numbers from the command line. It supports two modes:
// 1. Validate mode: checks that each number is well formed and passes the checksum
// 2. Normalize mode: resolves each number to its canonical 12-digit form
package main

import (
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vocdoni/personnummer/internal"
	"github.com/vocdoni/personnummer/personnummer"
	"go.vocdoni.io/dvote/log"
)

func main() {
	// Define command-line flags
	flag.BoolP("normalize", "n", false, "Resolve each number to its canonical 12-digit form")
	flag.StringP("date", "d", "", "Reference date for century resolution (defaults to today)")

	// Parse flags
	flag.Parse()

	// Initialize Viper for environment variable support
	viper.SetEnvPrefix("PERSONNUMMER")
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		log.Fatalf("could not bind flags: %v", err)
	}
	viper.AutomaticEnv()

	// Read configuration
	normalize := viper.GetBool("normalize")
	date := viper.GetString("date")
	// Initialize logger
	log.Init("info", "stdout", nil)

	// Validate required parameters
	numbers := flag.Args()
	if len(numbers) == 0 {
		log.Fatal("at least one personal identity number is required")
	}

	// Resolve the reference date used for century resolution
	referenceDate := time.Now().UTC()
	if date != "" {
		parsed, normalized, err := internal.ParseReferenceDate(date)
		if err != nil {
			log.Fatalf("invalid reference date: %v", err)
		}
		referenceDate = parsed
		log.Infow("using explicit reference date", "date", normalized)
	}

	// Route to appropriate handler based on the selected mode
	var failures int
	if normalize {
		failures = normalizeNumbers(referenceDate, numbers)
	} else {
		failures = validateNumbers(numbers)
	}
	if failures > 0 {
		os.Exit(1)
	}
}

// validateNumbers checks every number and prints a verdict per line. It
// returns the count of invalid numbers.
func validateNumbers(numbers []string) int {
	failures := 0
	for _, number := range numbers {
		if _, err := personnummer.Validate(number); err != nil {
			fmt.Printf("%s: INVALID\n", number)
			failures++
			continue
		}
		fmt.Printf("%s: VALID\n", number)
	}
	return failures
}

// normalizeNumbers resolves every number to its canonical 12-digit form using
// the given reference date and prints one result per line. It returns the
// count of invalid numbers.
func normalizeNumbers(referenceDate time.Time, numbers []string) int {
	failures := 0
	for _, number := range numbers {
		canonical, err := personnummer.Normalize(referenceDate, number)
		if err != nil {
			fmt.Printf("%s: INVALID\n", number)
			failures++
			continue
		}
		fmt.Printf("%s: %s\n", number, canonical)
	}
	return failures
}
