// Package personnummer validates and normalizes Swedish personal identity
// numbers (personnummer). It accepts the six textual layouts in use
// (YYMMDDNNNN, YYMMDD-NNNN, YYMMDD+NNNN and their 12-digit counterparts with
// an explicit century), verifies the Luhn checksum over the 10-digit payload
// and can resolve a two-digit year to a full four-digit year given a
// reference date. The canonical form of an identifier is the 12-digit string
// YYYYMMDDNNNN.
//
// The separator encodes the century: '-' (or no separator at all) marks a
// person under 100 years old at the reference date, while '+' marks a person
// that has crossed the 100-year mark, shifting the resolved century back by
// one hundred years.
//
// All functions are pure and safe for concurrent use.
package personnummer

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ssnPattern captures the five groups of an accepted layout: a 2 or 4 digit
// year, the month, the day, an optional '-' or '+' separator and the four
// control digits. The pattern is anchored on both ends so the whole input
// must match; given the fixed group widths every input length admits at most
// one parse.
var ssnPattern = regexp.MustCompile(`^(\d{2}|\d{4})(\d{2})(\d{2})([-+]?)(\d{4})$`)

const (
	// canonicalLength is the length of the canonical YYYYMMDDNNNN form.
	canonicalLength = 12
	// validateCentury is the century stand-in used by Validate, which has no
	// reference date. The checksum does not cover the century digits, so the
	// stand-in never influences the outcome; it only shapes the checksum
	// input. This means Validate confirms structure and checksum but never
	// the resolved century, a quirk kept for compatibility.
	validateCentury = "19"
)

// parts holds the five capture groups of a matched identifier. The separator
// is the empty string when absent from the input; absence is meaningful and
// is recorded rather than defaulted here.
type parts struct {
	year      string
	month     string
	day       string
	separator string
	control   string
}

// parse matches input against the accepted layouts and extracts the capture
// groups. Anything that does not match the anchored pattern exactly (wrong
// digit counts, a disallowed separator, surrounding garbage, non-digits)
// yields errNoMatch.
func parse(input string) (parts, error) {
	m := ssnPattern.FindStringSubmatch(input)
	if m == nil {
		return parts{}, errNoMatch
	}
	return parts{
		year:      m[1],
		month:     m[2],
		day:       m[3],
		separator: m[4],
		control:   m[5],
	}, nil
}

// centuryDigits resolves the two century digits for a two-digit year using
// the separator convention. The arithmetic is kept literal: the digits come
// out of referenceYear - (offset + yy) rather than a hardcoded 19 or 20, so
// for example a two-digit year greater than the reference year's last two
// digits resolves to the previous century. A reference year extreme enough
// to leave no two well-formed century digits is rejected as errBadAssembly.
func centuryDigits(refYear int, year, separator string) (string, error) {
	yy, err := strconv.Atoi(year)
	if err != nil {
		return "", errBadAssembly
	}
	offset := 0
	if separator == "+" {
		offset = 100
	}
	century := (refYear - (offset + yy)) / 100
	if century < 0 {
		return "", errBadAssembly
	}
	return fmt.Sprintf("%02d", century), nil
}

// assemble builds the 12-digit candidate from the resolved full year and the
// matched groups and verifies the Luhn checksum over its 10 rightmost digits
// (the century digits are not part of the checksum).
func assemble(fullYear string, p parts) (string, error) {
	candidate := fullYear + p.month + p.day + p.control
	if len(candidate) != canonicalLength {
		return "", errBadAssembly
	}
	if err := checkLuhn(candidate[2:]); err != nil {
		return "", err
	}
	return candidate, nil
}

// IsValid reports whether input matches one of the accepted layouts and
// passes the checksum. It is exactly Validate succeeding.
func IsValid(input string) bool {
	_, err := Validate(input)
	return err == nil
}

// Validate checks input structurally and against the checksum, and echoes it
// back unchanged on success. Two-digit years get the fixed 19 century
// stand-in since no reference date is available. Every failure cause
// collapses to ErrInvalid.
func Validate(input string) (string, error) {
	p, err := parse(input)
	if err != nil {
		return "", ErrInvalid
	}
	fullYear := p.year
	if len(fullYear) != 4 {
		fullYear = validateCentury + p.year
	}
	if _, err := assemble(fullYear, p); err != nil {
		return "", ErrInvalid
	}
	return input, nil
}

// Normalize resolves input to its canonical 12-digit YYYYMMDDNNNN form. The
// reference date ref disambiguates the century of two-digit years; it is
// ignored when the input carries an explicit four-digit year. The caller
// supplies ref so the result is deterministic; this package never reads the
// clock. Every failure cause collapses to ErrInvalid.
func Normalize(ref time.Time, input string) (string, error) {
	p, err := parse(input)
	if err != nil {
		return "", ErrInvalid
	}
	fullYear := p.year
	if len(fullYear) != 4 {
		century, err := centuryDigits(ref.Year(), p.year, p.separator)
		if err != nil {
			return "", ErrInvalid
		}
		fullYear = century + p.year
	}
	canonical, err := assemble(fullYear, p)
	if err != nil {
		return "", ErrInvalid
	}
	return canonical, nil
}
