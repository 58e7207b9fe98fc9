package personnummer

import "fmt"

var (
	// ErrInvalid is the only error this package surfaces. The message is a
	// fixed contract string; callers cannot (and must not need to)
	// distinguish a format mismatch from a checksum failure.
	ErrInvalid = fmt.Errorf("Invalid Swedish SSN")

	// errNoMatch is returned by the pattern matcher when the input does not
	// match any accepted layout.
	errNoMatch = fmt.Errorf("no match")
	// errBadAssembly is returned when the resolved year and matched groups
	// do not come together as 12 well-formed digits.
	errBadAssembly = fmt.Errorf("bad assembly")
	// errChecksumMismatch is returned when the 10-digit payload fails the
	// Luhn checksum or contains a non-digit.
	errChecksumMismatch = fmt.Errorf("checksum mismatch")
)
