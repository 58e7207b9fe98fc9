package personnummer

// checkLuhn verifies a decimal digit string under the Luhn algorithm: the
// rightmost digit is the check digit, every second digit moving left from it
// is doubled and reduced to its digit sum, and the total must be divisible
// by 10. A non-digit byte fails the same way a wrong total does.
func checkLuhn(digits string) error {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return errChecksumMismatch
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	if sum%10 != 0 {
		return errChecksumMismatch
	}
	return nil
}
