package chem

import "regexp"

// casPattern matches the digits-digits-digit shape of a CAS registry
// number, e.g. "7732-18-5". The middle segment is always two digits on
// real numbers, but recorded data is messy, so the check stays loose.
var casPattern = regexp.MustCompile(`^\d+-\d+-\d$`)

// ValidCAS reports whether s looks like a CAS registry number.
func ValidCAS(s string) bool {
	return casPattern.MatchString(s)
}

// CASChecksumOK verifies the CAS mod-10 check digit. The last digit must
// equal the weighted sum of the preceding digits (rightmost weight 1,
// increasing leftward) modulo 10. Returns false for anything that does not
// match the CAS pattern.
//
// Advisory only: recorded catalogs contain transcription errors, so the
// importer warns on a failed checksum instead of rejecting the record.
func CASChecksumOK(s string) bool {
	if !ValidCAS(s) {
		return false
	}

	var digits []int
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	check := digits[len(digits)-1]
	body := digits[:len(digits)-1]

	sum := 0
	for i := range body {
		weight := len(body) - i
		sum += weight * body[i]
	}
	return sum%10 == check
}
