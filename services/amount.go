package services

import "strconv"

// MaxAmount is the largest count of days or weeks a request may ask for
const MaxAmount = 99999

// ParseAmount validates a count token. Only plain ASCII digits are
// accepted (no sign, no whitespace); leading zeros are fine.
// ok is false for anything else or for values above MaxAmount.
func ParseAmount(token string) (amount int, ok bool) {
	if token == "" {
		return 0, false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}

	// Overflow on very long digit strings is just another out-of-range value
	n, err := strconv.Atoi(token)
	if err != nil || n > MaxAmount {
		return 0, false
	}
	return n, true
}
