package services

import "time"

// DateParams are the raw query parameters of a date request.
// An empty string means the parameter was not supplied.
type DateParams struct {
	Type  string
	Value string
	Date  string
}

// ComputeDate validates params and applies the requested offset. The
// checks run in a fixed order and the first failure is returned as a
// *ValidationError. When no date is given, the calendar date of now is
// used as the base.
func ComputeDate(dir Direction, params DateParams, now time.Time) (string, error) {
	amount, ok := ParseAmount(params.Value)
	if !ok {
		return "", ErrInvalidValue
	}
	if params.Type == "" || params.Value == "" {
		return "", ErrMissingParameter
	}

	base := DateOf(now)
	if params.Date != "" {
		parsed, err := ParseDate(params.Date)
		if err != nil {
			return "", err
		}
		base = parsed
	}

	unit, ok := ParseUnit(params.Type)
	if !ok {
		return "", ErrInvalidType
	}

	return Resolve(base, unit, amount, dir).String(), nil
}
