package services

import "net/http"

// ValidationKind classifies a rejected date request
type ValidationKind string

const (
	KindInvalidValue         ValidationKind = "invalid_value"
	KindMissingParameter     ValidationKind = "missing_parameter"
	KindInvalidDateFormat    ValidationKind = "invalid_date_format"
	KindInvalidCalendarValue ValidationKind = "invalid_calendar_value"
	KindNotLeapYear          ValidationKind = "not_leap_year"
	KindInvalidType          ValidationKind = "invalid_type"
)

// ValidationError is a user-input failure. The Message is returned to the
// caller verbatim.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StatusCode is the HTTP status every validation failure maps to
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

var (
	ErrInvalidValue = &ValidationError{
		Kind:    KindInvalidValue,
		Message: "Invalid value. Value must be a positive integer from 0 to 99999 only.",
	}
	ErrMissingParameter = &ValidationError{
		Kind:    KindMissingParameter,
		Message: "Both type and value parameters are required.",
	}
	ErrInvalidDateFormat = &ValidationError{
		Kind:    KindInvalidDateFormat,
		Message: "Invalid date format. Use dd-MMM-yyyy format like 20-Nov-2000 or 20-11-2000",
	}
	ErrInvalidCalendarValue = &ValidationError{
		Kind:    KindInvalidCalendarValue,
		Message: "Invalid month, day, or year in date format",
	}
	ErrNotLeapYear = &ValidationError{
		Kind:    KindNotLeapYear,
		Message: "The specified year is not a leap year.",
	}
	ErrInvalidType = &ValidationError{
		Kind:    KindInvalidType,
		Message: "Invalid type parameter. Use days or weeks.",
	}
)
