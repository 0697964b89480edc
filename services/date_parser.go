package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dayMonthLayout renders the dd-MMM part of the output; the year is
// appended separately so it never carries a sign.
const dayMonthLayout = "02-Jan"

var (
	dateTokenPattern = regexp.MustCompile(`^(\d{2})-([A-Za-z]{3}|\d{2})-(\d{4})$`)

	monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// CalendarDate is a year, month and day with no time-of-day or zone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate normalizes the given fields the way time.Date does,
// e.g. day 32 of January becomes the 1st of February.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns a new date n days later (or earlier when n is negative)
func (d CalendarDate) AddDays(n int) CalendarDate {
	return NewCalendarDate(d.Year, d.Month, d.Day+n)
}

// String formats the date as dd-MMM-yyyy, e.g. 20-Nov-2000. Years before
// 1 AD are written as the era year (year 0 is 1 BC, -1 is 2 BC), so the
// year field is always unsigned and at least four digits.
func (d CalendarDate) String() string {
	t := d.Time()
	return t.Format(dayMonthLayout) + "-" + fmt.Sprintf("%04d", eraYear(t.Year()))
}

func eraYear(year int) int {
	if year <= 0 {
		return 1 - year
	}
	return year
}

// monthToken is the middle field of a date token, either a month name
// or a month number.
type monthToken struct {
	name    string
	number  int
	numeric bool
}

func parseMonthToken(s string) monthToken {
	if n, err := strconv.Atoi(s); err == nil {
		return monthToken{number: n, numeric: true}
	}
	return monthToken{name: s}
}

// index resolves the token to a zero-based month index; -1 if the name is unknown
func (m monthToken) index() int {
	if m.numeric {
		return m.number - 1
	}
	for i, name := range monthNames {
		if strings.EqualFold(name, m.name) {
			return i
		}
	}
	return -1
}

// ParseDate parses a date token in either dd-MMM-yyyy (20-Nov-2000) or
// dd-mm-yyyy (20-11-2000) form. The month name is case-insensitive.
func ParseDate(token string) (CalendarDate, error) {
	match := dateTokenPattern.FindStringSubmatch(token)
	if match == nil {
		return CalendarDate{}, ErrInvalidDateFormat
	}

	// The pattern guarantees all-digit day and year fields
	day, _ := strconv.Atoi(match[1])
	monthIndex := parseMonthToken(match[2]).index()
	year, _ := strconv.Atoi(match[3])

	if !validCalendarFields(year, monthIndex, day) {
		return CalendarDate{}, ErrInvalidCalendarValue
	}

	month := time.Month(monthIndex + 1)
	if month == time.February && day == 29 && !IsLeapYear(year) {
		return CalendarDate{}, ErrNotLeapYear
	}

	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

func validCalendarFields(year, monthIndex, day int) bool {
	if monthIndex < 0 || monthIndex > 11 {
		return false
	}
	if day < 1 || day > monthDayCap(time.Month(monthIndex+1)) {
		return false
	}
	return year != 0
}

// monthDayCap is the largest day accepted for a month. Only February and
// November are bounded below 31; every other month accepts up to 31.
func monthDayCap(m time.Month) int {
	switch m {
	case time.February:
		return 29
	case time.November:
		return 30
	default:
		return 31
	}
}

// IsLeapYear applies the proleptic Gregorian rule
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
