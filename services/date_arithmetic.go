package services

// Unit is the granularity of date arithmetic
type Unit string

const (
	UnitDays  Unit = "days"
	UnitWeeks Unit = "weeks"
)

// ParseUnit maps a type parameter to a Unit
func ParseUnit(s string) (Unit, bool) {
	switch Unit(s) {
	case UnitDays, UnitWeeks:
		return Unit(s), true
	default:
		return "", false
	}
}

// Direction says whether the amount is added or subtracted
type Direction int

const (
	DirectionAdd Direction = iota
	DirectionSubtract
)

func (d Direction) String() string {
	if d == DirectionSubtract {
		return "sub"
	}
	return "add"
}

// Resolve offsets base by amount units in the given direction.
// Weeks are seven days; month and year boundaries follow the calendar.
func Resolve(base CalendarDate, unit Unit, amount int, dir Direction) CalendarDate {
	days := amount
	if unit == UnitWeeks {
		days = 7 * amount
	}
	if dir == DirectionSubtract {
		days = -days
	}
	return base.AddDays(days)
}
