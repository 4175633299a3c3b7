package domain

// MinutesPerDay bounds ScheduleRange minutes: both ends lie in [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// Weekday is a day index, 0 = Sunday through 6 = Saturday.
type Weekday int

var weekdayLabels = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Valid reports whether d is in 0..6.
func (d Weekday) Valid() bool {
	return d >= 0 && int(d) < len(weekdayLabels)
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "?"
	}
	return weekdayLabels[d]
}

// ScheduleRange is a half-open [StartMinute, EndMinute) window on one day.
type ScheduleRange struct {
	Day         Weekday
	StartMinute int
	EndMinute   int
}
