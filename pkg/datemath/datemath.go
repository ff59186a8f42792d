// Package datemath provides calendar arithmetic against an explicit base time.
// All functions are pure: the caller supplies the reference instant, nothing
// here reads the wall clock.
package datemath

import "time"

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays returns the date offset days after base, normalized to midnight.
func AddDays(base time.Time, offset int) time.Time {
	return DateOf(base.AddDate(0, 0, offset))
}

// DaysUntilNext returns the number of days from base until the next
// occurrence of target strictly after base's date. If base already falls on
// target, the result is 7 (next week's occurrence), never 0.
func DaysUntilNext(target time.Weekday, base time.Time) int {
	days := int(target - base.Weekday())
	if days <= 0 {
		days += 7
	}
	return days
}

// NextWeekday returns the date of the next occurrence of target strictly
// after base's date.
func NextWeekday(target time.Weekday, base time.Time) time.Time {
	return AddDays(base, DaysUntilNext(target, base))
}

// MakeDate builds a date from year/month/day components in base's location.
// Out-of-range components carry over per ordinary calendar normalization
// (e.g. Feb 30 becomes Mar 1 or Mar 2).
func MakeDate(year, month, day int, base time.Time) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, base.Location())
}
