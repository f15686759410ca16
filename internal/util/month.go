package util

import "time"

// cycleHour is the wall-clock hour every cycle date is pinned to, so that
// date comparisons never drift across a day boundary on DST transitions
const cycleHour = 12

// PreviousMonth returns the year and month for the previous month
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth returns the year and month for the following month
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay returns targetDay limited to [1, last day of month]
func ClampDay(year int, month time.Month, targetDay int) int {
	if targetDay < 1 {
		return 1
	}
	if last := DaysInMonth(year, month); targetDay > last {
		return last
	}
	return targetDay
}

// CalculateActualDate returns the actual date for a target day in a given month,
// handling months with fewer days (e.g., day 31 in February returns Feb 28/29).
// The result is pinned to noon in loc.
func CalculateActualDate(year int, month time.Month, targetDay int, loc *time.Location) time.Time {
	return time.Date(year, month, ClampDay(year, month, targetDay), cycleHour, 0, 0, 0, loc)
}

// DateOnly returns t's calendar date pinned to noon in t's location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), cycleHour, 0, 0, 0, t.Location())
}

// AddDays shifts a date-only value by n calendar days, keeping it at noon
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, cycleHour, 0, 0, 0, t.Location())
}
