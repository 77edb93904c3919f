// Package timefmt converts between 12-hour display labels ("9:00 AM") and
// 24-hour clock values, and does the small pieces of time arithmetic the
// scheduling surfaces need. Everything here is pure and timezone-naive:
// timestamps are built in time.Local and never shifted.
package timefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// To24Hour parses a 12-hour label shaped "H:MM AM" or "H:MM PM" with H in
// 1..12. 12 AM maps to hour 0 and 12 PM stays hour 12.
func To24Hour(label string) (hour, minute int, err error) {
	invalid := fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, label)

	timePart, period, ok := strings.Cut(label, " ")
	if !ok || (period != "AM" && period != "PM") {
		return 0, 0, invalid
	}

	hourPart, minutePart, ok := strings.Cut(timePart, ":")
	if !ok || len(minutePart) != 2 {
		return 0, 0, invalid
	}

	hour, err = strconv.Atoi(hourPart)
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, invalid
	}
	minute, err = strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, invalid
	}

	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}
	return hour, minute, nil
}

// To12Hour renders a 24-hour clock value as a display label. Hours 0 and 12
// both display as "12"; the period flips to PM from hour 12 onwards.
func To12Hour(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// CombineDateAndTime builds a local wall-clock timestamp from a YYYY-MM-DD
// date and a 24-hour clock value. No timezone conversion is applied.
func CombineDateAndTime(date string, hour, minute int) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local), nil
}

// AddMinutes returns start plus the given number of minutes, exact.
func AddMinutes(start time.Time, minutes int) time.Time {
	return start.Add(time.Duration(minutes) * time.Minute)
}

// FormatEndTime adds a duration to a 12-hour label and renders the result as
// another label. This is display-only arithmetic: it wraps past midnight
// without carrying the date, so "11:45 PM" + 30 yields "12:15 AM". Callers
// that need a real next-day boundary must use AddMinutes on a full timestamp.
func FormatEndTime(start string, durationMinutes int) (string, error) {
	hour, minute, err := To24Hour(start)
	if err != nil {
		return "", err
	}
	total := (hour*60 + minute + durationMinutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return To12Hour(total/60, total%60), nil
}
