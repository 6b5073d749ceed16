package bahncopilot

import (
	"strconv"
	"time"
)

// ZeroPad renders a non-negative integer with at least two digits.
// Behaviour for negative input is unspecified.
func ZeroPad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// AddMinutes returns t offset by the given number of minutes.
func AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

// Clock renders the wall-clock time of t as HH:MM.
func Clock(t time.Time) string {
	return ZeroPad(t.Hour()) + ":" + ZeroPad(t.Minute())
}

func clockOrUnknown(t *time.Time) string {
	if t == nil {
		return unknownClock
	}
	return Clock(*t)
}

var germanWeekdays = [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."}

// germanDateLong renders t like the de-DE short-weekday date format,
// e.g. "Fr., 22.08.2025".
func germanDateLong(t time.Time) string {
	return germanWeekdays[int(t.Weekday())] + ", " + t.Format("02.01.2006")
}
