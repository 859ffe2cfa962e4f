package timezone

import (
	"fmt"
	"time"
)

const DefaultTimezone = "America/Argentina/Buenos_Aires"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}

// ParseClock parses an HH:MM wall-clock value. Seconds are accepted and
// ignored so that values read back from a TIME column still parse.
func ParseClock(hm string) (hour, minute int, err error) {
	for _, layout := range []string{ClockLayout, "15:04:05"} {
		if t, perr := time.Parse(layout, hm); perr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("invalid time of day %q", hm)
}

// Combine builds the absolute instant for the wall-clock hour:minute on the
// calendar day of date, in date's location.
func Combine(date time.Time, hour, minute int) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		hour, minute, 0, 0,
		date.Location(),
	)
}

// CombineClock is Combine for an HH:MM string.
func CombineClock(date time.Time, hm string) (time.Time, error) {
	h, m, err := ParseClock(hm)
	if err != nil {
		return time.Time{}, err
	}
	return Combine(date, h, m), nil
}

// DayBounds returns [midnight, next midnight) of date's calendar day.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := Combine(date, 0, 0)
	return start, start.AddDate(0, 0, 1)
}

func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}
