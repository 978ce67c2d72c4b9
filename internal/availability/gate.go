// Package availability decides whether official results for a draw date are
// expected to exist yet.
package availability

import (
	"errors"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	cutoffHour = 16
)

var ErrInvalidDate = errors.New("invalid draw date")

// Vietnam is UTC+7 with no daylight saving.
var Vietnam = time.FixedZone("ICT", 7*60*60)

// ParseDate validates a YYYY-MM-DD draw date.
func ParseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), Vietnam)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ShouldResultsBeAvailable reports whether, at instant now, results for date
// should have been published: the date is before today in Vietnam, or it is
// today and the 16:00 cutoff has passed.
func ShouldResultsBeAvailable(date string, now time.Time) (bool, error) {
	d, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	local := now.In(Vietnam)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Vietnam)

	switch {
	case d.Before(today):
		return true, nil
	case d.Equal(today):
		return local.Hour() >= cutoffHour, nil
	default:
		return false, nil
	}
}

// Today returns the current draw date in Vietnam as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.In(Vietnam).Format(dateLayout)
}

// Yesterday returns the draw date before Today.
func Yesterday(now time.Time) string {
	return now.In(Vietnam).AddDate(0, 0, -1).Format(dateLayout)
}
