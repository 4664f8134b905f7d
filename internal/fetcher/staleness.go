package fetcher

import (
	"errors"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// DefaultDaysSince is the default staleness threshold in days.
const DefaultDaysSince = 7

const secondsPerDay = 24 * 60 * 60

// ErrTimestamp is wrapped by errors from ParseTimestamp.
var ErrTimestamp = errors.New("unparseable timestamp")

// ParseTimestamp parses an external info timestamp.
//
// RFC 3339 (the format Navidrome emits) is tried first. Anything else is
// handed to a lenient parser; values without a zone are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrTimestamp, s, err)
	}
	return t, nil
}

// DaysSince returns the number of whole days from then to now, rounded
// towards negative infinity. It works on Unix seconds so that the year-1
// "never updated" sentinel does not overflow time.Duration.
func DaysSince(now, then time.Time) int {
	secs := now.Unix() - then.Unix()
	// A partial second counts towards the next whole second down
	if now.Nanosecond() < then.Nanosecond() {
		secs--
	}
	days := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		days--
	}
	return int(days)
}

// IsDue determines if an artist's external info should be refreshed:
// always when force is set, otherwise once age has reached threshold days.
func IsDue(age, threshold int, force bool) bool {
	return force || age >= threshold
}
