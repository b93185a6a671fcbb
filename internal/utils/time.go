package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseStayDate accepts YYYY-MM-DD (read as UTC midnight) or RFC3339.
func ParseStayDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(layoutDate, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// NightsBetween counts started 24h periods from checkIn to checkOut.
// Partial days round up; a non-positive span yields zero or less. Seconds
// are used instead of time.Duration, which saturates after ~292 years.
func NightsBetween(checkIn, checkOut time.Time) int {
	secs := float64(checkOut.Unix()-checkIn.Unix()) + float64(checkOut.Nanosecond()-checkIn.Nanosecond())/1e9
	return int(math.Ceil(secs / 86400))
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
