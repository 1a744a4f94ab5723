package backup

import (
	"fmt"
	"strconv"
	"time"
)

const (
	timestampLayout = "20060102150405"
	timestampLength = len(timestampLayout) + 3
)

// FormatTimestamp renders t as yyyyMMddHHmmssSSS in t's location.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout) + fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
}

// ParseTimestamp is the inverse of FormatTimestamp, interpreting the value
// in the local time zone.
func ParseTimestamp(s string) (time.Time, error) {
	if len(s) != timestampLength {
		return time.Time{}, fmt.Errorf("timestamp %q: expected %d digits", s, timestampLength)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return time.Time{}, fmt.Errorf("timestamp %q: not numeric", s)
		}
	}
	t, err := time.ParseInLocation(timestampLayout, s[:len(timestampLayout)], time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, err)
	}
	millis, err := strconv.Atoi(s[len(timestampLayout):])
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, err)
	}
	return t.Add(time.Duration(millis) * time.Millisecond), nil
}
