package utils

import (
	"fmt"
	"time"
)

// DateTimeLayout is the wire format for lancamento timestamps,
// e.g. "2024-01-10 12:00:00". No timezone, second precision.
const DateTimeLayout = "2006-01-02 15:04:05"

func ParseDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse datetime %q: %w", s, err)
	}
	return t, nil
}

func FormatDateTime(t time.Time) string {
	return t.In(time.UTC).Format(DateTimeLayout)
}
