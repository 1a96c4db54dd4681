package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/noorjournal/noor/internal/constants"
)

// DayKey returns the day-granularity date key (YYYY-MM-DD) for a point in
// time. Entries, caches, and inspiration lookups are all keyed this way;
// the wall-clock time of day is never part of a key.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today returns the current day key in the local timezone.
func Today() string {
	return DayKey(time.Now())
}

// ParseDay parses a day key (YYYY-MM-DD) into a time at local midnight.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// NormalizeDay reduces a date string to its day key. It accepts a plain day
// key or an RFC3339 timestamp; anything with a time-of-day component is
// truncated to the day.
func NormalizeDay(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(constants.DateFormat, s); err == nil {
		return s, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DayKey(t), nil
	}
	return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD or RFC3339)", s)
}

// ParseClock parses a time string in the standard format (HH:MM).
func ParseClock(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ExpandHome expands a leading "~" in a path to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
