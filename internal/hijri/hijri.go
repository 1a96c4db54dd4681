// Package hijri converts Gregorian dates to the Islamic (Hijri) calendar
// using the Umm al-Qura convention. The conversion is a pure function of
// the date: offline, deterministic, and always correct for valid inputs,
// which is why it serves as the terminal tier of Hijri date resolution.
package hijri

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	gohijri "github.com/hablullah/go-hijri"
)

// Unavailable is the placeholder shown when even local conversion fails.
// It is never cached, so the next access retries resolution.
const Unavailable = "Hijri date unavailable"

var monthNames = [12]string{
	"Muharram",
	"Safar",
	"Rabi al-Awwal",
	"Rabi al-Thani",
	"Jumada al-Awwal",
	"Jumada al-Thani",
	"Rajab",
	"Shaban",
	"Ramadan",
	"Shawwal",
	"Dhul Qadah",
	"Dhul Hijjah",
}

var gregorianMonths = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var yearPattern = regexp.MustCompile(`\b(1[3-5][0-9]{2})\b`)

// MonthName returns the transliterated name for a Hijri month (1-12).
func MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("invalid hijri month %d", month)
	}
	return monthNames[month-1], nil
}

// FromGregorian converts a Gregorian date to a formatted Umm al-Qura date
// string, e.g. "21 Ramadan 1445 AH".
func FromGregorian(t time.Time) (string, error) {
	d, err := gohijri.CreateUmmAlQuraDate(t)
	if err != nil {
		return "", fmt.Errorf("umm al-qura conversion failed for %s: %w", t.Format("2006-01-02"), err)
	}
	name, err := MonthName(int(d.Month))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %s %d AH", d.Day, name, d.Year), nil
}

// LooksGregorian reports whether a supposed Hijri date string contains a
// literal Gregorian month name. Remote sources occasionally echo the input
// date back; such cache entries must be treated as invalid and re-resolved.
func LooksGregorian(s string) bool {
	lower := strings.ToLower(s)
	for _, m := range gregorianMonths {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// PlausibleYear reports whether the string contains a year-like numeral in
// the expected Hijri era range (1300-1599 AH). Remote resolutions that
// fail this check are discarded as malformed.
func PlausibleYear(s string) bool {
	m := yearPattern.FindString(s)
	if m == "" {
		return false
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return false
	}
	return year >= 1300 && year < 1600
}

// Valid reports whether a resolved Hijri date string is usable: it must
// carry a plausible Hijri year and must not look like a mis-resolved
// Gregorian date.
func Valid(s string) bool {
	return s != "" && !LooksGregorian(s) && PlausibleYear(s)
}
