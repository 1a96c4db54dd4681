package models

import (
	"fmt"

	"github.com/noorjournal/noor/internal/constants"
)

// Theme is the application color theme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeRoyal  Theme = "royal"
	ThemeSystem Theme = "system"
)

// ParseTheme validates a user-supplied theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeRoyal, ThemeSystem:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("invalid theme %q (expected light, dark, royal, or system)", s)
	}
}

// Alarm is one prayer's reminder setting.
type Alarm struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"` // HH:MM
}

// Location is a lat/lng pair captured via geolocation when automatic
// prayer times are enabled.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Settings represents application-wide settings. The Alarms map always
// holds exactly the five prayer keys.
type Settings struct {
	Theme                Theme            `json:"theme"`
	NotificationsEnabled bool             `json:"notifications_enabled"`
	AutoPrayerTimes      bool             `json:"auto_prayer_times"`
	Location             *Location        `json:"location,omitempty"`
	DailyReminderTime    string           `json:"daily_reminder_time"`
	Alarms               map[string]Alarm `json:"alarms"`
}

// DefaultSettings returns the hard-coded startup defaults.
func DefaultSettings() Settings {
	return Settings{
		Theme:                Theme(constants.DefaultTheme),
		NotificationsEnabled: false,
		AutoPrayerTimes:      false,
		DailyReminderTime:    constants.DefaultDailyReminderTime,
		Alarms: map[string]Alarm{
			PrayerFajr:    {Enabled: false, Time: constants.DefaultFajrAlarm},
			PrayerZuhr:    {Enabled: false, Time: constants.DefaultZuhrAlarm},
			PrayerAsar:    {Enabled: false, Time: constants.DefaultAsarAlarm},
			PrayerMaghrib: {Enabled: false, Time: constants.DefaultMaghribAlarm},
			PrayerEsha:    {Enabled: false, Time: constants.DefaultEshaAlarm},
		},
	}
}

// AlarmPatch is a partial update for one prayer alarm.
type AlarmPatch struct {
	Enabled *bool
	Time    *string
}

// SettingsPatch is a partial settings update. Nil fields are left
// untouched by Merge.
type SettingsPatch struct {
	Theme                *Theme
	NotificationsEnabled *bool
	AutoPrayerTimes      *bool
	Location             *Location
	DailyReminderTime    *string
	Alarms               map[string]AlarmPatch
}

// Merge applies a patch to a settings value and returns the result.
// Top-level fields are shallow-merged; the alarms map is merged key by
// key against the existing five-prayer map, never truncated.
func (s Settings) Merge(p SettingsPatch) Settings {
	out := s.Clone()
	if p.Theme != nil {
		out.Theme = *p.Theme
	}
	if p.NotificationsEnabled != nil {
		out.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.AutoPrayerTimes != nil {
		out.AutoPrayerTimes = *p.AutoPrayerTimes
		if !out.AutoPrayerTimes {
			// Location only exists in service of automatic prayer times.
			out.Location = nil
		}
	}
	if p.Location != nil {
		loc := *p.Location
		out.Location = &loc
	}
	if p.DailyReminderTime != nil {
		out.DailyReminderTime = *p.DailyReminderTime
	}
	for name, ap := range p.Alarms {
		alarm, ok := out.Alarms[name]
		if !ok {
			// Unknown prayer names never enter the alarms map.
			continue
		}
		if ap.Enabled != nil {
			alarm.Enabled = *ap.Enabled
		}
		if ap.Time != nil {
			alarm.Time = *ap.Time
		}
		out.Alarms[name] = alarm
	}
	out.EnsureAlarms()
	return out
}

// Clone returns a deep copy; the alarms map and location are never shared.
func (s Settings) Clone() Settings {
	out := s
	out.Alarms = make(map[string]Alarm, len(s.Alarms))
	for k, v := range s.Alarms {
		out.Alarms[k] = v
	}
	if s.Location != nil {
		loc := *s.Location
		out.Location = &loc
	}
	return out
}

// EnsureAlarms restores any missing prayer keys from defaults and drops
// keys that are not one of the five prayers. Persisted settings from older
// versions may be missing keys; the invariant is exactly five.
func (s *Settings) EnsureAlarms() {
	defaults := DefaultSettings().Alarms
	if s.Alarms == nil {
		s.Alarms = defaults
		return
	}
	known := make(map[string]bool, 5)
	for _, name := range PrayerNames() {
		known[name] = true
		if _, ok := s.Alarms[name]; !ok {
			s.Alarms[name] = defaults[name]
		}
	}
	for k := range s.Alarms {
		if !known[k] {
			delete(s.Alarms, k)
		}
	}
}
