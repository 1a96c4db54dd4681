package cli

import (
	"fmt"

	"github.com/noorjournal/noor/internal/models"
	"github.com/noorjournal/noor/internal/utils"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(appCtx *Context) error {
	s := appCtx.Settings.Get()
	fmt.Printf("theme:                 %s\n", s.Theme)
	fmt.Printf("notifications_enabled: %v\n", s.NotificationsEnabled)
	fmt.Printf("auto_prayer_times:     %v\n", s.AutoPrayerTimes)
	if s.Location != nil {
		fmt.Printf("location:              %.4f, %.4f\n", s.Location.Lat, s.Location.Lng)
	}
	fmt.Printf("daily_reminder_time:   %s\n", s.DailyReminderTime)
	fmt.Println("alarms:")
	for _, name := range models.PrayerNames() {
		alarm := s.Alarms[name]
		state := "off"
		if alarm.Enabled {
			state = "on"
		}
		fmt.Printf("  %-8s %s  %s\n", name, alarm.Time, state)
	}
	return nil
}

type SettingsSetCmd struct {
	Theme         string   `help:"Theme (light|dark|royal|system)."`
	Notifications *bool    `help:"Enable or disable notifications."`
	AutoPrayer    *bool    `help:"Enable or disable automatic prayer times."`
	Lat           *float64 `help:"Latitude for automatic prayer times."`
	Lng           *float64 `help:"Longitude for automatic prayer times."`
	Reminder      string   `help:"Daily reminder time (HH:MM)."`
}

func (c *SettingsSetCmd) Validate() error {
	if c.Theme != "" {
		if _, err := models.ParseTheme(c.Theme); err != nil {
			return err
		}
	}
	if c.Reminder != "" {
		if _, err := utils.ParseClock(c.Reminder); err != nil {
			return fmt.Errorf("invalid reminder time (expected HH:MM): %w", err)
		}
	}
	return nil
}

func (c *SettingsSetCmd) Run(appCtx *Context) error {
	var patch models.SettingsPatch
	if c.Theme != "" {
		theme, _ := models.ParseTheme(c.Theme)
		patch.Theme = &theme
	}
	patch.NotificationsEnabled = c.Notifications
	patch.AutoPrayerTimes = c.AutoPrayer
	if c.Lat != nil || c.Lng != nil {
		if c.Lat == nil || c.Lng == nil {
			return fmt.Errorf("--lat and --lng must be set together")
		}
		// A location only exists in service of automatic prayer times.
		auto := appCtx.Settings.Get().AutoPrayerTimes
		if c.AutoPrayer != nil {
			auto = *c.AutoPrayer
		}
		if !auto {
			return fmt.Errorf("location requires automatic prayer times, pass --auto-prayer")
		}
		patch.Location = &models.Location{Lat: *c.Lat, Lng: *c.Lng}
	}
	if c.Reminder != "" {
		patch.DailyReminderTime = &c.Reminder
	}

	if _, err := appCtx.Settings.Update(patch); err != nil {
		return err
	}
	fmt.Println("Settings updated")
	return nil
}

type SettingsAlarmCmd struct {
	Prayer  string `arg:"" help:"Prayer alarm to update (fajr|zuhr|asar|maghrib|esha)."`
	Enabled *bool  `help:"Turn the alarm on or off."`
	Time    string `help:"Alarm time (HH:MM)."`
}

func (c *SettingsAlarmCmd) Validate() error {
	if _, err := (models.Prayers{}).Get(c.Prayer); err != nil {
		return err
	}
	if c.Time != "" {
		if _, err := utils.ParseClock(c.Time); err != nil {
			return fmt.Errorf("invalid alarm time (expected HH:MM): %w", err)
		}
	}
	return nil
}

func (c *SettingsAlarmCmd) Run(appCtx *Context) error {
	ap := models.AlarmPatch{Enabled: c.Enabled}
	if c.Time != "" {
		ap.Time = &c.Time
	}
	patch := models.SettingsPatch{Alarms: map[string]models.AlarmPatch{c.Prayer: ap}}

	settings, err := appCtx.Settings.Update(patch)
	if err != nil {
		return err
	}
	alarm := settings.Alarms[c.Prayer]
	state := "off"
	if alarm.Enabled {
		state = "on"
	}
	fmt.Printf("%s alarm: %s %s\n", c.Prayer, alarm.Time, state)
	return nil
}

type SettingsResetCmd struct {
	Force bool `help:"Skip the confirmation and reset immediately."`
}

func (c *SettingsResetCmd) Run(appCtx *Context) error {
	if !c.Force {
		return fmt.Errorf("factory reset restores default settings; rerun with --force to confirm")
	}
	appCtx.PerformAutomaticBackup()
	if err := appCtx.Settings.Reset(); err != nil {
		return err
	}
	fmt.Println("Settings restored to defaults")
	return nil
}
