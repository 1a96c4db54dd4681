package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/noorjournal/noor/internal/models"
	"github.com/noorjournal/noor/internal/utils"
)

type PrayCmd struct {
	Prayer string `arg:"" help:"Prayer to mark (fajr|zuhr|asar|maghrib|esha)."`
	Date   string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
	Undo   bool   `short:"u" help:"Mark the prayer as not done."`
}

func (c *PrayCmd) Validate() error {
	if _, err := (models.Prayers{}).Get(strings.ToLower(c.Prayer)); err != nil {
		return err
	}
	return nil
}

func (c *PrayCmd) Run(appCtx *Context) error {
	e, err := resolveForEdit(appCtx, c.Date)
	if err != nil {
		return err
	}
	if err := e.Prayers.Set(strings.ToLower(c.Prayer), !c.Undo); err != nil {
		return err
	}
	if err := appCtx.Entries.Upsert(e.DailyEntry); err != nil {
		return err
	}
	state := "done"
	if c.Undo {
		state = "not done"
	}
	fmt.Printf("Marked %s %s for %s (%d/5)\n", c.Prayer, state, e.Date, e.Prayers.Count())
	return nil
}

type HabitCmd struct {
	Habit  string `arg:"" help:"Habit to update (quran|workout)."`
	Status string `arg:"" help:"Status (yes|no|unset)."`
	Date   string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitCmd) Validate() error {
	if c.Habit != "quran" && c.Habit != "workout" {
		return fmt.Errorf("unknown habit %q (expected quran or workout)", c.Habit)
	}
	_, err := models.ParseTriState(c.Status)
	return err
}

func (c *HabitCmd) Run(appCtx *Context) error {
	status, err := models.ParseTriState(c.Status)
	if err != nil {
		return err
	}
	e, err := resolveForEdit(appCtx, c.Date)
	if err != nil {
		return err
	}
	switch c.Habit {
	case "quran":
		e.Quran = status
	case "workout":
		e.Workout = status
	}
	if err := appCtx.Entries.Upsert(e.DailyEntry); err != nil {
		return err
	}
	fmt.Printf("Set %s to %s for %s\n", c.Habit, status, e.Date)
	return nil
}

type SkillCmd struct {
	Status string  `arg:"" help:"Status (yes|no|unset)."`
	Notes  *string `short:"n" help:"Free-text notes about what was practiced; pass an empty string to clear."`
	Date   string  `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *SkillCmd) Run(appCtx *Context) error {
	status, err := models.ParseTriState(c.Status)
	if err != nil {
		return err
	}
	e, err := resolveForEdit(appCtx, c.Date)
	if err != nil {
		return err
	}
	e.Skill.Done = status
	if c.Notes != nil {
		e.Skill.Notes = *c.Notes
	}
	if err := appCtx.Entries.Upsert(e.DailyEntry); err != nil {
		return err
	}
	fmt.Printf("Set skill to %s for %s\n", status, e.Date)
	return nil
}

type DiaryCmd struct {
	Text string `arg:"" help:"Diary text for the day."`
	Date string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *DiaryCmd) Run(appCtx *Context) error {
	e, err := resolveForEdit(appCtx, c.Date)
	if err != nil {
		return err
	}
	e.Diary = c.Text
	if err := appCtx.Entries.Upsert(e.DailyEntry); err != nil {
		return err
	}
	fmt.Printf("Saved diary for %s\n", e.Date)
	return nil
}

type EntryDeleteCmd struct {
	ID string `arg:"" help:"Entry id to delete."`
}

func (c *EntryDeleteCmd) Run(appCtx *Context) error {
	appCtx.PerformAutomaticBackup()
	if err := appCtx.Entries.Delete(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted entry %s\n", c.ID)
	return nil
}

// resolveForEdit loads or synthesizes the entry for a date ahead of a
// mutation.
func resolveForEdit(appCtx *Context, date string) (entry, error) {
	if date == "" {
		date = utils.Today()
	}
	return appCtx.ResolveEntry(context.Background(), date)
}
