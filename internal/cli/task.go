package cli

import (
	"fmt"
	"strings"
)

type TaskAddCmd struct {
	Text string `arg:"" help:"Task text."`
	Date string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *TaskAddCmd) Run(appCtx *Context) error {
	e, err := resolveForEdit(appCtx, c.Date)
	if err != nil {
		return err
	}
	task := e.AddTask(c.Text)
	if err := appCtx.Entries.Upsert(e.DailyEntry); err != nil {
		return err
	}
	fmt.Printf("Added task %s (%s)\n", task.Text, shortID(task.ID))
	return nil
}

type TaskDoneCmd struct {
	ID   string `arg:"" help:"Task id (a unique prefix is enough)."`
	Date string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *TaskDoneCmd) Run(appCtx *Context) error {
	e, err := resolveForEdit(appCtx, c.Date)
	if err != nil {
		return err
	}
	id, err := matchTaskID(e, c.ID)
	if err != nil {
		return err
	}
	if err := e.ToggleTask(id); err != nil {
		return err
	}
	if err := appCtx.Entries.Upsert(e.DailyEntry); err != nil {
		return err
	}
	fmt.Printf("Toggled task %s\n", shortID(id))
	return nil
}

type TaskRmCmd struct {
	ID   string `arg:"" help:"Task id (a unique prefix is enough)."`
	Date string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *TaskRmCmd) Run(appCtx *Context) error {
	e, err := resolveForEdit(appCtx, c.Date)
	if err != nil {
		return err
	}
	id, err := matchTaskID(e, c.ID)
	if err != nil {
		return err
	}
	if err := e.RemoveTask(id); err != nil {
		return err
	}
	if err := appCtx.Entries.Upsert(e.DailyEntry); err != nil {
		return err
	}
	fmt.Printf("Removed task %s\n", shortID(id))
	return nil
}

// matchTaskID resolves a full id or unique prefix against the entry's
// checklist.
func matchTaskID(e entry, prefix string) (string, error) {
	var match string
	for _, t := range e.CustomTasks {
		if t.ID == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("task id prefix %q is ambiguous", prefix)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("task not found: %s", prefix)
	}
	return match, nil
}
