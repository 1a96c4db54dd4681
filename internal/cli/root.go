package cli

import (
	"context"

	"github.com/noorjournal/noor/internal/backup"
	"github.com/noorjournal/noor/internal/content"
	"github.com/noorjournal/noor/internal/journal"
	"github.com/noorjournal/noor/internal/logger"
	"github.com/noorjournal/noor/internal/models"
	"github.com/noorjournal/noor/internal/storage"
	"github.com/noorjournal/noor/internal/utils"
)

// entry pairs a daily entry with whether it was synthesized for this
// request rather than loaded from the store.
type entry struct {
	models.DailyEntry
	synthesized bool
}

// Context carries the stores and resolvers every command runs against.
// All of them are constructed once at startup and passed by reference;
// nothing reaches for ambient global state.
type Context struct {
	KV          storage.KV
	Entries     *journal.EntryStore
	Settings    *journal.SettingsStore
	Tasbeeh     *journal.TasbeehLog
	Hijri       *content.HijriResolver
	Inspiration *content.InspirationResolver
	Backups     *backup.Manager
}

// ResolveEntry returns the entry for a date, synthesizing a blank one
// (with its Hijri snapshot resolved) when none exists. The blank entry is
// not persisted; only a later mutation writes it.
func (c *Context) ResolveEntry(ctx context.Context, date string) (entry, error) {
	day, err := utils.NormalizeDay(date)
	if err != nil {
		return entry{}, err
	}
	if e, ok := c.Entries.Query(day); ok {
		return entry{DailyEntry: e}, nil
	}
	hijriDate := c.Hijri.Resolve(ctx, day)
	e, err := c.Entries.ResolveOrCreate(day, hijriDate.Value)
	if err != nil {
		return entry{}, err
	}
	return entry{DailyEntry: e, synthesized: true}, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles
// errors so a failed backup never interrupts the user's workflow.
func (c *Context) PerformAutomaticBackup() {
	if _, err := c.Backups.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
