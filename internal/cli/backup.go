package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/noorjournal/noor/internal/journal"
)

type ExportCmd struct {
	Path string `arg:"" help:"File to write the backup to."`
}

func (c *ExportCmd) Run(appCtx *Context) error {
	if err := appCtx.Backups.WriteExport(c.Path); err != nil {
		return err
	}
	fmt.Printf("Exported %d entries to %s\n", appCtx.Entries.Len(), c.Path)
	return nil
}

type RestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore from."`
}

func (c *RestoreCmd) Run(appCtx *Context) error {
	count, err := appCtx.Backups.RestoreFile(c.Path)
	if err != nil {
		// Restore failures are the one error class shown to the user
		// directly; existing data is untouched.
		if errors.Is(err, journal.ErrRestoreParse) {
			return fmt.Errorf("restore failed, existing entries are unchanged: %w", err)
		}
		return err
	}
	fmt.Printf("Restored %d entries, replacing the previous collection\n", count)
	return nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(appCtx *Context) error {
	path, err := appCtx.Backups.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(appCtx *Context) error {
	backups, err := appCtx.Backups.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %6d bytes  %s\n", b.Timestamp.Format("2006-01-02 15:04"), b.Size, filepath.Base(b.Path))
	}
	return nil
}
