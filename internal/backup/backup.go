package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/noorjournal/noor/internal/journal"
)

const (
	// MaxBackups is the maximum number of automatic backups to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files
	BackupFilePrefix = "noor-"
	// BackupFileSuffix is the suffix for backup files
	BackupFileSuffix = ".json"
)

// Info contains information about a backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager writes and restores entry-collection backups. A backup file is
// the plain JSON array the entry store exports, so any backup can also be
// restored by hand through 'noor restore'.
type Manager struct {
	entries   *journal.EntryStore
	backupDir string
}

// NewManager creates a backup manager storing automatic backups next to
// the given storage file.
func NewManager(entries *journal.EntryStore, storagePath string) *Manager {
	configDir := filepath.Dir(storagePath)
	return &Manager{
		entries:   entries,
		backupDir: filepath.Join(configDir, BackupDirName),
	}
}

// BackupDir returns the backup directory path
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// WriteExport writes the current entry collection to an arbitrary path.
func (m *Manager) WriteExport(path string) error {
	data, err := m.entries.Export()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// CreateBackup creates a new timestamped backup and rotates old ones.
func (m *Manager) CreateBackup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	// Generate backup filename with timestamp, falling back to second
	// precision and then a counter when a name is already taken.
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, BackupFilePrefix+timestamp+BackupFileSuffix)
	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupPath = filepath.Join(m.backupDir, BackupFilePrefix+timestamp+BackupFileSuffix)
		counter := 1
		for {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, BackupFileSuffix))
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if err := m.WriteExport(backupPath); err != nil {
		return "", err
	}

	if err := m.rotateBackups(); err != nil {
		// Rotation failure never fails the backup itself.
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}

	return backupPath, nil
}

// ListBackups returns all available backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	dirEntries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}

		timestampStr := strings.TrimSuffix(strings.TrimPrefix(name, BackupFilePrefix), BackupFileSuffix)
		// Drop a trailing "-N" collision counter if present.
		if parts := strings.Split(timestampStr, "-"); len(parts) > 2 {
			last := parts[len(parts)-1]
			if len(last) != 4 && len(last) != 6 {
				timestampStr = strings.Join(parts[:len(parts)-1], "-")
			}
		}

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: timestamp, Size: info.Size()})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreFile replaces the entry collection from a backup file. The
// payload is validated before any write, and the current collection is
// backed up first so a restore is always reversible. Returns the number
// of restored entries.
func (m *Manager) RestoreFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read backup file: %w", err)
	}

	// Safety copy of the current collection before replacing it.
	if m.entries.Len() > 0 {
		if _, err := m.CreateBackup(); err != nil {
			return 0, fmt.Errorf("failed to back up current entries before restore: %w", err)
		}
	}

	return m.entries.Restore(data)
}
