package journal

import (
	"encoding/json"
	"fmt"

	"github.com/noorjournal/noor/internal/constants"
	"github.com/noorjournal/noor/internal/logger"
	"github.com/noorjournal/noor/internal/models"
	"github.com/noorjournal/noor/internal/storage"
)

// SettingsStore owns the settings singleton. Persisted settings are merged
// over hard-coded defaults at load time, so fields introduced after a
// user's data was written still default correctly.
type SettingsStore struct {
	kv       storage.KV
	settings models.Settings
}

// NewSettingsStore loads settings from storage, merging over defaults.
// A missing or unparsable blob falls back to defaults; corruption here is
// not fatal because the singleton can always be rebuilt.
func NewSettingsStore(kv storage.KV) (*SettingsStore, error) {
	s := &SettingsStore{kv: kv, settings: models.DefaultSettings()}

	raw, ok, err := kv.Get(constants.KeySettings)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if ok {
		// Unmarshal into the defaults: present fields overwrite, absent
		// fields keep their default value.
		if err := json.Unmarshal([]byte(raw), &s.settings); err != nil {
			logger.Warn("stored settings are corrupted, using defaults", "error", err)
			s.settings = models.DefaultSettings()
		}
	}
	s.settings.EnsureAlarms()
	return s, nil
}

// Get returns a copy of the current settings.
func (s *SettingsStore) Get() models.Settings {
	return s.settings.Clone()
}

// Update merges a partial patch into the current settings and persists the
// merged result synchronously. The alarms sub-map is merged key by key and
// is never truncated below the five prayers.
func (s *SettingsStore) Update(patch models.SettingsPatch) (models.Settings, error) {
	merged := s.settings.Merge(patch)
	if err := s.persist(merged); err != nil {
		return models.Settings{}, err
	}
	s.settings = merged
	return merged.Clone(), nil
}

// Reset restores the hard-coded defaults (factory reset) and persists.
func (s *SettingsStore) Reset() error {
	defaults := models.DefaultSettings()
	if err := s.persist(defaults); err != nil {
		return err
	}
	s.settings = defaults
	return nil
}

func (s *SettingsStore) persist(settings models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := s.kv.Set(constants.KeySettings, string(data)); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}
