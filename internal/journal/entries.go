// Package journal holds the stores that own the application's durable
// state: daily entries, settings, and the tasbeeh history. Each store owns
// exactly one storage key and mutates it by whole-value replace-and-persist.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/noorjournal/noor/internal/constants"
	"github.com/noorjournal/noor/internal/logger"
	"github.com/noorjournal/noor/internal/models"
	"github.com/noorjournal/noor/internal/storage"
	"github.com/noorjournal/noor/internal/utils"
)

var (
	// ErrRestoreParse is returned when a backup payload is not a JSON
	// array of entry-shaped records. Restore failures are the one class of
	// error surfaced to the user directly.
	ErrRestoreParse = errors.New("backup data is not a valid entry list")

	// ErrNotFound is returned when deleting an entry whose id is unknown.
	ErrNotFound = errors.New("entry not found")
)

// EntryStore maintains the ordered collection of daily entries, keyed by
// calendar date. The collection is held in memory and persisted wholesale
// on every mutation, sorted descending by date.
type EntryStore struct {
	kv      storage.KV
	entries []models.DailyEntry
}

// NewEntryStore loads the entry collection from storage. A missing blob
// starts an empty collection; a corrupted blob is an error rather than a
// silent wipe.
func NewEntryStore(kv storage.KV) (*EntryStore, error) {
	s := &EntryStore{kv: kv}

	raw, ok, err := kv.Get(constants.KeyEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	if !ok {
		return s, nil
	}
	if err := json.Unmarshal([]byte(raw), &s.entries); err != nil {
		return nil, fmt.Errorf("failed to parse stored entries: %w", err)
	}
	s.sortEntries()
	return s, nil
}

// Upsert replaces any existing entry for the same calendar day with the
// given entry, then re-sorts and persists the full collection. Concurrent
// edits to the same date overwrite whole-entry; there is no field merge.
func (s *EntryStore) Upsert(entry models.DailyEntry) error {
	day, err := utils.NormalizeDay(entry.Date)
	if err != nil {
		return fmt.Errorf("cannot upsert entry: %w", err)
	}
	entry.Date = day
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Date != day {
			kept = append(kept, e)
		}
	}
	s.entries = append(kept, entry)
	s.sortEntries()
	return s.persist()
}

// Query returns the entry for a calendar day. Date matching is
// day-granular: any time-of-day in the input is discarded.
func (s *EntryStore) Query(date string) (models.DailyEntry, bool) {
	day, err := utils.NormalizeDay(date)
	if err != nil {
		return models.DailyEntry{}, false
	}
	for _, e := range s.entries {
		if e.Date == day {
			return e, true
		}
	}
	return models.DailyEntry{}, false
}

// ResolveOrCreate returns the stored entry for a day, or synthesizes a
// blank one with the given Hijri snapshot. The blank entry is in-memory
// only; it is not persisted until the caller upserts a mutation.
func (s *EntryStore) ResolveOrCreate(date, hijriDate string) (models.DailyEntry, error) {
	day, err := utils.NormalizeDay(date)
	if err != nil {
		return models.DailyEntry{}, err
	}
	if entry, ok := s.Query(day); ok {
		return entry, nil
	}
	return models.NewDailyEntry(day, hijriDate), nil
}

// Delete removes the entry with the given id and re-persists.
func (s *EntryStore) Delete(id string) error {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.persist()
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// All returns a copy of the collection, sorted descending by date.
func (s *EntryStore) All() []models.DailyEntry {
	out := make([]models.DailyEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *EntryStore) Len() int {
	return len(s.entries)
}

// Export serializes the collection as a plain JSON array, no envelope.
// This is the backup file format; Restore consumes it unchanged.
func (s *EntryStore) Export() ([]byte, error) {
	entries := s.entries
	if entries == nil {
		entries = []models.DailyEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize entries: %w", err)
	}
	return data, nil
}

// Restore validates a backup payload and, on success, fully replaces the
// in-memory and persisted collection. Validation happens before any write:
// a malformed payload returns ErrRestoreParse and leaves existing state
// untouched. Returns the number of restored entries.
func (s *EntryStore) Restore(raw []byte) (int, error) {
	var incoming []models.DailyEntry
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRestoreParse, err)
	}
	if incoming == nil {
		// "null" unmarshals into a nil slice without error; only an
		// actual array may replace the collection.
		return 0, fmt.Errorf("%w: payload is not a JSON array", ErrRestoreParse)
	}

	// Normalize and validate every record before touching state. Entries
	// sharing a day collapse to the last occurrence, matching upsert
	// semantics.
	byDay := make(map[string]int, len(incoming))
	restored := make([]models.DailyEntry, 0, len(incoming))
	for i, e := range incoming {
		day, err := utils.NormalizeDay(e.Date)
		if err != nil {
			return 0, fmt.Errorf("%w: record %d has invalid date %q", ErrRestoreParse, i, e.Date)
		}
		e.Date = day
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if at, ok := byDay[day]; ok {
			logger.Warn("backup contains duplicate day, keeping later record", "date", day)
			restored[at] = e
			continue
		}
		byDay[day] = len(restored)
		restored = append(restored, e)
	}

	s.entries = restored
	s.sortEntries()
	if err := s.persist(); err != nil {
		return 0, err
	}
	return len(restored), nil
}

func (s *EntryStore) sortEntries() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Date > s.entries[j].Date
	})
}

func (s *EntryStore) persist() error {
	entries := s.entries
	if entries == nil {
		entries = []models.DailyEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize entries: %w", err)
	}
	if err := s.kv.Set(constants.KeyEntries, string(data)); err != nil {
		return fmt.Errorf("failed to persist entries: %w", err)
	}
	return nil
}
