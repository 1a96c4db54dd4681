// Package content resolves the enrichment data for a day's view: the
// Hijri date for a Gregorian date and the once-per-day inspiration pair.
// Resolution walks an explicit ordered chain of sources; caching is a
// separate, independently testable concern layered on the key/value store.
package content

import (
	"encoding/json"
	"fmt"

	"github.com/noorjournal/noor/internal/constants"
	"github.com/noorjournal/noor/internal/hijri"
	"github.com/noorjournal/noor/internal/logger"
	"github.com/noorjournal/noor/internal/models"
	"github.com/noorjournal/noor/internal/storage"
)

// HijriDateCache caches one resolved Hijri date string per Gregorian day
// key. A given Gregorian date always maps to the same Hijri date, so a
// cached value is valid indefinitely; the one exception is a value that
// looks like a mis-resolved Gregorian date, which reads as a miss.
type HijriDateCache struct {
	kv storage.KV
}

func NewHijriDateCache(kv storage.KV) *HijriDateCache {
	return &HijriDateCache{kv: kv}
}

// Get returns the cached Hijri date for a day key, if a usable one exists.
func (c *HijriDateCache) Get(day string) (string, bool) {
	value, ok, err := c.kv.Get(constants.KeyHijriPrefix + day)
	if err != nil {
		logger.Warn("hijri cache read failed", "date", day, "error", err)
		return "", false
	}
	if !ok || value == "" {
		return "", false
	}
	if hijri.LooksGregorian(value) {
		logger.Debug("discarding gregorian-looking hijri cache entry", "date", day, "value", value)
		return "", false
	}
	return value, true
}

// Put caches a resolved Hijri date. Cache write failures are logged and
// swallowed; resolution already succeeded.
func (c *HijriDateCache) Put(day, value string) {
	if err := c.kv.Set(constants.KeyHijriPrefix+day, value); err != nil {
		logger.Warn("hijri cache write failed", "date", day, "error", err)
	}
}

// inspirationEnvelope is the stored cache shape: the payload wrapped with
// the calendar day it was resolved for.
type inspirationEnvelope struct {
	Date string                  `json:"date"`
	Data models.DailyInspiration `json:"data"`
}

// InspirationCache caches the daily inspiration payload, valid only while
// its stored date equals the current calendar date.
type InspirationCache struct {
	kv storage.KV
}

func NewInspirationCache(kv storage.KV) *InspirationCache {
	return &InspirationCache{kv: kv}
}

// Get returns the cached inspiration if it was stored for the given day.
// An unparsable cache entry is a miss, never an error.
func (c *InspirationCache) Get(today string) (models.DailyInspiration, bool) {
	raw, ok, err := c.kv.Get(constants.KeyInspiration)
	if err != nil {
		logger.Warn("inspiration cache read failed", "error", err)
		return models.DailyInspiration{}, false
	}
	if !ok {
		return models.DailyInspiration{}, false
	}
	var env inspirationEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		logger.Warn("inspiration cache entry is corrupted, refetching", "error", err)
		return models.DailyInspiration{}, false
	}
	// String equality against "today" computed at check time; a session
	// spanning midnight naturally invalidates.
	if env.Date != today {
		return models.DailyInspiration{}, false
	}
	return env.Data, true
}

// Put caches an inspiration payload keyed to the given day.
func (c *InspirationCache) Put(today string, data models.DailyInspiration) {
	raw, err := json.Marshal(inspirationEnvelope{Date: today, Data: data})
	if err != nil {
		logger.Warn("inspiration cache write failed", "error", fmt.Errorf("serialize: %w", err))
		return
	}
	if err := c.kv.Set(constants.KeyInspiration, string(raw)); err != nil {
		logger.Warn("inspiration cache write failed", "error", err)
	}
}
