package content

import (
	"context"
	"time"

	"github.com/noorjournal/noor/internal/hijri"
	"github.com/noorjournal/noor/internal/logger"
	"github.com/noorjournal/noor/internal/models"
	"github.com/noorjournal/noor/internal/utils"
)

// HijriSource is one tier of Hijri date resolution. A source gets a single
// bounded attempt per resolution; on error the resolver falls through to
// the next tier.
type HijriSource interface {
	Name() string
	Resolve(ctx context.Context, day string) (string, error)
}

// InspirationSource is one tier of daily inspiration resolution.
type InspirationSource interface {
	Name() string
	Fetch(ctx context.Context, day string) (models.DailyInspiration, error)
}

// HijriResult tags a resolved value with the day it was requested for.
// A caller that changed its selected date while the resolution was in
// flight must compare Day against the current selection and discard a
// mismatch rather than display stale content.
type HijriResult struct {
	Day    string
	Value  string
	Source string
}

// InspirationResult tags a resolved payload with its request day.
type InspirationResult struct {
	Day    string
	Data   models.DailyInspiration
	Source string
}

// HijriResolver walks the Hijri resolution chain: cache, then each remote
// source in order, then the local Umm al-Qura computation, then the static
// placeholder. Remote failures are never surfaced; they degrade silently
// to the local tier, which is the source of truth anyway. The remote tiers
// exist only to humanize month-name formatting.
type HijriResolver struct {
	cache   *HijriDateCache
	sources []HijriSource
}

func NewHijriResolver(cache *HijriDateCache, sources ...HijriSource) *HijriResolver {
	return &HijriResolver{cache: cache, sources: sources}
}

// Resolve returns the Hijri date for a Gregorian day key. Cache hits are
// terminal with no network. Successful source resolutions are cached; the
// placeholder is not, so the next access retries.
func (r *HijriResolver) Resolve(ctx context.Context, day string) HijriResult {
	if value, ok := r.cache.Get(day); ok {
		return HijriResult{Day: day, Value: value, Source: "cache"}
	}

	for _, src := range r.sources {
		value, err := src.Resolve(ctx, day)
		if err != nil {
			logger.Debug("hijri source failed, falling through", "source", src.Name(), "date", day, "error", err)
			continue
		}
		if !hijri.Valid(value) {
			logger.Debug("hijri source returned implausible value, falling through", "source", src.Name(), "date", day, "value", value)
			continue
		}
		r.cache.Put(day, value)
		return HijriResult{Day: day, Value: value, Source: src.Name()}
	}

	return HijriResult{Day: day, Value: hijri.Unavailable, Source: "fallback"}
}

// LocalHijriSource is the load-bearing terminal tier: a pure offline
// conversion that never fails for a valid input date.
type LocalHijriSource struct{}

func (LocalHijriSource) Name() string { return "local" }

func (LocalHijriSource) Resolve(_ context.Context, day string) (string, error) {
	t, err := utils.ParseDay(day)
	if err != nil {
		return "", err
	}
	return hijri.FromGregorian(t)
}

// InspirationResolver walks the inspiration chain: cache, then each source
// in order, then the fixed fallback pair. Any successful resolution (full
// or partially-fallback) is cached keyed to the request day, so content is
// refreshed at most once per calendar day.
type InspirationResolver struct {
	cache   *InspirationCache
	sources []InspirationSource
	now     func() time.Time
}

func NewInspirationResolver(cache *InspirationCache, sources ...InspirationSource) *InspirationResolver {
	return &InspirationResolver{cache: cache, sources: sources, now: time.Now}
}

// Today returns the current day key as seen by the resolver's clock.
// "Today" is recomputed at every check, so a session running past midnight
// starts resolving for the new day on its next request.
func (r *InspirationResolver) Today() string {
	return utils.DayKey(r.now())
}

// ResolveToday resolves the inspiration for the current calendar day.
func (r *InspirationResolver) ResolveToday(ctx context.Context) InspirationResult {
	day := r.Today()

	if data, ok := r.cache.Get(day); ok {
		return InspirationResult{Day: day, Data: data, Source: "cache"}
	}

	for _, src := range r.sources {
		data, err := src.Fetch(ctx, day)
		if err != nil {
			logger.Debug("inspiration source failed, falling through", "source", src.Name(), "error", err)
			continue
		}
		data = fillFallback(data)
		r.cache.Put(day, data)
		return InspirationResult{Day: day, Data: data, Source: src.Name()}
	}

	// Even the fixed pair counts as a resolution and is cached: the UI is
	// never left without content, and the day is not refetched.
	data := FallbackInspiration()
	r.cache.Put(day, data)
	return InspirationResult{Day: day, Data: data, Source: "fallback"}
}

// fillFallback substitutes the fixed authentic passage for any half a
// source left empty.
func fillFallback(data models.DailyInspiration) models.DailyInspiration {
	fb := FallbackInspiration()
	if data.Ayah.Empty() {
		data.Ayah = fb.Ayah
	}
	if data.Hadith.Empty() {
		data.Hadith = fb.Hadith
	}
	return data
}
