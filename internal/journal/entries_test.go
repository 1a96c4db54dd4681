package journal

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/noorjournal/noor/internal/constants"
	"github.com/noorjournal/noor/internal/models"
)

func TestEntryStoreUpsert(t *testing.T) {
	t.Run("replaces entry for the same day", func(t *testing.T) {
		kv := newMemKV()
		store, err := NewEntryStore(kv)
		if err != nil {
			t.Fatalf("NewEntryStore: %v", err)
		}

		first := models.NewDailyEntry("2024-03-01", "20 Shaban 1445 AH")
		first.Diary = "morning"
		if err := store.Upsert(first); err != nil {
			t.Fatalf("Upsert: %v", err)
		}

		second := first
		second.Diary = "evening"
		if err := store.Upsert(second); err != nil {
			t.Fatalf("Upsert: %v", err)
		}

		if store.Len() != 1 {
			t.Fatalf("expected 1 entry, got %d", store.Len())
		}
		got, ok := store.Query("2024-03-01")
		if !ok {
			t.Fatal("expected entry for 2024-03-01")
		}
		if got.Diary != "evening" {
			t.Errorf("expected later write to win, got diary %q", got.Diary)
		}
	})

	t.Run("normalizes timestamps to day granularity", func(t *testing.T) {
		kv := newMemKV()
		store, err := NewEntryStore(kv)
		if err != nil {
			t.Fatalf("NewEntryStore: %v", err)
		}

		entry := models.NewDailyEntry("2024-03-01T08:30:00Z", "")
		if err := store.Upsert(entry); err != nil {
			t.Fatalf("Upsert: %v", err)
		}

		got, ok := store.Query("2024-03-01T23:59:00Z")
		if !ok {
			t.Fatal("expected day-granular match for same-day timestamp")
		}
		if got.Date != "2024-03-01" {
			t.Errorf("expected stored date 2024-03-01, got %q", got.Date)
		}
		if store.Len() != 1 {
			t.Errorf("expected 1 entry, got %d", store.Len())
		}
	})

	t.Run("rejects unparsable dates", func(t *testing.T) {
		kv := newMemKV()
		store, _ := NewEntryStore(kv)
		entry := models.NewDailyEntry("yesterday", "")
		if err := store.Upsert(entry); err == nil {
			t.Fatal("expected error for invalid date")
		}
	})

	t.Run("keeps entries sorted newest first", func(t *testing.T) {
		kv := newMemKV()
		store, _ := NewEntryStore(kv)
		for _, day := range []string{"2024-03-02", "2024-03-05", "2024-03-01"} {
			if err := store.Upsert(models.NewDailyEntry(day, "")); err != nil {
				t.Fatalf("Upsert %s: %v", day, err)
			}
		}
		all := store.All()
		want := []string{"2024-03-05", "2024-03-02", "2024-03-01"}
		for i, day := range want {
			if all[i].Date != day {
				t.Errorf("position %d: expected %s, got %s", i, day, all[i].Date)
			}
		}
	})
}

func TestEntryStoreQueryMiss(t *testing.T) {
	kv := newMemKV()
	store, _ := NewEntryStore(kv)
	if _, ok := store.Query("2024-03-01"); ok {
		t.Fatal("expected miss on empty store")
	}
	if _, ok := store.Query("not-a-date"); ok {
		t.Fatal("expected miss for unparsable date")
	}
}

func TestEntryStoreResolveOrCreate(t *testing.T) {
	kv := newMemKV()
	store, _ := NewEntryStore(kv)

	entry, err := store.ResolveOrCreate("2024-03-01", "20 Shaban 1445 AH")
	if err != nil {
		t.Fatalf("ResolveOrCreate: %v", err)
	}
	if entry.HijriDate != "20 Shaban 1445 AH" {
		t.Errorf("expected hijri snapshot on blank entry, got %q", entry.HijriDate)
	}
	if entry.Prayers.Count() != 0 || entry.Quran != models.TriUnset {
		t.Error("blank entry should have no prayers done and habits unset")
	}

	// The blank entry is not persisted until a mutation is upserted.
	if store.Len() != 0 {
		t.Fatalf("blank entry should not be stored, got %d entries", store.Len())
	}

	// Mutate and upsert, then resolve again: same record comes back.
	entry.Prayers.Fajr = true
	if err := store.Upsert(entry); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	again, err := store.ResolveOrCreate("2024-03-01", "ignored")
	if err != nil {
		t.Fatalf("ResolveOrCreate: %v", err)
	}
	if again.ID != entry.ID || !again.Prayers.Fajr {
		t.Error("expected stored entry with fajr marked, not a fresh blank")
	}
}

func TestEntryStoreDelete(t *testing.T) {
	kv := newMemKV()
	store, _ := NewEntryStore(kv)
	entry := models.NewDailyEntry("2024-03-01", "")
	if err := store.Upsert(entry); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := store.Delete(entry.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store after delete, got %d", store.Len())
	}

	if err := store.Delete("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestEntryStorePersistence(t *testing.T) {
	kv := newMemKV()
	store, _ := NewEntryStore(kv)
	entry := models.NewDailyEntry("2024-03-01", "")
	entry.Diary = "persisted"
	if err := store.Upsert(entry); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// A second store over the same kv sees the same data.
	reopened, err := NewEntryStore(kv)
	if err != nil {
		t.Fatalf("NewEntryStore (reopen): %v", err)
	}
	got, ok := reopened.Query("2024-03-01")
	if !ok || got.Diary != "persisted" {
		t.Errorf("expected persisted entry after reopen, got %+v ok=%v", got, ok)
	}
}

func TestEntryStoreCorruptBlob(t *testing.T) {
	kv := newMemKV()
	kv.values[constants.KeyEntries] = "{not json"
	if _, err := NewEntryStore(kv); err == nil {
		t.Fatal("expected load error for corrupted entries blob")
	}
}

func TestEntryStoreRestore(t *testing.T) {
	t.Run("round trips an export", func(t *testing.T) {
		kv := newMemKV()
		store, _ := NewEntryStore(kv)
		for _, day := range []string{"2024-03-01", "2024-03-02"} {
			if err := store.Upsert(models.NewDailyEntry(day, "")); err != nil {
				t.Fatalf("Upsert: %v", err)
			}
		}
		data, err := store.Export()
		if err != nil {
			t.Fatalf("Export: %v", err)
		}

		fresh, _ := NewEntryStore(newMemKV())
		n, err := fresh.Restore(data)
		if err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if n != 2 || fresh.Len() != 2 {
			t.Errorf("expected 2 restored entries, got n=%d len=%d", n, fresh.Len())
		}
	})

	t.Run("rejects non-array payloads without touching state", func(t *testing.T) {
		kv := newMemKV()
		store, _ := NewEntryStore(kv)
		existing := models.NewDailyEntry("2024-03-01", "")
		if err := store.Upsert(existing); err != nil {
			t.Fatalf("Upsert: %v", err)
		}

		for _, payload := range []string{`{"id":"x"}`, `"hello"`, `not json`, `null`} {
			if _, err := store.Restore([]byte(payload)); !errors.Is(err, ErrRestoreParse) {
				t.Errorf("payload %q: expected ErrRestoreParse, got %v", payload, err)
			}
		}
		if store.Len() != 1 {
			t.Errorf("failed restore must leave state untouched, len=%d", store.Len())
		}
		if _, ok := store.Query("2024-03-01"); !ok {
			t.Error("existing entry lost after failed restore")
		}
	})

	t.Run("rejects records with invalid dates", func(t *testing.T) {
		kv := newMemKV()
		store, _ := NewEntryStore(kv)
		payload := `[{"id":"a","date":"2024-03-01"},{"id":"b","date":"soon"}]`
		if _, err := store.Restore([]byte(payload)); !errors.Is(err, ErrRestoreParse) {
			t.Fatalf("expected ErrRestoreParse, got %v", err)
		}
		if store.Len() != 0 {
			t.Errorf("partial restore must not happen, len=%d", store.Len())
		}
	})

	t.Run("collapses duplicate days keeping the later record", func(t *testing.T) {
		kv := newMemKV()
		store, _ := NewEntryStore(kv)
		payload := `[
			{"id":"a","date":"2024-03-01","diary":"first"},
			{"id":"b","date":"2024-03-01","diary":"second"}
		]`
		n, err := store.Restore([]byte(payload))
		if err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected 1 entry after collapse, got %d", n)
		}
		got, _ := store.Query("2024-03-01")
		if got.Diary != "second" {
			t.Errorf("expected later duplicate to win, got diary %q", got.Diary)
		}
	})

	t.Run("assigns ids to records missing them", func(t *testing.T) {
		kv := newMemKV()
		store, _ := NewEntryStore(kv)
		if _, err := store.Restore([]byte(`[{"date":"2024-03-01"}]`)); err != nil {
			t.Fatalf("Restore: %v", err)
		}
		got, _ := store.Query("2024-03-01")
		if got.ID == "" {
			t.Error("restored record should receive a generated id")
		}
	})
}

func TestEntryStoreExportEmpty(t *testing.T) {
	store, _ := NewEntryStore(newMemKV())
	data, err := store.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	var out []models.DailyEntry
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export is not a JSON array: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty array, got %d records", len(out))
	}
	if string(data) != "[]" {
		t.Errorf("empty export should render as [], got %s", data)
	}
}
