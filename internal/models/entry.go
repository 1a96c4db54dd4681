package models

import (
	"fmt"

	"github.com/google/uuid"
)

// TriState is an explicit three-variant habit status. The zero value is
// TriUnset, so a freshly synthesized entry reports every habit as unset
// rather than "no".
type TriState string

const (
	TriUnset TriState = ""
	TriYes   TriState = "yes"
	TriNo    TriState = "no"
)

// ParseTriState parses a user-supplied habit status.
func ParseTriState(s string) (TriState, error) {
	switch TriState(s) {
	case TriYes, TriNo, TriUnset:
		return TriState(s), nil
	case "unset":
		return TriUnset, nil
	default:
		return TriUnset, fmt.Errorf("invalid status %q (expected yes, no, or unset)", s)
	}
}

// String renders the state for display, naming the unset case explicitly.
func (t TriState) String() string {
	if t == TriUnset {
		return "unset"
	}
	return string(t)
}

// The five daily prayers, in order.
const (
	PrayerFajr    = "fajr"
	PrayerZuhr    = "zuhr"
	PrayerAsar    = "asar"
	PrayerMaghrib = "maghrib"
	PrayerEsha    = "esha"
)

// PrayerNames lists the five prayers in canonical order.
func PrayerNames() []string {
	return []string{PrayerFajr, PrayerZuhr, PrayerAsar, PrayerMaghrib, PrayerEsha}
}

// Prayers tracks completion of the five daily prayers.
type Prayers struct {
	Fajr    bool `json:"fajr"`
	Zuhr    bool `json:"zuhr"`
	Asar    bool `json:"asar"`
	Maghrib bool `json:"maghrib"`
	Esha    bool `json:"esha"`
}

// Get reports whether the named prayer is marked done.
func (p Prayers) Get(name string) (bool, error) {
	switch name {
	case PrayerFajr:
		return p.Fajr, nil
	case PrayerZuhr:
		return p.Zuhr, nil
	case PrayerAsar:
		return p.Asar, nil
	case PrayerMaghrib:
		return p.Maghrib, nil
	case PrayerEsha:
		return p.Esha, nil
	default:
		return false, fmt.Errorf("unknown prayer %q", name)
	}
}

// Set marks the named prayer done or not done.
func (p *Prayers) Set(name string, done bool) error {
	switch name {
	case PrayerFajr:
		p.Fajr = done
	case PrayerZuhr:
		p.Zuhr = done
	case PrayerAsar:
		p.Asar = done
	case PrayerMaghrib:
		p.Maghrib = done
	case PrayerEsha:
		p.Esha = done
	default:
		return fmt.Errorf("unknown prayer %q", name)
	}
	return nil
}

// Count returns the number of prayers marked done.
func (p Prayers) Count() int {
	n := 0
	for _, done := range []bool{p.Fajr, p.Zuhr, p.Asar, p.Maghrib, p.Esha} {
		if done {
			n++
		}
	}
	return n
}

// CustomTask is a free-form checklist item owned by its parent entry.
// Insertion order is meaningful and preserved.
type CustomTask struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Skill tracks daily skill practice with optional free-text notes.
type Skill struct {
	Done  TriState `json:"done,omitempty"`
	Notes string   `json:"notes,omitempty"`
}

// DailyEntry is one day's journal record. The natural key is Date at day
// granularity; the store keeps at most one entry per calendar date. ID is
// opaque and only used for explicit deletes.
type DailyEntry struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"` // YYYY-MM-DD
	HijriDate   string       `json:"hijri_date,omitempty"`
	Prayers     Prayers      `json:"prayers"`
	Quran       TriState     `json:"quran,omitempty"`
	Workout     TriState     `json:"workout,omitempty"`
	Skill       Skill        `json:"skill"`
	CustomTasks []CustomTask `json:"custom_tasks,omitempty"`
	Diary       string       `json:"diary,omitempty"`
}

// NewDailyEntry synthesizes a blank entry for a day: all prayers false,
// habits unset, no tasks, empty diary. The Hijri date is snapshotted at
// creation time and not re-resolved on later views.
func NewDailyEntry(day, hijriDate string) DailyEntry {
	return DailyEntry{
		ID:        uuid.NewString(),
		Date:      day,
		HijriDate: hijriDate,
	}
}

// NewCustomTask appends-ready task with a fresh id.
func NewCustomTask(text string) CustomTask {
	return CustomTask{ID: uuid.NewString(), Text: text}
}

// AddTask appends a task to the entry's checklist.
func (e *DailyEntry) AddTask(text string) CustomTask {
	task := NewCustomTask(text)
	e.CustomTasks = append(e.CustomTasks, task)
	return task
}

// ToggleTask flips the done state of the task with the given id.
func (e *DailyEntry) ToggleTask(id string) error {
	for i := range e.CustomTasks {
		if e.CustomTasks[i].ID == id {
			e.CustomTasks[i].Done = !e.CustomTasks[i].Done
			return nil
		}
	}
	return fmt.Errorf("task not found: %s", id)
}

// RemoveTask filters out the task with the given id.
func (e *DailyEntry) RemoveTask(id string) error {
	for i := range e.CustomTasks {
		if e.CustomTasks[i].ID == id {
			e.CustomTasks = append(e.CustomTasks[:i], e.CustomTasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("task not found: %s", id)
}
