package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/noorjournal/noor/internal/constants"
)

// TasbeehSession records one completed counting session: a run from zero
// to a target, or a manual reset of a non-zero free-running count.
type TasbeehSession struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"` // display string, e.g. "Mar 1, 2024 9:15 PM"
	ISODate   string `json:"iso_date"`  // YYYY-MM-DD
}

// NewTasbeehSession creates a session record stamped at the given time.
func NewTasbeehSession(label string, count int, at time.Time) TasbeehSession {
	return TasbeehSession{
		ID:        uuid.NewString(),
		Label:     label,
		Count:     count,
		Timestamp: at.Format(constants.DisplayTimestampFormat),
		ISODate:   at.Format(constants.DateFormat),
	}
}
