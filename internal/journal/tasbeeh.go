package journal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/noorjournal/noor/internal/constants"
	"github.com/noorjournal/noor/internal/logger"
	"github.com/noorjournal/noor/internal/models"
	"github.com/noorjournal/noor/internal/storage"
)

// TasbeehLog is the append-only history of completed counting sessions,
// most recent first, capped at constants.MaxTasbeehSessions.
type TasbeehLog struct {
	kv       storage.KV
	sessions []models.TasbeehSession
	now      func() time.Time // injectable clock for deterministic tests
}

// NewTasbeehLog loads the session history. A corrupted blob is logged and
// treated as empty; the history is expendable analytics data.
func NewTasbeehLog(kv storage.KV) (*TasbeehLog, error) {
	l := &TasbeehLog{kv: kv, now: time.Now}

	raw, ok, err := kv.Get(constants.KeyTasbeeh)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasbeeh history: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &l.sessions); err != nil {
			logger.Warn("tasbeeh history is corrupted, starting fresh", "error", err)
			l.sessions = nil
		}
	}
	return l, nil
}

// LogSession prepends a new session record, truncates to the cap, and
// persists the truncated list.
func (l *TasbeehLog) LogSession(label string, count int) (models.TasbeehSession, error) {
	session := models.NewTasbeehSession(label, count, l.now())
	l.sessions = append([]models.TasbeehSession{session}, l.sessions...)
	if len(l.sessions) > constants.MaxTasbeehSessions {
		l.sessions = l.sessions[:constants.MaxTasbeehSessions]
	}
	if err := l.persist(); err != nil {
		return models.TasbeehSession{}, err
	}
	return session, nil
}

// Sessions returns a copy of the history, most recent first.
func (l *TasbeehLog) Sessions() []models.TasbeehSession {
	out := make([]models.TasbeehSession, len(l.sessions))
	copy(out, l.sessions)
	return out
}

func (l *TasbeehLog) persist() error {
	data, err := json.Marshal(l.sessions)
	if err != nil {
		return fmt.Errorf("failed to serialize tasbeeh history: %w", err)
	}
	if err := l.kv.Set(constants.KeyTasbeeh, string(data)); err != nil {
		return fmt.Errorf("failed to persist tasbeeh history: %w", err)
	}
	return nil
}

// Counter drives an in-progress dhikr count. A target of 0 means
// free-running (infinite): such counts are only logged on manual reset.
type Counter struct {
	log    *TasbeehLog
	label  string
	target int
	count  int
}

// NewCounter creates a counter feeding completed sessions into the log.
func NewCounter(log *TasbeehLog, label string, target int) *Counter {
	return &Counter{log: log, label: label, target: target}
}

// Count returns the current in-progress count.
func (c *Counter) Count() int { return c.count }

// Increment advances the count. When a finite target is reached the
// session is logged automatically and the count restarts from zero.
func (c *Counter) Increment() error {
	c.count++
	if c.target > 0 && c.count >= c.target {
		if _, err := c.log.LogSession(c.label, c.count); err != nil {
			return err
		}
		c.count = 0
	}
	return nil
}

// Reset clears the running count. A non-zero free-running count is logged
// as a completed session; a partial run toward a finite target is not.
func (c *Counter) Reset() error {
	if c.target == 0 && c.count > 0 {
		if _, err := c.log.LogSession(c.label, c.count); err != nil {
			return err
		}
	}
	c.count = 0
	return nil
}

// SetLabel switches the active dhikr phrase. The in-progress count resets
// without logging, except a non-zero free-running count, which logs first.
func (c *Counter) SetLabel(label string) error {
	if err := c.Reset(); err != nil {
		return err
	}
	c.label = label
	return nil
}

// SetTarget switches the target with the same reset semantics as SetLabel.
func (c *Counter) SetTarget(target int) error {
	if err := c.Reset(); err != nil {
		return err
	}
	if target < 0 {
		return fmt.Errorf("target must be zero (free-running) or positive, got %d", target)
	}
	c.target = target
	return nil
}
