package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/noorjournal/noor/internal/constants"
)

func newTestLog(t *testing.T) *TasbeehLog {
	t.Helper()
	log, err := NewTasbeehLog(newMemKV())
	if err != nil {
		t.Fatalf("NewTasbeehLog: %v", err)
	}
	log.now = func() time.Time {
		return time.Date(2024, 3, 1, 21, 15, 0, 0, time.UTC)
	}
	return log
}

func TestTasbeehLogCap(t *testing.T) {
	log := newTestLog(t)
	for i := 0; i < constants.MaxTasbeehSessions+1; i++ {
		if _, err := log.LogSession(fmt.Sprintf("dhikr-%d", i), 33); err != nil {
			t.Fatalf("LogSession %d: %v", i, err)
		}
	}

	sessions := log.Sessions()
	if len(sessions) != constants.MaxTasbeehSessions {
		t.Fatalf("expected cap of %d sessions, got %d", constants.MaxTasbeehSessions, len(sessions))
	}
	// Newest first; the oldest session fell off the end.
	if sessions[0].Label != fmt.Sprintf("dhikr-%d", constants.MaxTasbeehSessions) {
		t.Errorf("newest session should be first, got %q", sessions[0].Label)
	}
	for _, s := range sessions {
		if s.Label == "dhikr-0" {
			t.Error("oldest session should have been evicted")
		}
	}
}

func TestTasbeehLogSessionFields(t *testing.T) {
	log := newTestLog(t)
	session, err := log.LogSession("SubhanAllah", 33)
	if err != nil {
		t.Fatalf("LogSession: %v", err)
	}
	if session.ID == "" {
		t.Error("session should carry an id")
	}
	if session.ISODate != "2024-03-01" {
		t.Errorf("expected ISO date 2024-03-01, got %q", session.ISODate)
	}
	if session.Timestamp != "Mar 1, 2024 9:15 PM" {
		t.Errorf("unexpected display timestamp %q", session.Timestamp)
	}
}

func TestTasbeehLogPersistence(t *testing.T) {
	kv := newMemKV()
	log, _ := NewTasbeehLog(kv)
	if _, err := log.LogSession("Alhamdulillah", 100); err != nil {
		t.Fatalf("LogSession: %v", err)
	}

	reopened, err := NewTasbeehLog(kv)
	if err != nil {
		t.Fatalf("NewTasbeehLog (reopen): %v", err)
	}
	sessions := reopened.Sessions()
	if len(sessions) != 1 || sessions[0].Label != "Alhamdulillah" {
		t.Errorf("expected persisted session, got %+v", sessions)
	}
}

func TestTasbeehLogCorruptBlobStartsFresh(t *testing.T) {
	kv := newMemKV()
	kv.values[constants.KeyTasbeeh] = "[broken"
	log, err := NewTasbeehLog(kv)
	if err != nil {
		t.Fatalf("NewTasbeehLog: %v", err)
	}
	if len(log.Sessions()) != 0 {
		t.Error("corrupt history should load as empty")
	}
}

func TestCounterFiniteTarget(t *testing.T) {
	log := newTestLog(t)
	counter := NewCounter(log, "SubhanAllah", 3)

	for i := 1; i <= 2; i++ {
		if err := counter.Increment(); err != nil {
			t.Fatalf("Increment: %v", err)
		}
		if counter.Count() != i {
			t.Fatalf("expected count %d, got %d", i, counter.Count())
		}
	}
	if len(log.Sessions()) != 0 {
		t.Fatal("no session should be logged before the target")
	}

	// Reaching the target logs and wraps to zero.
	if err := counter.Increment(); err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if counter.Count() != 0 {
		t.Errorf("count should reset at target, got %d", counter.Count())
	}
	sessions := log.Sessions()
	if len(sessions) != 1 || sessions[0].Count != 3 || sessions[0].Label != "SubhanAllah" {
		t.Errorf("expected one session of 3, got %+v", sessions)
	}
}

func TestCounterFiniteResetDiscards(t *testing.T) {
	log := newTestLog(t)
	counter := NewCounter(log, "SubhanAllah", 33)
	for i := 0; i < 10; i++ {
		if err := counter.Increment(); err != nil {
			t.Fatalf("Increment: %v", err)
		}
	}
	if err := counter.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if counter.Count() != 0 {
		t.Errorf("expected zero after reset, got %d", counter.Count())
	}
	if len(log.Sessions()) != 0 {
		t.Error("partial run toward a finite target must not be logged")
	}
}

func TestCounterFreeRunningResetLogs(t *testing.T) {
	log := newTestLog(t)
	counter := NewCounter(log, "Astaghfirullah", 0)
	for i := 0; i < 7; i++ {
		if err := counter.Increment(); err != nil {
			t.Fatalf("Increment: %v", err)
		}
	}
	if err := counter.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	sessions := log.Sessions()
	if len(sessions) != 1 || sessions[0].Count != 7 {
		t.Fatalf("expected free-running reset to log 7, got %+v", sessions)
	}

	// Resetting an already-zero count logs nothing.
	if err := counter.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(log.Sessions()) != 1 {
		t.Error("zero-count reset must not log")
	}
}

func TestCounterSetLabelAndTarget(t *testing.T) {
	log := newTestLog(t)
	counter := NewCounter(log, "Astaghfirullah", 0)
	for i := 0; i < 5; i++ {
		if err := counter.Increment(); err != nil {
			t.Fatalf("Increment: %v", err)
		}
	}

	// Switching label logs the in-flight free-running count first.
	if err := counter.SetLabel("SubhanAllah"); err != nil {
		t.Fatalf("SetLabel: %v", err)
	}
	sessions := log.Sessions()
	if len(sessions) != 1 || sessions[0].Label != "Astaghfirullah" || sessions[0].Count != 5 {
		t.Fatalf("expected prior count logged under old label, got %+v", sessions)
	}
	if counter.Count() != 0 {
		t.Errorf("count should reset on label switch, got %d", counter.Count())
	}

	if err := counter.SetTarget(-1); err == nil {
		t.Error("negative target should be rejected")
	}
	if err := counter.SetTarget(33); err != nil {
		t.Fatalf("SetTarget: %v", err)
	}
}
