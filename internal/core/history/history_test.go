package history

import (
	"testing"
	"time"
)

func record(day time.Time) SessionRecord {
	return SessionRecord{
		Date:            DateKey(day),
		Rounds:          3,
		BreathsPerRound: 30,
		Retentions:      []int{45, 60, 75},
		DurationSeconds: 600,
		Timestamp:       day.UnixMilli(),
	}
}

func TestStreakCountsConsecutiveDays(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 8, 29, 21, 30, 0, 0, time.Local)

	var data AppData
	for _, daysAgo := range []int{0, 1, 2} {
		data = data.Append(record(today.AddDate(0, 0, -daysAgo)))
	}
	if got := data.Streak(today); got != 3 {
		t.Fatalf("sessions on today..today-2: expected streak 3, got %d", got)
	}
}

func TestStreakAnchorsAtTodayOrYesterday(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 8, 29, 7, 0, 0, 0, time.Local)

	// Most recent session the day before yesterday: chain is broken.
	var stale AppData
	stale = stale.Append(record(today.AddDate(0, 0, -2)))
	stale = stale.Append(record(today.AddDate(0, 0, -3)))
	if got := stale.Streak(today); got != 0 {
		t.Fatalf("stale history: expected streak 0, got %d", got)
	}

	// Yesterday anchors just as well as today.
	var yesterday AppData
	yesterday = yesterday.Append(record(today.AddDate(0, 0, -1)))
	if got := yesterday.Streak(today); got != 1 {
		t.Fatalf("yesterday only: expected streak 1, got %d", got)
	}
}

func TestStreakBreaksOnGap(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)

	var data AppData
	data = data.Append(record(today))
	data = data.Append(record(today.AddDate(0, 0, -2)))
	if got := data.Streak(today); got != 1 {
		t.Fatalf("gap at yesterday: expected streak 1, got %d", got)
	}
}

func TestStreakEmptyHistory(t *testing.T) {
	t.Parallel()
	var data AppData
	if got := data.Streak(time.Now()); got != 0 {
		t.Fatalf("empty history: expected streak 0, got %d", got)
	}
}

func TestStreakDedupesSameDay(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 8, 29, 18, 0, 0, 0, time.Local)

	var data AppData
	data = data.Append(record(today))
	data = data.Append(record(today))
	data = data.Append(record(today.AddDate(0, 0, -1)))
	if got := data.Streak(today); got != 2 {
		t.Fatalf("duplicate days: expected streak 2, got %d", got)
	}
}

func TestSessionsOnAndTotals(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 8, 29, 9, 15, 0, 0, time.Local)

	var data AppData
	data = data.Append(record(today))
	data = data.Append(record(today))
	data = data.Append(record(today.AddDate(0, 0, -1)))

	if got := len(data.SessionsOn(today)); got != 2 {
		t.Fatalf("expected 2 sessions today, got %d", got)
	}
	if got := data.TotalSessions(); got != 3 {
		t.Fatalf("expected 3 total sessions, got %d", got)
	}
	if got := data.BestRetentionSeconds(); got != 75 {
		t.Fatalf("expected best retention 75, got %d", got)
	}
}

func TestAppendLeavesReceiverUntouched(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 8, 29, 9, 15, 0, 0, time.Local)

	original := AppData{}.Append(record(day))
	extended := original.Append(record(day))
	if len(original.Sessions) != 1 {
		t.Fatalf("append mutated the receiver: %d sessions", len(original.Sessions))
	}
	if len(extended.Sessions) != 2 {
		t.Fatalf("expected 2 sessions after append, got %d", len(extended.Sessions))
	}
}
