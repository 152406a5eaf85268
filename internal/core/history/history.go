package history

import "time"

// DateLayout is the calendar-day key used by SessionRecord.Date.
const DateLayout = "2006-01-02"

// SessionRecord is the immutable record of one finished session.
type SessionRecord struct {
	Date            string `yaml:"date"`
	Rounds          int    `yaml:"rounds"`
	BreathsPerRound int    `yaml:"breaths_per_round"`
	Retentions      []int  `yaml:"retentions"`
	DurationSeconds int    `yaml:"duration_seconds"`
	Timestamp       int64  `yaml:"timestamp"`
}

// AppData is the persisted aggregate of completed sessions, in completion
// order. The engine only ever appends to it.
type AppData struct {
	Sessions []SessionRecord `yaml:"sessions"`
}

// Append returns a copy of the aggregate with one more record. The receiver
// is left untouched so snapshots handed to observers stay stable.
func (data AppData) Append(record SessionRecord) AppData {
	sessions := make([]SessionRecord, 0, len(data.Sessions)+1)
	sessions = append(sessions, data.Sessions...)
	sessions = append(sessions, record)
	return AppData{Sessions: sessions}
}

// TotalSessions returns the count of all recorded sessions.
func (data AppData) TotalSessions() int {
	return len(data.Sessions)
}

// SessionsOn returns the records completed on the given calendar day.
func (data AppData) SessionsOn(day time.Time) []SessionRecord {
	key := DateKey(day)
	var matched []SessionRecord
	for _, record := range data.Sessions {
		if record.Date == key {
			matched = append(matched, record)
		}
	}
	return matched
}

// BestRetentionSeconds returns the longest recorded retention, 0 if none.
func (data AppData) BestRetentionSeconds() int {
	best := 0
	for _, record := range data.Sessions {
		for _, retention := range record.Retentions {
			if retention > best {
				best = retention
			}
		}
	}
	return best
}

// Streak counts consecutive calendar days with at least one session,
// anchored at the given day or the day before it. A gap of more than one
// day breaks the chain; if neither today nor yesterday has a session the
// streak is 0. Derived purely from the aggregate, never stored.
func (data AppData) Streak(today time.Time) int {
	days := map[string]bool{}
	for _, record := range data.Sessions {
		days[record.Date] = true
	}
	if len(days) == 0 {
		return 0
	}

	anchor := startOfDay(today)
	if !days[DateKey(anchor)] {
		anchor = anchor.AddDate(0, 0, -1)
		if !days[DateKey(anchor)] {
			return 0
		}
	}

	streak := 0
	for day := anchor; days[DateKey(day)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// DateKey formats a moment as its local calendar-day key.
func DateKey(moment time.Time) string {
	return moment.Format(DateLayout)
}

func startOfDay(moment time.Time) time.Time {
	year, month, day := moment.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, moment.Location())
}
