package session

import (
	"time"

	"tummo/internal/core/history"
	"tummo/internal/core/model"
)

// Snapshot is the read-only view the engine exposes for rendering. Slices
// and the aggregate are copies; observers can hold them freely.
type Snapshot struct {
	Phase             Phase
	Config            model.SessionConfig
	CurrentRound      int
	BreathCount       int
	IsInhale          bool
	RetentionTime     int
	RecoveryCountdown int
	RoundRetentions   []int
	SessionStart      time.Time
	Data              history.AppData

	// Derived from Data at snapshot time.
	Streak        int
	TodaySessions int
	TotalSessions int
	BestRetention int
}

func (engine *Engine) snapshotLocked() Snapshot {
	now := engine.scheduler.Now()
	data := history.AppData{Sessions: append([]history.SessionRecord(nil), engine.appData.Sessions...)}
	return Snapshot{
		Phase:             engine.phase,
		Config:            engine.config,
		CurrentRound:      engine.currentRound,
		BreathCount:       engine.breathCount,
		IsInhale:          engine.isInhale,
		RetentionTime:     engine.retentionTime,
		RecoveryCountdown: engine.recoveryCountdown,
		RoundRetentions:   append([]int(nil), engine.roundRetentions...),
		SessionStart:      engine.sessionStart,
		Data:              data,
		Streak:            data.Streak(now),
		TodaySessions:     len(data.SessionsOn(now)),
		TotalSessions:     data.TotalSessions(),
		BestRetention:     data.BestRetentionSeconds(),
	}
}
