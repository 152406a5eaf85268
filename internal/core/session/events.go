package session

import "time"

// Phase represents the current engine state.
type Phase string

const (
	PhaseSetup     Phase = "setup"
	PhaseBreathing Phase = "breathing"
	PhaseRetention Phase = "retention"
	PhaseRecovery  Phase = "recovery"
	PhaseRoundDone Phase = "round_done"
	PhaseComplete  Phase = "complete"
)

// Cue names an audio signal marking a phase event.
type Cue string

const (
	CueInhale          Cue = "inhale"
	CueExhale          Cue = "exhale"
	CueHoldStart       Cue = "holdStart"
	CueRecoveryIn      Cue = "recoveryIn"
	CueRoundComplete   Cue = "roundComplete"
	CueSessionComplete Cue = "sessionComplete"
	CueTick            Cue = "tick"
	CueCountdownBeep   Cue = "countdownBeep"
)

// Cues lists every cue the engine can trigger.
var Cues = []Cue{
	CueInhale,
	CueExhale,
	CueHoldStart,
	CueRecoveryIn,
	CueRoundComplete,
	CueSessionComplete,
	CueTick,
	CueCountdownBeep,
}

// EventType defines the type of engine event.
type EventType string

const (
	EventPhaseChange  EventType = "phase_change"
	EventProgress     EventType = "progress"
	EventConfigChange EventType = "config_change"
)

// Event represents an engine update for observers. Each event carries a full
// snapshot so observers never reach back into engine state.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
