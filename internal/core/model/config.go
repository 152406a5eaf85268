package model

import "time"

// Session parameter bounds. Rounds and breaths are clamped on every write so
// the engine never sees an out-of-range configuration.
const (
	MinRounds = 1
	MaxRounds = 10

	MinBreathsPerRound  = 20
	MaxBreathsPerRound  = 60
	BreathsPerRoundStep = 5
)

// SessionConfig contains the user-chosen parameters for one session.
// Immutable once a session starts; editable only in the setup phase.
type SessionConfig struct {
	Rounds          int
	BreathsPerRound int
	Volume          float64
}

// DefaultSessionConfig returns the out-of-the-box session parameters.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Rounds:          3,
		BreathsPerRound: 30,
		Volume:          0.8,
	}
}

// ClampRounds bounds a round count to the valid range.
func ClampRounds(rounds int) int {
	if rounds < MinRounds {
		return MinRounds
	}
	if rounds > MaxRounds {
		return MaxRounds
	}
	return rounds
}

// ClampBreathsPerRound bounds a breath count to the valid range and snaps it
// to the nearest step of 5.
func ClampBreathsPerRound(breaths int) int {
	if breaths < MinBreathsPerRound {
		return MinBreathsPerRound
	}
	if breaths > MaxBreathsPerRound {
		return MaxBreathsPerRound
	}
	remainder := breaths % BreathsPerRoundStep
	if remainder == 0 {
		return breaths
	}
	if remainder*2 >= BreathsPerRoundStep {
		return breaths + BreathsPerRoundStep - remainder
	}
	return breaths - remainder
}

// ClampVolume bounds a cue volume hint to [0,1].
func ClampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}

// Timings contains the phase timing constants for the session engine.
type Timings struct {
	// LeadIn delays the first breath cycle after entering the breathing
	// phase so the view has time to settle.
	LeadIn time.Duration
	// CyclePeriod is the fixed period between breath-cycle starts.
	CyclePeriod time.Duration
	// InhaleToExhale is the offset of the exhale half-cycle within a cycle.
	InhaleToExhale time.Duration
	// PreRetentionPause separates the final exhale from the retention phase.
	PreRetentionPause time.Duration
	// RetentionCueEvery is the spacing of the passive progress cue during
	// retention.
	RetentionCueEvery time.Duration
	// RecoverySeconds is the fixed length of the recovery hold.
	RecoverySeconds int
	// RecoveryBeepFrom is the highest remaining count that triggers a
	// countdown beep; beeps fire at RecoveryBeepFrom..1.
	RecoveryBeepFrom int
	// PostRecoveryPause separates the end of recovery from the round-done
	// phase.
	PostRecoveryPause time.Duration
}

// DefaultTimings returns the standard phase timing constants.
func DefaultTimings() Timings {
	return Timings{
		LeadIn:            300 * time.Millisecond,
		CyclePeriod:       4000 * time.Millisecond,
		InhaleToExhale:    2000 * time.Millisecond,
		PreRetentionPause: 800 * time.Millisecond,
		RetentionCueEvery: 60 * time.Second,
		RecoverySeconds:   15,
		RecoveryBeepFrom:  4,
		PostRecoveryPause: 300 * time.Millisecond,
	}
}
