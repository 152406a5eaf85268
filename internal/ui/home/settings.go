package home

import (
	"tummo/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Rounds          int
	BreathsPerRound int
	Volume          float64
	KeepAwake       bool
}

// DefaultSettings returns default settings for Tummo.
func DefaultSettings() Settings {
	config := model.DefaultSessionConfig()
	return Settings{
		Rounds:          config.Rounds,
		BreathsPerRound: config.BreathsPerRound,
		Volume:          config.Volume,
		KeepAwake:       true,
	}
}

// Normalized returns the settings with every field clamped to its valid
// range.
func (settings Settings) Normalized() Settings {
	settings.Rounds = model.ClampRounds(settings.Rounds)
	settings.BreathsPerRound = model.ClampBreathsPerRound(settings.BreathsPerRound)
	settings.Volume = model.ClampVolume(settings.Volume)
	return settings
}

// SessionConfig converts settings to a SessionConfig.
func (settings Settings) SessionConfig() model.SessionConfig {
	normalized := settings.Normalized()
	return model.SessionConfig{
		Rounds:          normalized.Rounds,
		BreathsPerRound: normalized.BreathsPerRound,
		Volume:          normalized.Volume,
	}
}
