package platform

import (
	"errors"
	"os/exec"
)

// ErrPlayerUnavailable indicates no audio player command was found on this
// system.
var ErrPlayerUnavailable = errors.New("audio player unavailable")

// WavePlayer builds commands that play a WAV file through whatever player
// the OS provides.
type WavePlayer interface {
	// PlayCommand returns a command that plays the file at path once.
	PlayCommand(path string) (*exec.Cmd, error)
}

// NewWavePlayer returns a platform-specific WAV player.
func NewWavePlayer() WavePlayer {
	return newWavePlayer()
}
