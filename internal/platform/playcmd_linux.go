//go:build linux

package platform

import (
	"os/exec"
)

type wavePlayer struct {
	binary string
	args   []string
}

type unavailableWavePlayer struct{}

func newWavePlayer() WavePlayer {
	// Pulse first, then ALSA, then ffplay as a last resort.
	candidates := []struct {
		binary string
		args   []string
	}{
		{binary: "paplay"},
		{binary: "aplay", args: []string{"-q"}},
		{binary: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	}
	for _, candidate := range candidates {
		path, err := exec.LookPath(candidate.binary)
		if err != nil {
			continue
		}
		return &wavePlayer{binary: path, args: candidate.args}
	}
	return unavailableWavePlayer{}
}

func (player *wavePlayer) PlayCommand(path string) (*exec.Cmd, error) {
	args := append(append([]string(nil), player.args...), path)
	return exec.Command(player.binary, args...), nil
}

func (unavailableWavePlayer) PlayCommand(string) (*exec.Cmd, error) {
	return nil, ErrPlayerUnavailable
}
