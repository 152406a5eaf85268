//go:build darwin

package platform

import (
	"os/exec"
)

type wavePlayer struct {
	binary string
}

type unavailableWavePlayer struct{}

func newWavePlayer() WavePlayer {
	path, err := exec.LookPath("afplay")
	if err != nil {
		return unavailableWavePlayer{}
	}
	return &wavePlayer{binary: path}
}

func (player *wavePlayer) PlayCommand(path string) (*exec.Cmd, error) {
	return exec.Command(player.binary, path), nil
}

func (unavailableWavePlayer) PlayCommand(string) (*exec.Cmd, error) {
	return nil, ErrPlayerUnavailable
}
