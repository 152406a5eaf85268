//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

type wavePlayer struct {
	binary string
}

type unavailableWavePlayer struct{}

func newWavePlayer() WavePlayer {
	path, err := exec.LookPath("powershell")
	if err != nil {
		return unavailableWavePlayer{}
	}
	return &wavePlayer{binary: path}
}

func (player *wavePlayer) PlayCommand(path string) (*exec.Cmd, error) {
	escaped := strings.ReplaceAll(path, "'", "''")
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", escaped)
	return exec.Command(player.binary, "-NoProfile", "-NonInteractive", "-Command", script), nil
}

func (unavailableWavePlayer) PlayCommand(string) (*exec.Cmd, error) {
	return nil, ErrPlayerUnavailable
}
