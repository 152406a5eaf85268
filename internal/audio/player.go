package audio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"tummo/internal/core/session"
	"tummo/internal/platform"
)

// Player renders cue tones to small WAV files under the user cache directory
// and plays them through the OS player. It satisfies the engine's CuePlayer
// contract: unlock is idempotent, playback is fire-and-forget, every failure
// is logged and swallowed.
type Player struct {
	mu       sync.Mutex
	wave     platform.WavePlayer
	appName  string
	dir      string
	unlocked bool
	// rendered tracks the volume each cue file was last written at, so a
	// volume change re-renders lazily.
	rendered map[session.Cue]float64
}

// NewPlayer creates a cue player for the named application.
func NewPlayer(appName string) *Player {
	return &Player{
		wave:     platform.NewWavePlayer(),
		appName:  appName,
		rendered: map[session.Cue]float64{},
	}
}

// Unlock prepares the cue files. Called from user-gesture paths before any
// cue is expected to play; repeat calls are cheap no-ops.
func (player *Player) Unlock() {
	player.mu.Lock()
	defer player.mu.Unlock()
	if player.unlocked {
		return
	}
	if err := player.prepareDirLocked(); err != nil {
		log.Printf("unlock cue player: %v", err)
		return
	}
	player.unlocked = true
}

// Play triggers a cue at the given volume and reports whether it was
// dispatched. It never blocks on playback.
func (player *Player) Play(cue session.Cue, volume float64) bool {
	player.mu.Lock()
	defer player.mu.Unlock()

	if !player.unlocked {
		if err := player.prepareDirLocked(); err != nil {
			return false
		}
		player.unlocked = true
	}

	path, err := player.ensureRenderedLocked(cue, volume)
	if err != nil {
		log.Printf("render cue %s: %v", cue, err)
		return false
	}

	cmd, err := player.wave.PlayCommand(path)
	if err != nil {
		return false
	}
	go func() {
		if err := cmd.Run(); err != nil {
			log.Printf("play cue %s: %v", cue, err)
		}
	}()
	return true
}

func (player *Player) prepareDirLocked() error {
	if player.dir != "" {
		return nil
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return fmt.Errorf("resolve user cache dir: %w", err)
	}
	dir := filepath.Join(cacheDir, player.appName, "cues")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cue directory: %w", err)
	}
	player.dir = dir
	return nil
}

func (player *Player) ensureRenderedLocked(cue session.Cue, volume float64) (string, error) {
	path := filepath.Join(player.dir, string(cue)+".wav")
	if last, ok := player.rendered[cue]; ok && closeEnough(last, volume) {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	if err := os.WriteFile(path, renderCue(cue, volume), 0o644); err != nil {
		return "", fmt.Errorf("write cue file: %w", err)
	}
	player.rendered[cue] = volume
	return path, nil
}

func closeEnough(a, b float64) bool {
	diff := a - b
	return diff < 0.01 && diff > -0.01
}
