//go:build linux

package platform

import (
	"fmt"
	"os/exec"
)

// commandWakeLock holds a child process whose presence inhibits idle; killing
// it drops the inhibition.
type commandWakeLock struct {
	cmd *exec.Cmd
}

func acquireWakeLock(appName string) (WakeLock, error) {
	path, err := exec.LookPath("systemd-inhibit")
	if err != nil {
		return nil, ErrWakeUnsupported
	}

	cmd := exec.Command(path,
		"--what=idle",
		"--who="+appName,
		"--why=breathing session in progress",
		"--mode=block",
		"sleep", "infinity",
	)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start inhibitor: %w", err)
	}
	return &commandWakeLock{cmd: cmd}, nil
}

func (lock *commandWakeLock) Release() error {
	if lock == nil || lock.cmd == nil || lock.cmd.Process == nil {
		return nil
	}
	if err := lock.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("stop inhibitor: %w", err)
	}
	_ = lock.cmd.Wait()
	lock.cmd = nil
	return nil
}
