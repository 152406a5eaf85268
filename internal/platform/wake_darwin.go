//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

type commandWakeLock struct {
	cmd *exec.Cmd
}

func acquireWakeLock(appName string) (WakeLock, error) {
	path, err := exec.LookPath("caffeinate")
	if err != nil {
		return nil, ErrWakeUnsupported
	}

	cmd := exec.Command(path, "-di")
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start caffeinate: %w", err)
	}
	return &commandWakeLock{cmd: cmd}, nil
}

func (lock *commandWakeLock) Release() error {
	if lock == nil || lock.cmd == nil || lock.cmd.Process == nil {
		return nil
	}
	if err := lock.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("stop caffeinate: %w", err)
	}
	_ = lock.cmd.Wait()
	lock.cmd = nil
	return nil
}
