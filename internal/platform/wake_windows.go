//go:build windows

package platform

func acquireWakeLock(string) (WakeLock, error) {
	return nil, ErrWakeUnsupported
}
