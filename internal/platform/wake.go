package platform

import "errors"

// ErrWakeUnsupported indicates screen wake locking is not available on this
// system.
var ErrWakeUnsupported = errors.New("wake lock unsupported")

// WakeLock keeps the screen awake while held.
type WakeLock interface {
	// Release drops the lock. Safe to call more than once.
	Release() error
}

// AcquireWakeLock keeps the screen awake until the returned lock is
// released. Used for the lifetime of an active session so the display does
// not blank mid-exercise.
func AcquireWakeLock(appName string) (WakeLock, error) {
	return acquireWakeLock(appName)
}
