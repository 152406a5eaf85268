package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"time"
)

// StorageID names the application's on-disk footprint: the config and
// cache directories and the instance port are all derived from it.
// Changing it orphans existing user data.
const StorageID = "Tummo"

// ErrAlreadyRunning indicates a live instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const liveHolderTimeout = 250 * time.Millisecond

// InstanceGuard holds the single-instance lock. Two running copies would
// fight over the audio device and the history file, so startup refuses a
// second instance.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// AcquireSingleInstance binds the localhost port derived from StorageID.
// ErrAlreadyRunning is returned only when a live holder answers on the
// port; any other bind failure is reported as-is so a misconfigured
// stack does not masquerade as a running instance.
func AcquireSingleInstance() (*InstanceGuard, error) {
	return acquireGuard(StorageID)
}

func acquireGuard(name string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", portFromName(name))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		if conn, dialErr := net.DialTimeout("tcp", address, liveHolderTimeout); dialErr == nil {
			_ = conn.Close()
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("bind instance port %s: %w", address, err)
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func portFromName(name string) int {
	const (
		minPort = 41000
		maxPort = 48999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(name))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
