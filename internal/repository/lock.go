package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
)

const (
	// LockTimeout defines the maximum time to wait for the tag lock
	LockTimeout = 30 * time.Second
	// LockRetryInterval defines the interval between lock retry attempts
	LockRetryInterval = 100 * time.Millisecond
)

// tagLock serialises tag creation between processes sharing a checkout.
type tagLock struct {
	lock *flock.Flock
}

func newTagLock(path string) *tagLock {
	return &tagLock{lock: flock.New(path)}
}

// Acquire takes the exclusive lock, giving up after LockTimeout or when ctx is done.
func (l *tagLock) Acquire(ctx context.Context) error {
	lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	ticker := time.NewTicker(LockRetryInterval)
	defer ticker.Stop()
	for {
		locked, err := l.lock.TryLock()
		if err != nil {
			return fmt.Errorf("failed to acquire tag lock %s: %w", l.lock.Path(), err)
		}
		if locked {
			return nil
		}
		select {
		case <-lockCtx.Done():
			return fmt.Errorf("could not acquire tag lock %s: %w", l.lock.Path(), lockCtx.Err())
		case <-ticker.C:
		}
	}
}

// Release unlocks the file. The file itself stays in place so that a
// waiting process never locks an unlinked inode.
func (l *tagLock) Release() {
	if err := l.lock.Unlock(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to unlock file: %v\n", err)
	}
}
