package pipeline

import (
	"fmt"

	"github.com/gofrs/flock"
)

// AcquireLock takes an exclusive lock on the data dir so two stage
// invocations can't interleave writes to the same files. Non-blocking:
// a held lock is an immediate error, matching run-to-completion stages.
func AcquireLock(p Paths) (*flock.Flock, error) {
	fl := flock.New(p.LockFile())
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", p.LockFile(), err)
	}
	if !ok {
		return nil, fmt.Errorf("another stage is running (lock held on %s)", p.LockFile())
	}
	return fl, nil
}
