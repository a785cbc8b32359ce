package commands

import (
	"sync"

	"production/internal/core/domain/model/kernel"
)

// OrderLocks serializes commands touching the same order while letting commands
// on different orders run in parallel. LockAll excludes every per-order holder and
// is used when the whole calendar is rebuilt.
type OrderLocks struct {
	global sync.RWMutex

	mu    sync.Mutex
	locks map[kernel.UUID]*orderLock
}

type orderLock struct {
	mu   sync.Mutex
	refs int
}

func NewOrderLocks() *OrderLocks {
	return &OrderLocks{locks: make(map[kernel.UUID]*orderLock)}
}

// Lock blocks until the caller owns id and returns the release function.
func (l *OrderLocks) Lock(id kernel.UUID) (unlock func()) {
	l.global.RLock()

	l.mu.Lock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &orderLock{}
		l.locks[id] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()

		l.global.RUnlock()
	}
}

// LockAll waits for every per-order holder to finish and blocks new ones.
func (l *OrderLocks) LockAll() (unlock func()) {
	l.global.Lock()
	return l.global.Unlock
}
