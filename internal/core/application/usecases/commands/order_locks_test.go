package commands_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestOrderLocks_SerializesSameOrder(t *testing.T) {
	locks := commands.NewOrderLocks()
	id := kernel.NewUUID()
	var inside, maxInside atomic.Int32

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(id)
			defer unlock()

			n := inside.Add(1)
			if n > maxInside.Load() {
				maxInside.Store(n)
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
}

func TestOrderLocks_DifferentOrdersRunInParallel(t *testing.T) {
	locks := commands.NewOrderLocks()
	unlockA := locks.Lock(kernel.NewUUID())
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock(kernel.NewUUID())
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different order blocked")
	}
}

func TestOrderLocks_LockAllWaitsForHolders(t *testing.T) {
	locks := commands.NewOrderLocks()
	unlock := locks.Lock(kernel.NewUUID())

	acquired := make(chan struct{})
	go func() {
		release := locks.LockAll()
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("LockAll acquired while an order lock was held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("LockAll never acquired")
	}
}
