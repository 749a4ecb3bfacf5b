package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()

	assert.Same(t, lm.GetLock("user-1"), lm.GetLock("user-1"))
	assert.NotSame(t, lm.GetLock("user-1"), lm.GetLock("user-2"))
}

func TestGetLock_SerializesCriticalSection(t *testing.T) {
	lm := NewLockManager()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock := lm.GetLock("shared")
			lock.Lock()
			counter++
			lock.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
