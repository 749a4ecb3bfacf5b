// Package concurrency provides in-process named locks. The raid path
// uses them to serialize a user's attempts within one instance; cross
// instance safety comes from the database layer.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Locks are never evicted;
// the key space (active users) is small enough that this is fine.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
