package usecase

import (
	"context"
	"fmt"
	"sync"
)

// SessionLocker serializes runs on one conversation. Two requests naming
// the same context id never append to its transcript at the same time.
type SessionLocker struct {
	mu    sync.Mutex
	locks map[string]*sessionSlot
}

type sessionSlot struct {
	held     chan struct{}
	refCount int
}

// NewSessionLocker creates a new session locker.
func NewSessionLocker() *SessionLocker {
	return &SessionLocker{locks: make(map[string]*sessionSlot)}
}

// Lock blocks until key is free or ctx is done. The returned unlock must be
// called exactly once.
func (sl *SessionLocker) Lock(ctx context.Context, key string) (unlock func(), err error) {
	sl.mu.Lock()
	slot, ok := sl.locks[key]
	if !ok {
		slot = &sessionSlot{held: make(chan struct{}, 1)}
		sl.locks[key] = slot
	}
	slot.refCount++
	sl.mu.Unlock()

	select {
	case slot.held <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-slot.held
				sl.release(key, slot)
			})
		}, nil
	case <-ctx.Done():
		sl.release(key, slot)
		return nil, fmt.Errorf("session lock %s: %w", key, ctx.Err())
	}
}

func (sl *SessionLocker) release(key string, slot *sessionSlot) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	slot.refCount--
	if slot.refCount == 0 {
		delete(sl.locks, key)
	}
}

// ActiveCount returns the number of keys with a held or pending lock.
func (sl *SessionLocker) ActiveCount() int {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return len(sl.locks)
}
