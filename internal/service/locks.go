package service

import "sync"

// GroupLocks serializes plan and session writes per group. Entries are
// reference counted and dropped once the last holder releases them.
type GroupLocks struct {
	mu    sync.Mutex
	locks map[string]*groupLock
}

type groupLock struct {
	mu   sync.Mutex
	refs int
}

func NewGroupLocks() *GroupLocks {
	return &GroupLocks{locks: make(map[string]*groupLock)}
}

// Lock blocks until the caller holds groupID's lock and returns the release
// function.
func (l *GroupLocks) Lock(groupID string) func() {
	l.mu.Lock()
	gl, ok := l.locks[groupID]
	if !ok {
		gl = &groupLock{}
		l.locks[groupID] = gl
	}
	gl.refs++
	l.mu.Unlock()

	gl.mu.Lock()
	return func() {
		gl.mu.Unlock()
		l.mu.Lock()
		gl.refs--
		if gl.refs == 0 {
			delete(l.locks, groupID)
		}
		l.mu.Unlock()
	}
}

func (l *GroupLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
