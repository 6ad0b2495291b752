package domain

import "sync"

// nameLocks is the advisory lock table keyed by network name. A lock
// is held for the duration of one mutating operation, so each name
// carries at most one in-flight create or delete. Suitable for a
// single-instance deployment; multi-instance deployments rely on the
// store's conditional writes instead.
type nameLocks struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func newNameLocks() *nameLocks {
	return &nameLocks{held: make(map[string]struct{})}
}

// acquire reports whether the lock was taken. It never blocks: a
// second mutation on a busy name is rejected, not queued.
func (l *nameLocks) acquire(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.held[name]; busy {
		return false
	}
	l.held[name] = struct{}{}
	return true
}

func (l *nameLocks) release(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, name)
}
