package pipelined

import (
	"sync"

	"github.com/gvc0461082002/magma/pkg/sid"
)

// subscriberLocks serializes mutating operations per subscriber. Different
// subscribers lock independent entries and proceed in parallel; entries are
// reference counted so the map does not grow with churn.
type subscriberLocks struct {
	mu      sync.Mutex
	entries map[sid.SubscriberID]*subLock
}

type subLock struct {
	mu   sync.Mutex
	refs int
}

func newSubscriberLocks() *subscriberLocks {
	return &subscriberLocks{entries: make(map[sid.SubscriberID]*subLock)}
}

func (l *subscriberLocks) lock(sub sid.SubscriberID) {
	l.mu.Lock()
	entry := l.entries[sub]
	if entry == nil {
		entry = &subLock{}
		l.entries[sub] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

func (l *subscriberLocks) unlock(sub sid.SubscriberID) {
	l.mu.Lock()
	entry := l.entries[sub]
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, sub)
	}
	l.mu.Unlock()

	entry.mu.Unlock()
}
