package pipelined

import (
	"sync"
	"time"

	"github.com/gvc0461082002/magma/pkg/dataplane"
	"github.com/gvc0461082002/magma/pkg/sid"
)

// RuleRecord is one installed rule: the rule content plus the exact
// dataplane entries that realize it, so removal never has to recompute
// what was installed.
type RuleRecord struct {
	Subscriber  sid.SubscriberID
	Origin      Origin
	Rule        *PolicyRule
	Entries     []dataplane.FlowEntry
	InstalledAt time.Time
}

type storeKey struct {
	ruleID string
	origin Origin
}

// UpsertStatus says whether an upsert created a fresh record or replaced
// an existing one.
type UpsertStatus int

const (
	UpsertCreated UpsertStatus = iota
	UpsertUpdated
)

// UpsertResult carries the status and, for updates, the record that was
// replaced.
type UpsertResult struct {
	Status   UpsertStatus
	Previous *RuleRecord
}

// RemoveStatus distinguishes an actual removal from an idempotent no-op.
type RemoveStatus int

const (
	Removed RemoveStatus = iota
	NotFound
)

// RemoveResult carries the status and, on removal, the record that held
// the rule's installed entries.
type RemoveResult struct {
	Status RemoveStatus
	Record *RuleRecord
}

// RuleStore is the authoritative view of which rules are installed for
// which subscriber, keyed by (subscriber, rule id, origin). It is the only
// shared mutable state in the control plane; every mutation path goes
// through Upsert, Remove or RemoveAll.
type RuleStore struct {
	mu   sync.RWMutex
	subs map[sid.SubscriberID]map[storeKey]*RuleRecord
}

func NewRuleStore() *RuleStore {
	return &RuleStore{
		subs: make(map[sid.SubscriberID]map[storeKey]*RuleRecord),
	}
}

// Upsert inserts or replaces the record for (subscriber, rule id, origin).
func (s *RuleStore) Upsert(rec *RuleRecord) UpsertResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := storeKey{ruleID: rec.Rule.ID, origin: rec.Origin}
	rules := s.subs[rec.Subscriber]
	if rules == nil {
		rules = make(map[storeKey]*RuleRecord)
		s.subs[rec.Subscriber] = rules
	}

	prev, existed := rules[key]
	rules[key] = rec
	if existed {
		return UpsertResult{Status: UpsertUpdated, Previous: prev}
	}
	return UpsertResult{Status: UpsertCreated}
}

// Remove deletes one record. Removing an absent record is not an error.
func (s *RuleStore) Remove(sub sid.SubscriberID, ruleID string, origin Origin) RemoveResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	rules := s.subs[sub]
	key := storeKey{ruleID: ruleID, origin: origin}
	rec, ok := rules[key]
	if !ok {
		return RemoveResult{Status: NotFound}
	}
	delete(rules, key)
	if len(rules) == 0 {
		delete(s.subs, sub)
	}
	return RemoveResult{Status: Removed, Record: rec}
}

// RemoveAll deletes every record for the subscriber with the given origin
// and returns them for dataplane cleanup. Records of the other origin are
// untouched.
func (s *RuleStore) RemoveAll(sub sid.SubscriberID, origin Origin) []*RuleRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rules := s.subs[sub]
	var removed []*RuleRecord
	for key, rec := range rules {
		if key.origin != origin {
			continue
		}
		removed = append(removed, rec)
		delete(rules, key)
	}
	if len(rules) == 0 {
		delete(s.subs, sub)
	}
	return removed
}

// Lookup returns the record for (subscriber, rule id, origin) if present.
func (s *RuleStore) Lookup(sub sid.SubscriberID, ruleID string, origin Origin) (*RuleRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.subs[sub][storeKey{ruleID: ruleID, origin: origin}]
	return rec, ok
}

// List returns every record for the subscriber with the given origin.
func (s *RuleStore) List(sub sid.SubscriberID, origin Origin) []*RuleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*RuleRecord
	for key, rec := range s.subs[sub] {
		if key.origin == origin {
			out = append(out, rec)
		}
	}
	return out
}

// Count returns the total number of active records across all subscribers.
func (s *RuleStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rules := range s.subs {
		n += len(rules)
	}
	return n
}
