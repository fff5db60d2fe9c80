package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/gvc0461082002/magma/pkg/dataplane"
)

// MockDataplane keeps installed entries in per-table maps. It backs unit
// tests and the examples; it also supports injecting a failure for the next
// N calls to exercise transient-error paths.
type MockDataplane struct {
	tables   map[uint64]map[string]dataplane.FlowEntry
	installs int
	removes  int
	failErr  error
	failLeft int
	mu       sync.RWMutex
	log      *logrus.Entry
}

func NewMockDataplane() *MockDataplane {
	return &MockDataplane{
		tables: make(map[uint64]map[string]dataplane.FlowEntry),
		log:    logrus.WithField("component", "mock_dataplane"),
	}
}

// FailNext makes the next n dataplane calls return err.
func (m *MockDataplane) FailNext(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failLeft = n
	m.failErr = err
}

func (m *MockDataplane) takeFailure() error {
	if m.failLeft > 0 {
		m.failLeft--
		return m.failErr
	}
	return nil
}

func (m *MockDataplane) InstallFlow(ctx context.Context, entry dataplane.FlowEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeFailure(); err != nil {
		return err
	}

	if m.tables[entry.Table] == nil {
		m.tables[entry.Table] = make(map[string]dataplane.FlowEntry)
	}

	m.tables[entry.Table][entry.Selector().Key()] = entry
	m.installs++
	m.log.WithFields(logrus.Fields{
		"table":    entry.Table,
		"priority": entry.Priority,
		"match":    entry.Match.Key(),
		"action":   entry.Action.String(),
	}).Debug("installed flow")

	return nil
}

func (m *MockDataplane) RemoveFlow(ctx context.Context, sel dataplane.FlowSelector) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeFailure(); err != nil {
		return err
	}

	if m.tables[sel.Table] != nil {
		delete(m.tables[sel.Table], sel.Key())
	}
	m.removes++
	m.log.WithFields(logrus.Fields{
		"table": sel.Table,
		"flow":  sel.Key(),
	}).Debug("removed flow")

	return nil
}

func (m *MockDataplane) DumpFlows(ctx context.Context, table int64) ([]dataplane.RawFlow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeFailure(); err != nil {
		return nil, err
	}

	var flows []dataplane.RawFlow
	for tbl, entries := range m.tables {
		if table != dataplane.AllTables && uint64(table) != tbl {
			continue
		}
		for _, entry := range entries {
			flows = append(flows, dataplane.RawFlow{
				Table:    tbl,
				Priority: entry.Priority,
				Text: fmt.Sprintf("priority=%d,%s actions=%s",
					entry.Priority, entry.Match.Key(), entry.Action.String()),
			})
		}
	}
	return flows, nil
}

// Entries returns a copy of the entries installed in one table.
func (m *MockDataplane) Entries(table uint64) []dataplane.FlowEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]dataplane.FlowEntry, 0, len(m.tables[table]))
	for _, entry := range m.tables[table] {
		entries = append(entries, entry)
	}
	return entries
}

// HasFlow reports whether an entry matching sel is installed.
func (m *MockDataplane) HasFlow(sel dataplane.FlowSelector) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.tables[sel.Table] == nil {
		return false
	}
	_, ok := m.tables[sel.Table][sel.Key()]
	return ok
}

// InstallCount returns how many installs reached the dataplane. Idempotent
// re-activations must not increase it.
func (m *MockDataplane) InstallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.installs
}

func (m *MockDataplane) RemoveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.removes
}
