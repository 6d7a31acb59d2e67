package service

import (
	"fmt"
	"sync"
)

// MockManager is an in-memory Manager implementation for tests. It tracks
// per-unit state, records the call sequence, and serves scripted status text
// so tests can exercise the distro-specific "not found" wordings.
type MockManager struct {
	mu sync.Mutex

	// StatusTexts maps unit names to canned status output. Units without an
	// entry report the systemd "could not be found" phrasing unless they were
	// enabled or started through the mock first.
	StatusTexts map[string]string

	// Systemd controls IsSystemd; defaults to true.
	NotSystemd bool

	// FailRestart, when set, makes Restart of the named unit fail.
	FailRestart string

	active  map[string]bool
	enabled map[string]bool
	known   map[string]bool

	// Calls records every mutation as "<op> <unit>" in order.
	Calls []string
}

// NewMockManager returns an empty mock with no known units.
func NewMockManager() *MockManager {
	return &MockManager{
		StatusTexts: make(map[string]string),
		active:      make(map[string]bool),
		enabled:     make(map[string]bool),
		known:       make(map[string]bool),
	}
}

// AddUnit registers a unit as known to the service manager.
func (m *MockManager) AddUnit(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.known[name] = true
}

func (m *MockManager) Status(name string) string {
	m.record("status", name)
	m.mu.Lock()
	defer m.mu.Unlock()
	if text, ok := m.StatusTexts[name]; ok {
		return text
	}
	if m.known[name] {
		return fmt.Sprintf("* %s.service - Mock unit\n   Loaded: loaded\n   Active: inactive (dead)", name)
	}
	return fmt.Sprintf("Unit %s.service could not be found.", name)
}

func (m *MockManager) Start(name string) error {
	m.record("start", name)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.known[name] = true
	m.active[name] = true
	return nil
}

func (m *MockManager) Stop(name string) error {
	m.record("stop", name)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active[name] = false
	return nil
}

func (m *MockManager) Restart(name string) error {
	m.record("restart", name)
	m.mu.Lock()
	defer m.mu.Unlock()
	if name == m.FailRestart {
		return fmt.Errorf("failed to restart %s", name)
	}
	m.known[name] = true
	m.active[name] = true
	return nil
}

func (m *MockManager) Enable(name string) error {
	m.record("enable", name)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.known[name] = true
	m.enabled[name] = true
	return nil
}

func (m *MockManager) Disable(name string) error {
	m.record("disable", name)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled[name] = false
	return nil
}

func (m *MockManager) IsActive(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active[name]
}

func (m *MockManager) IsDisabled(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.enabled[name]
}

func (m *MockManager) PrintStatus(name string) {
	fmt.Println(m.Status(name))
}

func (m *MockManager) DaemonReload() error {
	m.record("daemon-reload", "")
	return nil
}

func (m *MockManager) IsSystemd() bool {
	return !m.NotSystemd
}

func (m *MockManager) record(op, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if name == "" {
		m.Calls = append(m.Calls, op)
		return
	}
	m.Calls = append(m.Calls, op+" "+name)
}
