package env

import (
	"sort"
	"strings"
	"sync"
)

// Variables exposes the layered key/value properties a run is configured with.
type Variables interface {
	Property(key string) (string, bool)
	Keys() []string
}

// Map is an in-memory Variables implementation safe for concurrent use.
type Map struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMap returns a Map seeded with a copy of values.
func NewMap(values map[string]string) *Map {
	m := &Map{values: make(map[string]string, len(values))}
	for key, value := range values {
		m.values[key] = value
	}
	return m
}

// Property returns the value stored for key.
func (m *Map) Property(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok
}

// SetProperty stores a value, replacing any previous one.
func (m *Map) SetProperty(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
}

// ClearProperty removes key.
func (m *Map) ClearProperty(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// Keys returns the stored keys in sorted order.
func (m *Map) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Value returns the trimmed value for key, or "" when it is absent.
func Value(vars Variables, key string) string {
	if vars == nil {
		return ""
	}
	value, _ := vars.Property(key)
	return strings.TrimSpace(value)
}

// ValueOr returns the trimmed value for key, or fallback when it is blank.
func ValueOr(vars Variables, key, fallback string) string {
	if value := Value(vars, key); value != "" {
		return value
	}
	return fallback
}

// IsDefined reports whether key is set to a non-blank value.
func IsDefined(vars Variables, key string) bool {
	return Value(vars, key) != ""
}

// KeysWithPrefix returns the sorted keys that start with prefix.
func KeysWithPrefix(vars Variables, prefix string) []string {
	if vars == nil {
		return nil
	}
	matched := make([]string, 0)
	for _, key := range vars.Keys() {
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
	}
	sort.Strings(matched)
	return matched
}

// Snapshot copies every property into a plain map.
func Snapshot(vars Variables) map[string]string {
	snapshot := make(map[string]string)
	if vars == nil {
		return snapshot
	}
	for _, key := range vars.Keys() {
		if value, ok := vars.Property(key); ok {
			snapshot[key] = value
		}
	}
	return snapshot
}
