package store

import "maps"

// Memory is an in-process Store. It is the backing map for File and is
// handy wherever nothing has to survive the process.
type Memory struct {
	values map[string]any
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]any)}
}

// Bool returns the bool at key, or fallback.
func (m *Memory) Bool(key string, fallback bool) bool {
	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return fallback
}

// SetBool stores a bool.
func (m *Memory) SetBool(key string, value bool) {
	m.values[key] = value
}

// String returns the string at key, or fallback.
func (m *Memory) String(key, fallback string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return fallback
}

// SetString stores a string.
func (m *Memory) SetString(key, value string) {
	m.values[key] = value
}

// Float returns the number at key, or fallback. Integers are accepted too,
// which is how whole numbers come back from a decoded YAML document.
func (m *Memory) Float(key string, fallback float64) float64 {
	switch v := m.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}

// SetFloat stores a float.
func (m *Memory) SetFloat(key string, value float64) {
	m.values[key] = value
}

// Set stores a raw value without type checks.
func (m *Memory) Set(key string, value any) {
	m.values[key] = value
}

// Snapshot returns a copy of the stored values.
func (m *Memory) Snapshot() map[string]any {
	return maps.Clone(m.values)
}

// Len reports the number of stored keys.
func (m *Memory) Len() int {
	return len(m.values)
}
