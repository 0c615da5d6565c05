package config

import (
	"fmt"
	"sync"

	"github.com/go-viper/mapstructure/v2"

	"github.com/danpasecinic/factory"
)

// Map is a mutable key/value Configuration. Keys and values may be of any
// type; keys must be comparable.
type Map struct {
	mu      sync.RWMutex
	entries map[any]any
}

func NewMap() *Map {
	return &Map{entries: make(map[any]any)}
}

// Add stores value under key, replacing any previous value.
func (m *Map) Add(key, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
}

func (m *Map) Get(key any) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[key]
	return v, ok
}

// Keys returns the keys in no particular order.
func (m *Map) Keys() []any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]any, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

// Entries returns a copy of the stored entries.
func (m *Map) Entries() map[any]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[any]any, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Decode copies the entries with string (or fmt.Stringer) keys into out,
// matching fields by their json tag. Values are converted weakly, so "8"
// decodes into an int field.
func (m *Map) Decode(out any) error {
	m.mu.RLock()
	data := make(map[string]any, len(m.entries))
	for k, v := range m.entries {
		switch key := k.(type) {
		case string:
			data[key] = v
		case fmt.Stringer:
			data[key.String()] = v
		}
	}
	m.mu.RUnlock()

	dec, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			Result:           out,
		},
	)
	if err != nil {
		return factory.NewConfigurationError("invalid decode target", err)
	}
	if err := dec.Decode(data); err != nil {
		return factory.NewConfigurationError("decode map configuration", err)
	}
	return nil
}
