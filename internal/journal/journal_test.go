package journal

import (
	"fmt"
)

// memKV is an in-memory stand-in for the durable store.
type memKV struct {
	values  map[string]string
	failSet bool
}

func newMemKV() *memKV {
	return &memKV{values: make(map[string]string)}
}

func (m *memKV) Init() error  { return nil }
func (m *memKV) Load() error  { return nil }
func (m *memKV) Close() error { return nil }

func (m *memKV) Get(key string) (string, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memKV) Set(key, value string) error {
	if m.failSet {
		return fmt.Errorf("simulated write failure")
	}
	m.values[key] = value
	return nil
}

func (m *memKV) Delete(key string) error {
	delete(m.values, key)
	return nil
}

func (m *memKV) Path() string { return "mem" }
