package storage

import "strings"

// MemoryKV is an in-memory KV implementation for tests and throwaway
// sessions. Not persistent, trivially fast.
type MemoryKV struct {
	data map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) DeleteByPrefix(prefix string) error {
	for key := range m.data {
		if strings.HasPrefix(key, prefix) {
			delete(m.data, key)
		}
	}
	return nil
}

// Len returns the number of stored keys. Test helper.
func (m *MemoryKV) Len() int {
	return len(m.data)
}

// Compile-time verification that *MemoryKV implements KV
var _ KV = (*MemoryKV)(nil)
