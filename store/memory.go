package store

import "maps"

// Memory is a DB that lives only as long as the process.
type Memory struct {
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]byte),
	}
}

func (m *Memory) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}

	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)

	return nil
}

func (m *Memory) Clear() error {
	clear(m.data)

	return nil
}

func (m *Memory) Close() error {
	return nil
}

// Dump returns a copy of everything stored.
func (m *Memory) Dump() map[string][]byte {
	return maps.Clone(m.data)
}
