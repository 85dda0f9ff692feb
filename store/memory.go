package store

import (
	"context"
	"sync"

	"github.com/lixenwraith/pump-clicker/engine"
)

// MemoryStore keeps the encoded record in process, lost on exit
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements engine.SnapshotStore
func (m *MemoryStore) Load(ctx context.Context) (engine.Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return engine.Snapshot{}, false, nil
	}
	s, ok := Decode(m.data)
	return s, ok, nil
}

// Save implements engine.SnapshotStore
func (m *MemoryStore) Save(ctx context.Context, s engine.Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

// SetRaw replaces the stored bytes, used to simulate foreign or corrupt data
func (m *MemoryStore) SetRaw(data []byte) {
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
}

// Close implements Store
func (m *MemoryStore) Close() error {
	return nil
}
