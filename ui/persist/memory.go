// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package persist

import "sync"

// MemoryStore is a KV that lives and dies with the process. Used by tests
// and by web/wasm hosts that have no filesystem.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[uint64][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[uint64][]byte)}
}

// Load fetches the blob stored under key.
func (m *MemoryStore) Load(key uint64) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, true, nil
}

// Store records the blob under key.
func (m *MemoryStore) Store(key uint64, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := make([]byte, len(blob))
	copy(b, blob)
	m.blobs[key] = b
	return nil
}
