// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"encoding/json"
	"fmt"

	"github.com/jeranaias/glint/diag"
)

// =============================================================================
// PERSISTENT KV CONTRACT
// =============================================================================

// KV is the backing store for the persistent scope. Keys are the 64-bit
// widget ids; values are widget-encoded blobs with no cross-version
// compatibility promise. See ui/persist for implementations.
type KV interface {
	Load(key uint64) (blob []byte, ok bool, err error)
	Store(key uint64, blob []byte) error
}

// =============================================================================
// KEYED STATE STORE
// =============================================================================

// idleFrames is how many frames a temporary entry may go unread before the
// sweep reclaims it.
const idleFrames = 3

type entry struct {
	value    any
	lastSeen uint64
	dirty    bool
}

// Store is the keyed heterogeneous state store bridging stateless
// rebuild-every-frame widgets and the state they need to survive. Values
// are erased; the typed accessors below re-assert on read and a mismatch
// warns once and yields the caller's default, never corrupted memory.
type Store struct {
	frame uint64

	temp      map[ID]*entry
	persisted map[ID]*entry
	kv        KV

	// Ids handed out this frame, for collision reporting.
	identities map[ID]string
}

func newStore(kv KV) *Store {
	return &Store{
		temp:       make(map[ID]*entry),
		persisted:  make(map[ID]*entry),
		kv:         kv,
		identities: make(map[ID]string),
	}
}

func (s *Store) recordIdentity(id ID, identity string) {
	if prev, ok := s.identities[id]; ok {
		diag.WarnOnce(
			fmt.Sprintf("state/collision/%d", id),
			"two widgets derived the same state key this frame; use distinct ids",
			map[string]any{"first": prev, "second": identity},
		)
		return
	}
	s.identities[id] = identity
}

func (s *Store) endFrame() {
	// Sweep against the frame that just ran; the counter advances after so
	// an entry survives exactly idleFrames unread frames.
	for id, e := range s.temp {
		if s.frame-e.lastSeen > idleFrames {
			delete(s.temp, id)
		}
	}
	s.frame++
	for id := range s.identities {
		delete(s.identities, id)
	}
}

func (s *Store) flush() error {
	if s.kv == nil {
		return nil
	}
	var firstErr error
	for id, e := range s.persisted {
		if !e.dirty {
			continue
		}
		blob, err := json.Marshal(e.value)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("encode state %d: %w", id, err)
			}
			continue
		}
		if err := s.kv.Store(uint64(id), blob); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("store state %d: %w", id, err)
		}
		e.dirty = false
	}
	return firstErr
}

// =============================================================================
// TYPED ACCESSORS
// =============================================================================

// GetOr reads the temporary entry for id, returning def when absent or when
// the stored value has a different type.
func GetOr[T any](c *Context, id ID, def T) T {
	s := c.mem.store
	e, ok := s.temp[id]
	if !ok {
		return def
	}
	e.lastSeen = s.frame
	v, ok := e.value.(T)
	if !ok {
		diag.WarnOnce(
			fmt.Sprintf("state/type/%d", id),
			"widget state read with a different type than it was written",
			map[string]any{"stored": fmt.Sprintf("%T", e.value), "wanted": fmt.Sprintf("%T", def)},
		)
		return def
	}
	return v
}

// GetOrElse reads the temporary entry for id, initializing it with init on
// first access. The initialized value is written back so later readers in
// the same frame observe it.
func GetOrElse[T any](c *Context, id ID, init func() T) T {
	s := c.mem.store
	if e, ok := s.temp[id]; ok {
		e.lastSeen = s.frame
		if v, ok := e.value.(T); ok {
			return v
		}
		var zero T
		diag.WarnOnce(
			fmt.Sprintf("state/type/%d", id),
			"widget state read with a different type than it was written",
			map[string]any{"stored": fmt.Sprintf("%T", e.value), "wanted": fmt.Sprintf("%T", zero)},
		)
	}
	v := init()
	s.temp[id] = &entry{value: v, lastSeen: s.frame}
	return v
}

// Put writes the temporary entry for id. The next reader sees the value.
func Put[T any](c *Context, id ID, v T) {
	s := c.mem.store
	if e, ok := s.temp[id]; ok {
		e.value = v
		e.lastSeen = s.frame
		return
	}
	s.temp[id] = &entry{value: v, lastSeen: s.frame}
}

// GetPersistedOr reads the persistent entry for id, faulting it in from the
// backing KV on first access. Decode failures degrade to def with one
// warning; they never abort the frame.
func GetPersistedOr[T any](c *Context, id ID, def T) T {
	s := c.mem.store
	if e, ok := s.persisted[id]; ok {
		if v, ok := e.value.(T); ok {
			return v
		}
		diag.WarnOnce(
			fmt.Sprintf("state/type/%d", id),
			"persistent widget state read with a different type than it was written",
			map[string]any{"stored": fmt.Sprintf("%T", e.value)},
		)
		return def
	}
	if s.kv == nil {
		return def
	}
	blob, ok, err := s.kv.Load(uint64(id))
	if err != nil || !ok {
		if err != nil {
			diag.WarnOnce(
				fmt.Sprintf("state/load/%d", id),
				"loading persistent widget state failed",
				map[string]any{"error": err.Error()},
			)
		}
		return def
	}
	v := def
	if err := json.Unmarshal(blob, &v); err != nil {
		diag.WarnOnce(
			fmt.Sprintf("state/decode/%d", id),
			"persistent widget state blob did not decode; using default",
			map[string]any{"error": err.Error()},
		)
		return def
	}
	s.persisted[id] = &entry{value: v, lastSeen: s.frame}
	return v
}

// PutPersisted writes the persistent entry for id. The blob reaches the
// backing KV on the next Memory.Flush.
func PutPersisted[T any](c *Context, id ID, v T) {
	s := c.mem.store
	if e, ok := s.persisted[id]; ok {
		e.value = v
		e.dirty = true
		e.lastSeen = s.frame
		return
	}
	s.persisted[id] = &entry{value: v, lastSeen: s.frame, dirty: true}
}
