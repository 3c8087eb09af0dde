package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	lru "github.com/zyedidia/generic/cache"

	"github.com/katalvlaran/orienteer/grid"
)

// ErrCapacity indicates a non-positive memory cache capacity.
var ErrCapacity = errors.New("cache: capacity must be positive")

// Memory is an in-process LRU store. Safe for concurrent use.
type Memory struct {
	mu  sync.Mutex
	lru *lru.Cache[string, Entry]
}

// NewMemory returns an LRU store holding at most capacity entries.
func NewMemory(capacity int) (*Memory, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCapacity, capacity)
	}

	return &Memory{lru: lru.New[string, Entry](capacity)}, nil
}

// Get returns a copy of the entry and marks it most recently used.
func (m *Memory) Get(_ context.Context, key string) (Entry, bool, error) {
	m.mu.Lock()
	e, ok := m.lru.Get(key)
	m.mu.Unlock()
	if !ok {
		return Entry{}, false, nil
	}

	return clone(e), true, nil
}

// Put stores a copy of e, evicting the least recently used entry when full.
func (m *Memory) Put(_ context.Context, key string, e Entry) error {
	m.mu.Lock()
	m.lru.Put(key, clone(e))
	m.mu.Unlock()

	return nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lru.Size()
}

func clone(e Entry) Entry {
	if e.Order != nil {
		e.Order = append([]grid.Cell(nil), e.Order...)
	}

	return e
}
