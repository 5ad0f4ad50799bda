// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// MemorySlotStorage is a process-local [SlotStorage]. An optional quota
// bounds the total size of stored values, which makes it handy for
// exercising quota handling in tests.
type MemorySlotStorage struct {
	mu    sync.RWMutex
	slots map[string][]byte
	quota int64
}

// NewMemorySlotStorage builds an empty in-memory medium. A quota of zero or
// less means unlimited.
func NewMemorySlotStorage(quota int64) *MemorySlotStorage {
	return &MemorySlotStorage{
		slots: make(map[string][]byte),
		quota: quota,
	}
}

func (m *MemorySlotStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return slices.Clone(value), nil
}

func (m *MemorySlotStorage) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.quota > 0 {
		used := int64(len(value))
		for k, v := range m.slots {
			if k != key {
				used += int64(len(v))
			}
		}
		if used > m.quota {
			return fmt.Errorf("%w: %d bytes over a %d byte quota", ErrQuotaExceeded, used, m.quota)
		}
	}

	m.slots[key] = slices.Clone(value)
	return nil
}

func (m *MemorySlotStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, key)
	return nil
}

func (m *MemorySlotStorage) Close() error {
	return nil
}
