package storage

import (
	"context"
	"sync"
)

// MemBackend is an in-memory Backend used in tests and anywhere persistence
// across restarts is not needed.
type MemBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemBackend() *MemBackend {
	return &MemBackend{data: make(map[string][]byte)}
}

func (b *MemBackend) Get(ctx context.Context, name string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.data[name]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (b *MemBackend) Set(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[name] = append([]byte(nil), data...)
	return nil
}

func (b *MemBackend) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, name)
	return nil
}
