// Package storage is the client's "device storage": a small string key/value
// store that survives process restarts. The session layer keeps its token,
// user id and role here.
package storage

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("storage key not found")
	ErrUnknownDriver = errors.New("unknown storage driver")
	ErrMissingSecret = errors.New("sealed storage requires STORAGE_SECRET")
)

type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() Storage {
	return &memory{data: make(map[string]string)}
}

func (m *memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

func (m *memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
