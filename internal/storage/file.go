package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// codec transforms the serialized map on its way to and from disk.
type codec interface {
	encode(plain []byte) ([]byte, error)
	decode(stored []byte) ([]byte, error)
}

type plainCodec struct{}

func (plainCodec) encode(b []byte) ([]byte, error) { return b, nil }
func (plainCodec) decode(b []byte) ([]byte, error) { return b, nil }

type file struct {
	mu    sync.Mutex
	path  string
	codec codec
}

// NewFile stores every key in one JSON document at path.
func NewFile(path string) Storage {
	return &file{path: path, codec: plainCodec{}}
}

func (f *file) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return "", err
	}
	v, ok := data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *file) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	data[key] = value
	return f.save(data)
}

func (f *file) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return f.save(data)
}

func (f *file) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	plain, err := f.codec.decode(raw)
	if err != nil {
		return nil, err
	}

	data := make(map[string]string)
	if len(plain) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(plain, &data); err != nil {
		return nil, fmt.Errorf("decode storage file: %w", err)
	}
	return data, nil
}

// save writes through a temp file so a crash never leaves half a document.
func (f *file) save(data map[string]string) error {
	plain, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}
	out, err := f.codec.encode(plain)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".storage-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return fmt.Errorf("write storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close storage file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("chmod storage file: %w", err)
	}
	return os.Rename(tmp.Name(), f.path)
}
