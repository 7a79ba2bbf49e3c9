package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// localFileStorage is a [KeyValueStorage] backed by a single JSON document
// on disk. The whole storage area is loaded on construction and rewritten on
// every mutation, which is fine at demo scale: a handful of keys, one
// process.
//
// The special path ":memory:" keeps the storage purely in memory; tests and
// throwaway demo runs use it as the storage fake.
type localFileStorage struct {
	path     string
	inMemory bool

	mu     sync.RWMutex
	values map[string]string
}

type filePersistedState struct {
	Values map[string]string `json:"values"`
}

// NewFileStorage opens (or creates on first write) the JSON storage file at
// path and returns it as a [KeyValueStorage]. An empty path defaults to
// ":memory:".
func NewFileStorage(path string) (KeyValueStorage, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &localFileStorage{
		path:     path,
		inMemory: path == ":memory:" || path == "memory",
		values:   make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *localFileStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return value, nil
}

func (s *localFileStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.persist()
}

func (s *localFileStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return s.persist()
}

func (s *localFileStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}
	if st.Values == nil {
		st.Values = make(map[string]string)
	}

	s.values = st.Values
	return nil
}

func (s *localFileStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Values: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}
	return nil
}
