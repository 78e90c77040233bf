package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists each collection as a single JSON file under a data
// directory. Reads return the whole collection; writes replace the whole
// file. Writers for the same collection are serialized, so concurrent
// replace calls are ordered and the last one wins wholesale.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.RWMutex),
	}, nil
}

func (s *Store) lock(collection string) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.RWMutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read unmarshals the full collection into out. A missing file is not an
// error; out is left untouched so the caller sees an empty collection.
func (s *Store) Read(collection string, out interface{}) error {
	l := s.lock(collection)
	l.RLock()
	defer l.RUnlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read collection %s: %v", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode collection %s: %v", collection, err)
	}
	return nil
}

// Replace overwrites the entire collection. The new contents are written
// to a temp file and renamed into place so readers never observe a
// partial write.
func (s *Store) Replace(collection string, value interface{}) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %v", collection, err)
	}

	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %v", collection, err)
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("failed to replace collection %s: %v", collection, err)
	}
	return nil
}
