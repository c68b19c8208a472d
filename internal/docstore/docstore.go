// Package docstore persists whole JSON documents, one file per document.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrUnavailable reports a document that exists but cannot be read or
// parsed. A missing document is not an error: it loads as the zero value.
var ErrUnavailable = errors.New("document store unavailable")

type Store interface {
	// View loads the named document into doc.
	View(name string, doc any) error
	// Mutate loads the named document into doc, runs apply and saves the
	// result. The whole cycle holds the document's write lock, so two
	// concurrent Mutate calls never lose an update.
	Mutate(name string, doc any, apply func() error) error
}

type FileStore struct {
	dir string
	log *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

func NewFileStore(dir string, log *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir, log: log, locks: make(map[string]*sync.RWMutex)}, nil
}

func (s *FileStore) lock(name string) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.RWMutex{}
		s.locks[name] = l
	}
	return l
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) View(name string, doc any) error {
	l := s.lock(name)
	l.RLock()
	defer l.RUnlock()
	return s.load(name, doc)
}

func (s *FileStore) Mutate(name string, doc any, apply func() error) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()

	if err := s.load(name, doc); err != nil {
		return err
	}
	if err := apply(); err != nil {
		return err
	}
	return s.save(name, doc)
}

func (s *FileStore) load(name string, doc any) error {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		s.log.Warn("document missing, starting empty", "document", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrUnavailable, name, err)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnavailable, name, err)
	}
	return nil
}

// save writes the document to a temp file and renames it into place so a
// crashed write never truncates the previous contents.
func (s *FileStore) save(name string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, name, err)
	}
	return nil
}
