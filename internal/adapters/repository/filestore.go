package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/lineup/pkg/metrics"
)

const defaultFileMode os.FileMode = 0o644

// FileStore keeps the roster document in one JSON file. Saves write a
// temporary file in the same directory and rename it over the target, so a
// reader never sees a half-written roster.
type FileStore struct {
	path   string
	mode   os.FileMode
	indent string
	now    func() time.Time

	mu sync.Mutex
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string, opts ...Option) *FileStore {
	s := &FileStore{
		path:   path,
		mode:   defaultFileMode,
		indent: "    ",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

// Load reads the document. A missing file yields an empty roster.
func (s *FileStore) Load(ctx context.Context) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if s.path == "" {
		return Document{}, ErrNoPath
	}
	start := time.Now()
	defer func() { metrics.RecordRosterLoad(float64(time.Since(start).Milliseconds())) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Document{Players: map[string]PlayerRecord{}}, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("read roster %s: %w", s.path, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %s: %w", ErrCorruptRoster, s.path, err)
	}
	if doc.Players == nil {
		doc.Players = map[string]PlayerRecord{}
	}
	return doc, nil
}

// Save writes doc atomically under a fresh revision id.
func (s *FileStore) Save(ctx context.Context, doc Document) (rev string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.path == "" {
		return "", ErrNoPath
	}
	start := time.Now()
	defer func() { metrics.RecordRosterSave(float64(time.Since(start).Milliseconds()), err) }()

	doc.Revision = uuid.NewString()
	saved := s.now().UTC()
	doc.SavedAt = &saved
	if doc.Players == nil {
		doc.Players = map[string]PlayerRecord{}
	}

	var raw []byte
	if s.indent == "" {
		raw, err = json.Marshal(doc)
	} else {
		raw, err = json.MarshalIndent(doc, "", s.indent)
	}
	if err != nil {
		return "", fmt.Errorf("encode roster: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := writeAtomic(s.path, raw, s.mode); err != nil {
		return "", err
	}
	return doc.Revision, nil
}

func writeAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create roster dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp roster: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp roster: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp roster: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp roster: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp roster: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("replace roster: %w", err)
	}
	return nil
}
