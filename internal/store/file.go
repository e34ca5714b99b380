package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileStore keeps one JSON document per key under a data directory.
type FileStore struct {
	dir string
	log zerolog.Logger
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string, log zerolog.Logger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

// Load reads <dir>/<key>.json into out. A missing file is not an error;
// a corrupt file is logged and treated as absent so callers fall back to
// their default collection rather than failing startup.
func (s *FileStore) Load(key string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("corrupt snapshot, falling back to default")
		return false, nil
	}
	return true, nil
}

// Save writes v as <dir>/<key>.json, creating the data directory on first
// use. The write goes through a temp file and rename so a crashed write
// never leaves a truncated snapshot behind.
func (s *FileStore) Save(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot %s: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("replacing snapshot %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
