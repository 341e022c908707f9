package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot stores the slot value in <dir>/<name>.json.
// Writes go through a temp file, fsync and rename, so a reader sees either
// the old snapshot or the new one.
type FileSlot struct {
	dir  string
	name string
}

// NewFileSlot creates a file-backed slot. The directory is created on first write.
func NewFileSlot(dir, name string) (*FileSlot, error) {
	if err := validateName(name); err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	return &FileSlot{dir: dir, name: name}, nil
}

func (s *FileSlot) Name() string { return s.name }

// Path returns the file holding the slot value.
func (s *FileSlot) Path() string {
	return filepath.Join(s.dir, s.name+".json")
}

func (s *FileSlot) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read slot file: %w", err)
	}
	return data, true, nil
}

func (s *FileSlot) Write(data []byte) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+s.name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path()); err != nil {
		return fmt.Errorf("replace slot file: %w", err)
	}
	return nil
}

func (s *FileSlot) Close() error { return nil }
