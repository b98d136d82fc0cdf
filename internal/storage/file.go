package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend stores each collection as <name>.json inside a data directory.
type FileBackend struct {
	dir string
}

// NewFileBackend ensures dir exists and returns a backend rooted at it.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *FileBackend) Get(ctx context.Context, name string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(b.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read collection %s: %w", name, err)
	}
	return data, true, nil
}

// Set writes to a temp file in the same directory and renames it over the
// target, so a crashed write never leaves a truncated collection behind.
func (b *FileBackend) Set(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(b.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp for %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), b.path(name)); err != nil {
		return fmt.Errorf("replace collection %s: %w", name, err)
	}
	return nil
}

func (b *FileBackend) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(b.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete collection %s: %w", name, err)
	}
	return nil
}
