package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	storeout "mindmate/internal/modules/store/port/out"
	apperrors "mindmate/internal/platform/errors"
)

type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

var _ storeout.Backend = (*FileBackend)(nil)

func (b *FileBackend) Name() string { return "file" }

func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("read document: %w", err)
	}
	return payload, nil
}

// Store replaces the file through a rename so readers never see a torn write.
func (b *FileBackend) Store(_ context.Context, payload []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create document dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp document: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }
