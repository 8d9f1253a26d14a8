package implementation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"prompt-manager/internal/repository/contract"
)

// FileStorage keeps one JSON file per key inside a directory, the local
// equivalent of a browser's localStorage.
type FileStorage struct {
	baseDir string
}

func NewFileStorage(baseDir string) contract.StorageRepository {
	return &FileStorage{
		baseDir: baseDir,
	}
}

func (s *FileStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.baseDir, key+".json"), nil
}

func (s *FileStorage) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	path, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: failed to read %s: %v", contract.ErrStorageUnavailable, path, err)
	}

	return string(data), true, nil
}

// Set writes through a temp file and renames it over the target so a crash
// mid-write never leaves a truncated value behind.
func (s *FileStorage) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create storage directory: %v", contract.ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(s.baseDir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", contract.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write %s: %v", contract.ErrStorageUnavailable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to close %s: %v", contract.ErrStorageUnavailable, tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace %s: %v", contract.ErrStorageUnavailable, path, err)
	}

	return nil
}
