package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileTokenStore implements TokenStore backed by a single file on disk, the
// closest analogue of a browser's local storage for a CLI or desktop client.
// The file holds the raw credential and is created with 0600 permissions.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a file-backed token store at the given path.
// Parent directories are created on first Save.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		return nil, ErrNoTokenPath
	}
	return &FileTokenStore{path: path}, nil
}

// Load reads the persisted credential. A missing file means no entry and is
// not an error.
func (f *FileTokenStore) Load(ctx context.Context) (string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Save writes the credential, replacing any previous entry.
func (f *FileTokenStore) Save(ctx context.Context, token string) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create token directory: %w", err)
		}
	}
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Clear removes the token file. A missing file is a no-op.
func (f *FileTokenStore) Clear(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
