package archive

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// fileStore implements Store on a local directory.
type fileStore struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates a store rooted at dir. The directory is created on first Put.
func NewFileStore(dir string, logger zerolog.Logger) Store {
	return &fileStore{
		dir:    dir,
		logger: logger.With().Str("component", "file-archive").Logger(),
	}
}

// Put writes data to a temporary file and renames it into place.
func (s *fileStore) Put(ctx context.Context, key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		s.logger.Error().Err(err).Str("dir", s.dir).Msg("failed to create archive directory")
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to store archive file")
		return fmt.Errorf("failed to store %s: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("archived object to local file system")
	return nil
}

// Get reads the file stored under key.
func (s *fileStore) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read archive file")
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return data, nil
}

// Delete removes the file stored under key.
func (s *fileStore) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete archive file")
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Msg("deleted archived object from local file system")
	return nil
}

// path maps key to a file below the store directory.
func (s *fileStore) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if key == "" || strings.Contains(key, "..") || clean == "/" {
		return "", fmt.Errorf("invalid archive key: %q", key)
	}
	return filepath.Join(s.dir, filepath.FromSlash(clean)), nil
}
