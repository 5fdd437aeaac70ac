package archive

import (
	"context"

	"github.com/rs/zerolog"
)

// fallbackStore tries S3 first and falls back to the local file system.
type fallbackStore struct {
	s3Store   Store
	fileStore Store
	s3Enabled bool
	logger    zerolog.Logger
}

// NewFallbackStore creates a store that prefers S3 and falls back to local disk.
// If s3Store is nil or S3 is disabled, only the file store is used.
func NewFallbackStore(s3Store, fileStore Store, s3Enabled bool, logger zerolog.Logger) Store {
	return &fallbackStore{
		s3Store:   s3Store,
		fileStore: fileStore,
		s3Enabled: s3Enabled,
		logger:    logger.With().Str("component", "fallback-archive").Logger(),
	}
}

func (s *fallbackStore) useS3() bool {
	return s.s3Enabled && s.s3Store != nil
}

// Put writes to S3 when enabled, and to the local file system otherwise or
// when S3 fails.
func (s *fallbackStore) Put(ctx context.Context, key string, data []byte) error {
	if s.useS3() {
		err := s.s3Store.Put(ctx, key, data)
		if err == nil {
			return nil
		}
		s.logger.Warn().
			Err(err).
			Str("key", key).
			Msg("failed to archive to S3, falling back to local file system")
	}

	return s.fileStore.Put(ctx, key, data)
}

// Get reads from S3 when enabled and falls back to the local file system.
func (s *fallbackStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.useS3() {
		data, err := s.s3Store.Get(ctx, key)
		if err == nil {
			return data, nil
		}
		if err != ErrNotFound {
			s.logger.Warn().
				Err(err).
				Str("key", key).
				Msg("failed to read from S3, falling back to local file system")
		}
	} else {
		s.logger.Debug().
			Bool("s3_enabled", s.s3Enabled).
			Bool("has_s3_store", s.s3Store != nil).
			Msg("S3 disabled or not configured, using local file system")
	}

	return s.fileStore.Get(ctx, key)
}

// Delete removes the object from both stores, since Put may have written to
// either of them.
func (s *fallbackStore) Delete(ctx context.Context, key string) error {
	var s3Err error
	if s.useS3() {
		s3Err = s.s3Store.Delete(ctx, key)
		if s3Err != nil {
			s.logger.Warn().Err(s3Err).Str("key", key).Msg("failed to delete from S3")
		}
	}

	if err := s.fileStore.Delete(ctx, key); err != nil {
		return err
	}
	return s3Err
}
