package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// s3API is the part of the S3 client used by the store.
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3Store implements Store on an S3 bucket. Keys are stored below prefix.
type s3Store struct {
	client s3API
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3Store creates an S3-backed store using the default AWS credential chain.
func NewS3Store(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Store, error) {
	logger = logger.With().Str("component", "s3-archive").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 archive initialised")

	return newS3Store(s3.NewFromConfig(cfg), bucket, prefix, logger), nil
}

func newS3Store(client s3API, bucket, prefix string, logger zerolog.Logger) *s3Store {
	return &s3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Put uploads data under prefix+key.
func (s *s3Store) Put(ctx context.Context, key string, data []byte) error {
	objectKey := s.prefix + key

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType(key)),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", objectKey).
			Msg("failed to put object to S3")
		return fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", s.bucket, objectKey, err)
	}

	s.logger.Debug().Str("key", objectKey).Int("bytes", len(data)).Msg("archived object to S3")
	return nil
}

// Get downloads the object stored under prefix+key.
func (s *s3Store) Get(ctx context.Context, key string) ([]byte, error) {
	objectKey := s.prefix + key

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrNotFound
		}
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", objectKey).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", s.bucket, objectKey, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading S3 object %s: %w", objectKey, err)
	}

	return data, nil
}

// Delete removes the object stored under prefix+key. S3 reports success for
// missing keys.
func (s *s3Store) Delete(ctx context.Context, key string) error {
	objectKey := s.prefix + key

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", objectKey).
			Msg("failed to delete object from S3")
		return fmt.Errorf("failed to delete object from S3 (bucket=%s, key=%s): %w", s.bucket, objectKey, err)
	}

	s.logger.Debug().Str("key", objectKey).Msg("deleted archived object from S3")
	return nil
}

func contentType(key string) string {
	if strings.HasSuffix(key, ".png") {
		return "image/png"
	}
	return "application/octet-stream"
}
