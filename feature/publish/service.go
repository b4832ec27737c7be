package publish

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reading-tracker/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// File is a local file to upload.
type File struct {
	// Path is the local file path.
	Path string
	// Name is the object name relative to the configured prefix.
	// Defaults to the base name of Path.
	Name string
}

// Uploaded describes a published object.
type Uploaded struct {
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Service publishes the generated page and record to object storage.
type Service struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
}

// NewService creates a new publish service.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, cfg: cfg, logger: logger}
}

// EnsureBucket creates the configured bucket when it does not exist.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.cfg.Bucket, err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.cfg.Bucket, err)
	}
	s.logger.Info("Created bucket", zap.String("bucket", s.cfg.Bucket))
	return nil
}

// Publish uploads files to the bucket, creating it first when needed.
// It stops at the first failed upload.
func (s *Service) Publish(ctx context.Context, files ...File) ([]Uploaded, error) {
	if err := s.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	out := make([]Uploaded, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return out, fmt.Errorf("failed to read %s: %w", f.Path, err)
		}

		name := f.Name
		if name == "" {
			name = filepath.Base(f.Path)
		}
		key := s.cfg.ObjectKey(name)
		contentType := ContentType(name)

		_, err = s.client.PutObject(ctx, s.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: "no-cache",
		})
		if err != nil {
			return out, fmt.Errorf("failed to upload %s: %w", key, err)
		}

		s.logger.Info("Published object",
			zap.String("bucket", s.cfg.Bucket),
			zap.String("key", key),
			zap.Int("bytes", len(data)),
		)
		out = append(out, Uploaded{Key: key, Size: int64(len(data)), ContentType: contentType})
	}

	return out, nil
}

// List returns the object keys under the configured prefix.
func (s *Service) List(ctx context.Context) ([]string, error) {
	prefix := strings.Trim(s.cfg.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.cfg.Bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.cfg.Bucket, obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// ContentType returns the content type used for an object name.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return "text/html; charset=utf-8"
	case ".json":
		return "application/json"
	case ".zst":
		return "application/zstd"
	default:
		return "application/octet-stream"
	}
}
