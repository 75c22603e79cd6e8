// Package storage stores uploaded CV files in an S3-compatible object store.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"

	"github.com/truthtalent/cv-parser/internal/config"
)

// FileStore keeps original CV files in a single bucket, keyed by content hash
// plus sanitized filename so the same file uploaded twice lands on the same
// object.
type FileStore struct {
	client *minio.Client
	bucket string
	log    zerolog.Logger
}

// NewFileStore creates the client and ensures the bucket exists.
func NewFileStore(ctx context.Context, cfg *config.MinIOConfig, log zerolog.Logger) (*FileStore, error) {
	if cfg == nil {
		return nil, fmt.Errorf("minio config is nil")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	fs := &FileStore{client: client, bucket: cfg.Bucket, log: log}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("created object storage bucket")
	}

	return fs, nil
}

// StoreCV uploads a CV file and returns its object key.
func (fs *FileStore) StoreCV(ctx context.Context, contentHash, filename string, data []byte) (string, error) {
	objectKey := ObjectKey(contentHash, filename)
	contentType := contentTypeFor(filename)

	_, err := fs.client.PutObject(ctx, fs.bucket, objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectKey, err)
	}

	fs.log.Debug().
		Str("bucket", fs.bucket).
		Str("key", objectKey).
		Int("size", len(data)).
		Msg("stored CV file")
	return objectKey, nil
}

// ObjectKey builds the storage key for an upload: the content hash joined to a
// sanitized filename.
func ObjectKey(contentHash, filename string) string {
	return contentHash + "_" + sanitizeFilename(filename)
}

// sanitizeFilename keeps the base name and replaces characters that are
// awkward in object keys.
func sanitizeFilename(filename string) string {
	name := filepath.Base(filename)
	if name == "." || name == "/" || name == "" {
		return "upload"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	case ".html", ".htm":
		return "text/html"
	default:
		return "application/octet-stream"
	}
}
