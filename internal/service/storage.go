//go:generate mockery --name Storage --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dojo_path/internal/config"
	"dojo_path/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Storage はプロフィール画像などのオブジェクト保存先です。
// 同じキーへの Put は上書きになります。
type Storage interface {
	// Put は保存して公開URLを返します
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	// DeletePrefix は prefix 配下のオブジェクトをすべて削除します
	DeletePrefix(ctx context.Context, prefix string) error
}

func NewStorage(ctx context.Context, cfg *config.Config) (Storage, error) {
	logger := slog.Default()
	switch cfg.Storage.Type {
	case "s3":
		logger.Info("Initializing S3 storage...", "bucket", cfg.Storage.Bucket)
		return NewS3Storage(ctx, &cfg.Storage)
	case "local":
		logger.Info("Initializing local storage...", "dir", cfg.Storage.LocalDir)
		return NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
	default:
		logger.Warn("Unknown storage type, defaulting to local storage", "type", cfg.Storage.Type)
		return NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
	}
}

// --- S3Storage ---
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Storage(ctx context.Context, cfg *config.StorageConfig) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 storage: bucket is required")
	}
	awsCfg, err := loadAWSConfig(ctx, "s3", cfg.Region, cfg.AuthType, cfg.AccessKeyID, cfg.SecretAccessKey)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &S3Storage{client: client, bucket: cfg.Bucket, baseURL: baseURL}, nil
}

func (s *S3Storage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	logger := middleware.GetLogger(ctx)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		logger.Error("Failed to put object to S3", "error", err, "bucket", s.bucket, "key", key)
		return "", fmt.Errorf("S3Storage.Put: %w", err)
	}
	logger.Info("Object uploaded to S3", "bucket", s.bucket, "key", key, "size", size)
	return s.baseURL + "/" + key, nil
}

func (s *S3Storage) DeletePrefix(ctx context.Context, prefix string) error {
	logger := middleware.GetLogger(ctx)
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.Error("Failed to list objects in S3", "error", err, "prefix", prefix)
			return fmt.Errorf("S3Storage.DeletePrefix: %w", err)
		}
		if len(page.Contents) == 0 {
			continue
		}
		ids := make([]s3types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			ids = append(ids, s3types.ObjectIdentifier{Key: obj.Key})
		}
		if _, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &s3types.Delete{Objects: ids, Quiet: aws.Bool(true)},
		}); err != nil {
			logger.Error("Failed to delete objects in S3", "error", err, "prefix", prefix)
			return fmt.Errorf("S3Storage.DeletePrefix: %w", err)
		}
	}
	return nil
}

// --- LocalStorage ---
// 開発環境用。cmd/main.go が baseURL のパスで静的配信します。
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("local storage: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStorage) path(key string) (string, error) {
	p := filepath.Join(s.dir, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.dir, p)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return p, nil
}

func (s *LocalStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	logger := middleware.GetLogger(ctx)
	p, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("LocalStorage.Put: %w", err)
	}
	f, err := os.Create(p)
	if err != nil {
		logger.Error("Failed to create file", "error", err, "path", p)
		return "", fmt.Errorf("LocalStorage.Put: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, body); err != nil {
		logger.Error("Failed to write file", "error", err, "path", p)
		return "", fmt.Errorf("LocalStorage.Put: %w", err)
	}
	logger.Debug("Object stored locally", "path", p, "content_type", contentType, "size", size)
	return s.baseURL + "/" + key, nil
}

func (s *LocalStorage) DeletePrefix(ctx context.Context, prefix string) error {
	p, err := s.path(prefix)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(p); err != nil {
		return fmt.Errorf("LocalStorage.DeletePrefix: %w", err)
	}
	return nil
}
