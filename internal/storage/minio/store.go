// Package minio stores artifacts in an S3 compatible bucket under the
// "inbound/" and "outbound/" prefixes.
package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/doc_converter/internal/config"
	"github.com/kurochkinivan/doc_converter/internal/domain"
	"github.com/kurochkinivan/doc_converter/internal/storage"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const codeNoSuchKey = "NoSuchKey"

type Store struct {
	client *minio.Client
	bucket string
}

// New connects to the object storage and creates the bucket if it is missing.
func New(ctx context.Context, log *slog.Logger, cfg config.MinIO) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.Bucket, err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", cfg.Bucket, err)
		}
		log.InfoContext(ctx, "created bucket", slog.String("bucket", cfg.Bucket))
	}

	return &Store{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

func (s *Store) WriteInbound(ctx context.Context, name string, data []byte) error {
	return s.put(ctx, domain.AreaInbound, name, data, "application/octet-stream")
}

func (s *Store) WriteOutbound(ctx context.Context, name string, data []byte) error {
	return s.put(ctx, domain.AreaOutbound, name, data, domain.ContentTypeByName(name))
}

func (s *Store) ReadOutbound(ctx context.Context, name string) ([]byte, error) {
	key, err := objectKey(domain.AreaOutbound, name)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.translate(name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.translate(name, err)
	}

	return data, nil
}

func (s *Store) DeleteInbound(ctx context.Context, name string) error {
	return s.remove(ctx, domain.AreaInbound, name)
}

func (s *Store) DeleteOutbound(ctx context.Context, name string) error {
	return s.remove(ctx, domain.AreaOutbound, name)
}

func (s *Store) Artifacts(ctx context.Context, area domain.Area) ([]*domain.Artifact, error) {
	prefix := string(area) + "/"

	var artifacts []*domain.Artifact
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list %q: %w", prefix, object.Err)
		}

		artifacts = append(artifacts, &domain.Artifact{
			Name:    strings.TrimPrefix(object.Key, prefix),
			Size:    object.Size,
			ModTime: object.LastModified,
		})
	}

	return artifacts, nil
}

func (s *Store) put(ctx context.Context, area domain.Area, name string, data []byte, contentType string) error {
	key, err := objectKey(area, name)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put %q: %w", key, err)
	}

	return nil
}

// remove stats the object first because S3 deletes of missing keys succeed.
func (s *Store) remove(ctx context.Context, area domain.Area, name string) error {
	key, err := objectKey(area, name)
	if err != nil {
		return err
	}

	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		return s.translate(name, err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}

	return nil
}

func (s *Store) translate(name string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%w: %q", domain.ErrNotFound, name)
	}
	return fmt.Errorf("object storage error for %q: %w", name, err)
}

func isNotFound(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == codeNoSuchKey
	}
	return false
}

func objectKey(area domain.Area, name string) (string, error) {
	if err := storage.ValidateName(name); err != nil {
		return "", err
	}
	return string(area) + "/" + name, nil
}
