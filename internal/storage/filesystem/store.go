package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/doc_converter/internal/domain"
	"github.com/kurochkinivan/doc_converter/internal/storage"
)

const (
	dirPerm     = 0o755
	filePerm    = 0o644
	tempPattern = ".tmp-*"
)

// Store keeps artifacts as plain files in two flat directories.
type Store struct {
	inboundDir  string
	outboundDir string
}

// New creates both directories if they are missing.
func New(inboundDir, outboundDir string) (*Store, error) {
	for _, dir := range []string{inboundDir, outboundDir} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	return &Store{
		inboundDir:  inboundDir,
		outboundDir: outboundDir,
	}, nil
}

func (s *Store) WriteInbound(ctx context.Context, name string, data []byte) error {
	return s.write(ctx, domain.AreaInbound, name, data)
}

func (s *Store) WriteOutbound(ctx context.Context, name string, data []byte) error {
	return s.write(ctx, domain.AreaOutbound, name, data)
}

func (s *Store) ReadOutbound(ctx context.Context, name string) ([]byte, error) {
	path, err := s.path(domain.AreaOutbound, name)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read %q: %w", name, err)
	}

	return data, nil
}

func (s *Store) DeleteInbound(ctx context.Context, name string) error {
	return s.delete(ctx, domain.AreaInbound, name)
}

func (s *Store) DeleteOutbound(ctx context.Context, name string) error {
	return s.delete(ctx, domain.AreaOutbound, name)
}

func (s *Store) Artifacts(ctx context.Context, area domain.Area) ([]*domain.Artifact, error) {
	dir, err := s.dir(area)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	artifacts := make([]*domain.Artifact, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".tmp-") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %q: %w", entry.Name(), err)
		}

		artifacts = append(artifacts, &domain.Artifact{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return artifacts, nil
}

// write stores data under a temporary name and renames it into place, so
// readers never observe a partially written artifact.
func (s *Store) write(ctx context.Context, area domain.Area, name string, data []byte) (err error) {
	path, err := s.path(area, name)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmp.Name()))
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Join(fmt.Errorf("failed to write %q: %w", name, err), tmp.Close())
	}

	if err := tmp.Chmod(filePerm); err != nil {
		return errors.Join(fmt.Errorf("failed to chmod %q: %w", name, err), tmp.Close())
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move %q into place: %w", name, err)
	}

	return nil
}

func (s *Store) delete(ctx context.Context, area domain.Area, name string) error {
	path, err := s.path(area, name)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", domain.ErrNotFound, name)
		}
		return fmt.Errorf("failed to delete %q: %w", name, err)
	}

	return nil
}

func (s *Store) path(area domain.Area, name string) (string, error) {
	if err := storage.ValidateName(name); err != nil {
		return "", err
	}

	dir, err := s.dir(area)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, name), nil
}

func (s *Store) dir(area domain.Area) (string, error) {
	switch area {
	case domain.AreaInbound:
		return s.inboundDir, nil
	case domain.AreaOutbound:
		return s.outboundDir, nil
	default:
		return "", fmt.Errorf("unknown area %q", area)
	}
}
