package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// LocalStorage keeps audio files on the local disk under root.
type LocalStorage struct {
	root       string
	publicPath string
	logger     *logrus.Logger
}

func NewLocalStorage(root, publicPath string, logger *logrus.Logger) (*LocalStorage, error) {
	if root == "" {
		root = "storage/app/public"
	}
	if err := os.MkdirAll(filepath.Join(root, AudioDirectory), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	logger.WithField("root", root).Info("Local audio storage initialized")

	return &LocalStorage{
		root:       root,
		publicPath: strings.TrimRight(publicPath, "/"),
		logger:     logger,
	}, nil
}

// Root returns the directory served for public audio URLs.
func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) resolve(ref string) (string, error) {
	clean := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(ref)), "/")
	if clean == "" {
		return "", fmt.Errorf("invalid storage reference %q", ref)
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

func (s *LocalStorage) Put(_ context.Context, ref string, data []byte, _ string) error {
	target, err := s.resolve(ref)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	target, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrAudioNotFound
		}
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) Delete(_ context.Context, ref string) error {
	target, err := s.resolve(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.WithError(err).WithField("file", ref).Error("Failed to delete audio file")
		return fmt.Errorf("failed to delete audio file: %w", err)
	}
	return nil
}

func (s *LocalStorage) List(_ context.Context, prefix string) ([]StoredObject, error) {
	dir, err := s.resolve(prefix)
	if err != nil {
		return nil, err
	}

	var objects []StoredObject
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrNotExist) && p == dir {
				return filepath.SkipDir
			}
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		objects = append(objects, StoredObject{
			Ref:          filepath.ToSlash(rel),
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list audio files: %w", err)
	}
	return objects, nil
}

func (s *LocalStorage) URL(ref string) string {
	return s.publicPath + "/" + strings.TrimPrefix(ref, "/")
}
