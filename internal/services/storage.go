package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"translator-backend/internal/config"

	"github.com/sirupsen/logrus"
)

// ErrAudioNotFound is returned when a referenced audio object does not exist.
var ErrAudioNotFound = errors.New("audio file not found")

// AudioDirectory is the storage prefix for generated speech.
const AudioDirectory = "audio"

// StoredObject describes one file held by an AudioStorage.
type StoredObject struct {
	Ref          string
	Size         int64
	LastModified time.Time
}

// AudioStorage persists generated audio. References are slash separated paths
// relative to the storage root, e.g. "audio/<uuid>.mp3".
type AudioStorage interface {
	Put(ctx context.Context, ref string, data []byte, contentType string) error
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	// Delete removes ref. A missing object is not an error.
	Delete(ctx context.Context, ref string) error
	List(ctx context.Context, prefix string) ([]StoredObject, error)
	URL(ref string) string
}

func NewAudioStorage(cfg *config.Config, logger *logrus.Logger) (AudioStorage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverLocal, "":
		return NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.PublicPath, logger)
	case config.StorageDriverMinIO:
		return NewMinIOService(&cfg.MinIO, logger)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
