package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"translator-backend/internal/models"
	"translator-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// DefaultHistoryPageSize is the number of records per history page.
const DefaultHistoryPageSize = 20

var ErrNoAudio = errors.New("no audio file available for this translation")

// AudioDownload is an open audio stream with its attachment filename.
type AudioDownload struct {
	Reader   io.ReadCloser
	Filename string
}

type HistoryService interface {
	List(ctx context.Context, language string, page, pageSize int) ([]models.Translation, int64, error)
	Get(ctx context.Context, id uint) (*models.Translation, error)
	Recent(ctx context.Context, limit int) ([]models.Translation, error)
	Delete(ctx context.Context, id uint) error
	Clear(ctx context.Context) (int64, error)
	OpenAudio(ctx context.Context, id uint) (*AudioDownload, error)
	AudioURL(translation *models.Translation) *string
}

type historyService struct {
	repo    repository.TranslationRepository
	storage AudioStorage
	logger  *logrus.Logger
	now     func() time.Time
}

func NewHistoryService(repo repository.TranslationRepository, storage AudioStorage, logger *logrus.Logger) HistoryService {
	return &historyService{
		repo:    repo,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *historyService) List(ctx context.Context, language string, page, pageSize int) ([]models.Translation, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultHistoryPageSize
	}
	return s.repo.FindAll(ctx, page, pageSize, language)
}

func (s *historyService) Get(ctx context.Context, id uint) (*models.Translation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *historyService) Recent(ctx context.Context, limit int) ([]models.Translation, error) {
	return s.repo.FindRecent(ctx, limit)
}

// Delete removes the record's audio file and then the record.
func (s *historyService) Delete(ctx context.Context, id uint) error {
	translation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if translation.HasAudio() {
		if err := s.storage.Delete(ctx, translation.AudioRef()); err != nil {
			return fmt.Errorf("failed to delete audio for translation %d: %w", id, err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("id", id).Info("Translation deleted")
	return nil
}

// Clear deletes each record's audio file and then the records. A record whose
// file could not be deleted is kept with its audio, and Clear reports the failure.
func (s *historyService) Clear(ctx context.Context) (int64, error) {
	withAudio, err := s.repo.FindWithAudio(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list audio files: %w", err)
	}

	var keep []uint
	var errs []error
	for _, translation := range withAudio {
		ref := translation.AudioRef()
		if err := s.storage.Delete(ctx, ref); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"id":   translation.ID,
				"file": ref,
			}).Warn("Failed to delete audio, keeping translation")
			keep = append(keep, translation.ID)
			errs = append(errs, fmt.Errorf("audio %s: %w", ref, err))
		}
	}

	deleted, err := s.repo.DeleteAllExcept(ctx, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to delete translations: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"translations": deleted,
		"kept":         len(keep),
	}).Info("Translation history cleared")

	if len(errs) > 0 {
		return deleted, fmt.Errorf("failed to delete %d audio files: %w", len(errs), errors.Join(errs...))
	}
	return deleted, nil
}

func (s *historyService) OpenAudio(ctx context.Context, id uint) (*AudioDownload, error) {
	translation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !translation.HasAudio() {
		return nil, ErrNoAudio
	}

	reader, err := s.storage.Open(ctx, translation.AudioRef())
	if err != nil {
		if errors.Is(err, ErrAudioNotFound) {
			s.logger.WithField("file", translation.AudioRef()).Warn("Audio file referenced by translation is missing")
		}
		return nil, err
	}

	name := models.DisplayInfo(translation.TargetLanguage, translation.Language).Name
	return &AudioDownload{
		Reader:   reader,
		Filename: fmt.Sprintf("translation_%s_%d.mp3", name, s.now().Unix()),
	}, nil
}

func (s *historyService) AudioURL(translation *models.Translation) *string {
	if !translation.HasAudio() {
		return nil
	}
	url := s.storage.URL(translation.AudioRef())
	return &url
}
