package services

import (
	"context"
	"fmt"
	"path"
	"time"

	"translator-backend/internal/config"
	"translator-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SpeechSynthesizer turns text into MP3 bytes through a vendor API.
type SpeechSynthesizer interface {
	Name() string
	Synthesize(ctx context.Context, text, language string, settings models.VoiceSettings) ([]byte, error)
}

type SpeechService interface {
	// GenerateSpeech returns the storage reference of the generated audio, or ""
	// when the provider leaves speech to the browser.
	GenerateSpeech(ctx context.Context, text, language string, settings models.VoiceSettings) (string, error)
	RequiresServerGeneration() bool
	Provider() string
	AudioURL(ref string) string
	DeleteAudio(ctx context.Context, ref string) error
	CleanupOldAudio(ctx context.Context, maxAge time.Duration) int
}

type speechService struct {
	provider    string
	synthesizer SpeechSynthesizer
	storage     AudioStorage
	logger      *logrus.Logger
	now         func() time.Time
}

func NewSpeechService(cfg *config.Config, storage AudioStorage, logger *logrus.Logger) SpeechService {
	var synthesizer SpeechSynthesizer

	switch cfg.TTS.Provider {
	case config.TTSProviderWeb:
	case config.TTSProviderVoiceRSS:
		synthesizer = NewVoiceRSSSynthesizer(cfg.VoiceRSS, cfg.TTS.HTTPTimeout)
	case config.TTSProviderElevenLabs:
		synthesizer = NewElevenLabsSynthesizer(cfg.ElevenLabs, cfg.TTS.HTTPTimeout)
	default:
		logger.WithField("provider", cfg.TTS.Provider).Warn("Unknown TTS provider, falling back to browser speech")
	}

	return newSpeechService(cfg.TTS.Provider, synthesizer, storage, logger)
}

func newSpeechService(provider string, synthesizer SpeechSynthesizer, storage AudioStorage, logger *logrus.Logger) *speechService {
	return &speechService{
		provider:    provider,
		synthesizer: synthesizer,
		storage:     storage,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *speechService) GenerateSpeech(ctx context.Context, text, language string, settings models.VoiceSettings) (string, error) {
	if s.synthesizer == nil {
		return "", nil
	}

	audio, err := s.synthesizer.Synthesize(ctx, text, language, settings)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"provider": s.synthesizer.Name(),
			"language": language,
		}).Error("Speech synthesis failed")
		return "", err
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("%s returned no audio", s.synthesizer.Name())
	}

	ref := path.Join(AudioDirectory, uuid.NewString()+".mp3")
	if err := s.storage.Put(ctx, ref, audio, "audio/mpeg"); err != nil {
		s.logger.WithError(err).WithField("file", ref).Error("Failed to store generated audio")
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"provider": s.synthesizer.Name(),
		"language": language,
		"file":     ref,
		"bytes":    len(audio),
	}).Info("Speech generated")

	return ref, nil
}

func (s *speechService) RequiresServerGeneration() bool {
	return s.synthesizer != nil
}

func (s *speechService) Provider() string {
	return s.provider
}

func (s *speechService) AudioURL(ref string) string {
	return s.storage.URL(ref)
}

func (s *speechService) DeleteAudio(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	return s.storage.Delete(ctx, ref)
}

// CleanupOldAudio deletes generated files older than maxAge and returns how many were removed.
func (s *speechService) CleanupOldAudio(ctx context.Context, maxAge time.Duration) int {
	objects, err := s.storage.List(ctx, AudioDirectory)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list audio files for cleanup")
		return 0
	}

	cutoff := s.now().Add(-maxAge)
	deleted := 0
	for _, object := range objects {
		if !object.LastModified.Before(cutoff) {
			continue
		}
		if err := s.storage.Delete(ctx, object.Ref); err != nil {
			s.logger.WithError(err).WithField("file", object.Ref).Warn("Failed to delete old audio file")
			continue
		}
		deleted++
	}

	if deleted > 0 {
		s.logger.WithField("deleted", deleted).Info("Old audio files cleaned up")
	}
	return deleted
}
