package services

import (
	"context"
	"errors"
	"fmt"

	"translator-backend/internal/models"
	"translator-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrAllLanguagesFailed = errors.New("translation failed for all selected languages")

type TranslateInput struct {
	Text          string
	Languages     []string
	VoiceSettings models.VoiceSettings
	IPAddress     string
	UserAgent     string
}

// TranslationResult is one successfully translated and stored language.
type TranslationResult struct {
	ID             uint                 `json:"id" example:"1"`
	Language       models.LanguageInfo  `json:"language"`
	OriginalText   string               `json:"original_text" example:"Good morning"`
	TranslatedText string               `json:"translated_text" example:"Buenos días"`
	AudioURL       *string              `json:"audio_url" example:"/storage/audio/5f0c1b8e-3a51-4c33-9a43-0d9ad8a4a4d1.mp3"`
	UseBrowserTTS  bool                 `json:"use_browser_tts" example:"false"`
	VoiceSettings  models.VoiceSettings `json:"voice_settings"`
}

// LanguageOutcome is the result of one language pipeline. Exactly one of
// Result and Err is set.
type LanguageOutcome struct {
	Code   string
	Result *TranslationResult
	Err    error
}

type TranslatorService interface {
	Translate(ctx context.Context, input TranslateInput) ([]TranslationResult, error)
	TranslateEach(ctx context.Context, input TranslateInput) []LanguageOutcome
	ActiveLanguages(ctx context.Context) ([]models.Language, error)
	SourceLanguage() string
}

type translatorService struct {
	repo           repository.TranslationRepository
	langRepo       repository.LanguageRepository
	translation    TranslationService
	speech         SpeechService
	sourceLanguage string
	concurrency    int
	logger         *logrus.Logger
}

func NewTranslatorService(
	repo repository.TranslationRepository,
	langRepo repository.LanguageRepository,
	translation TranslationService,
	speech SpeechService,
	sourceLanguage string,
	concurrency int,
	logger *logrus.Logger,
) TranslatorService {
	if sourceLanguage == "" {
		sourceLanguage = "en"
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &translatorService{
		repo:           repo,
		langRepo:       langRepo,
		translation:    translation,
		speech:         speech,
		sourceLanguage: sourceLanguage,
		concurrency:    concurrency,
		logger:         logger,
	}
}

// Translate runs every language and returns the successful results in request
// order. It fails with ErrAllLanguagesFailed only when no language succeeded.
func (s *translatorService) Translate(ctx context.Context, input TranslateInput) ([]TranslationResult, error) {
	outcomes := s.TranslateEach(ctx, input)

	results := make([]TranslationResult, 0, len(outcomes))
	var errs []error
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			errs = append(errs, outcome.Err)
			continue
		}
		results = append(results, *outcome.Result)
	}

	if len(results) == 0 {
		if len(errs) == 0 {
			return nil, ErrAllLanguagesFailed
		}
		return nil, fmt.Errorf("%w: %w", ErrAllLanguagesFailed, errors.Join(errs...))
	}
	if len(errs) > 0 {
		s.logger.WithFields(logrus.Fields{
			"succeeded": len(results),
			"failed":    len(errs),
		}).Warn("Some languages failed to translate")
	}
	return results, nil
}

// TranslateEach runs one pipeline per requested language. Pipelines never
// cancel each other.
func (s *translatorService) TranslateEach(ctx context.Context, input TranslateInput) []LanguageOutcome {
	outcomes := make([]LanguageOutcome, len(input.Languages))

	catalog, err := s.langRepo.FindByCodes(ctx, input.Languages)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load language names, using codes")
		catalog = map[string]*models.Language{}
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i, code := range input.Languages {
		i, code := i, code
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					s.logger.WithField("language", code).Errorf("Translation pipeline panicked: %v", r)
					outcomes[i] = LanguageOutcome{Code: code, Err: fmt.Errorf("translate %s: panic: %v", code, r)}
				}
			}()
			outcomes[i] = s.translateOne(ctx, input, code, catalog[code])
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (s *translatorService) translateOne(ctx context.Context, input TranslateInput, code string, language *models.Language) LanguageOutcome {
	translated := input.Text
	if code != s.sourceLanguage {
		text, err := s.translation.Translate(ctx, input.Text, code, s.sourceLanguage)
		if err != nil {
			s.logger.WithError(err).WithField("language", code).Warn("Translation failed for language")
			return LanguageOutcome{Code: code, Err: fmt.Errorf("translate %s: %w", code, err)}
		}
		translated = text
	}

	var audioRef *string
	if s.speech.RequiresServerGeneration() {
		ref, err := s.speech.GenerateSpeech(ctx, translated, code, input.VoiceSettings)
		if err != nil {
			s.logger.WithError(err).WithField("language", code).Warn("Speech generation failed, falling back to browser speech")
		} else if ref != "" {
			audioRef = &ref
		}
	}

	record := &models.Translation{
		OriginalText:   input.Text,
		TranslatedText: translated,
		SourceLanguage: s.sourceLanguage,
		TargetLanguage: code,
		AudioFilePath:  audioRef,
		VoiceSettings:  input.VoiceSettings,
		IPAddress:      input.IPAddress,
		UserAgent:      input.UserAgent,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.WithError(err).WithField("language", code).Error("Failed to save translation")
		if audioRef != nil {
			if delErr := s.speech.DeleteAudio(ctx, *audioRef); delErr != nil {
				s.logger.WithError(delErr).WithField("file", *audioRef).Warn("Failed to remove audio of unsaved translation")
			}
		}
		return LanguageOutcome{Code: code, Err: fmt.Errorf("save %s: %w", code, err)}
	}

	var audioURL *string
	if audioRef != nil {
		url := s.speech.AudioURL(*audioRef)
		audioURL = &url
	}

	return LanguageOutcome{
		Code: code,
		Result: &TranslationResult{
			ID:             record.ID,
			Language:       models.DisplayInfo(code, language),
			OriginalText:   record.OriginalText,
			TranslatedText: record.TranslatedText,
			AudioURL:       audioURL,
			UseBrowserTTS:  audioURL == nil,
			VoiceSettings:  record.VoiceSettings,
		},
	}
}

func (s *translatorService) ActiveLanguages(ctx context.Context) ([]models.Language, error) {
	return s.langRepo.FindActive(ctx)
}

func (s *translatorService) SourceLanguage() string {
	return s.sourceLanguage
}
