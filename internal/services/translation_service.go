package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"translator-backend/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

var ErrEmptyTranslation = errors.New("translation vendor returned an empty translation")

// TranslationService talks to the machine translation vendor.
type TranslationService interface {
	Translate(ctx context.Context, text, targetLanguage, sourceLanguage string) (string, error)
	DetectLanguage(text string) string
	ClearCache(ctx context.Context) error
}

type translationService struct {
	client       *resty.Client
	cache        TranslationCache
	cacheEnabled bool
	cacheTTL     time.Duration
	logger       *logrus.Logger
}

func NewTranslationService(cfg config.TranslationConfig, cache TranslationCache, logger *logrus.Logger) TranslationService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.HTTPTimeout)

	return &translationService{
		client:       client,
		cache:        cache,
		cacheEnabled: cfg.CacheEnabled && cache != nil,
		cacheTTL:     cfg.CacheTTL,
		logger:       logger,
	}
}

// CacheKey derives the cache key for a translation request.
func CacheKey(text, targetLanguage, sourceLanguage string) string {
	sum := sha256.Sum256([]byte(text + "\x00" + targetLanguage + "\x00" + sourceLanguage))
	return "translation_" + hex.EncodeToString(sum[:])
}

func (s *translationService) Translate(ctx context.Context, text, targetLanguage, sourceLanguage string) (string, error) {
	key := CacheKey(text, targetLanguage, sourceLanguage)

	if s.cacheEnabled {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.WithError(err).Warn("Failed to read translation cache")
		} else if ok {
			return cached, nil
		}
	}

	translated, err := s.fetch(ctx, text, targetLanguage, sourceLanguage)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"target": targetLanguage,
			"source": sourceLanguage,
		}).Error("Translation request failed")
		return "", err
	}

	if s.cacheEnabled {
		if err := s.cache.Put(ctx, key, translated, s.cacheTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to write translation cache")
		}
	}

	return translated, nil
}

func (s *translationService) fetch(ctx context.Context, text, targetLanguage, sourceLanguage string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     sourceLanguage,
			"tl":     targetLanguage,
			"dt":     "t",
			"q":      text,
		}).
		Get("/translate_a/single")
	if err != nil {
		return "", fmt.Errorf("failed to call translation API: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("translation API returned %s: %s", resp.Status(), abbreviate(resp.String(), 200))
	}

	translated, err := parseGoogleTranslation(resp.Body())
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(translated) == "" {
		return "", ErrEmptyTranslation
	}
	return translated, nil
}

// parseGoogleTranslation joins the translated segments of a translate_a/single
// response, whose first element is a list of [translated, original, ...] tuples.
func parseGoogleTranslation(body []byte) (string, error) {
	var payload []interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}
	if len(payload) == 0 {
		return "", ErrEmptyTranslation
	}

	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", ErrEmptyTranslation
	}

	var b strings.Builder
	for _, segment := range segments {
		parts, ok := segment.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if translated, ok := parts[0].(string); ok {
			b.WriteString(translated)
		}
	}
	return b.String(), nil
}

func (s *translationService) DetectLanguage(text string) string {
	return DetectISO6391(text)
}

func (s *translationService) ClearCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Flush(ctx); err != nil {
		s.logger.WithError(err).Error("Failed to clear translation cache")
		return fmt.Errorf("failed to clear translation cache: %w", err)
	}
	s.logger.Info("Translation cache cleared")
	return nil
}

func abbreviate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
