package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"translator-backend/internal/config"
	"translator-backend/internal/models"

	"github.com/go-resty/resty/v2"
)

var ErrMissingAPIKey = errors.New("speech provider API key is not configured")

var voiceRSSLanguages = map[string]string{
	"en": "en-us",
	"es": "es-es",
	"fr": "fr-fr",
	"de": "de-de",
	"it": "it-it",
	"pt": "pt-pt",
	"ja": "ja-jp",
	"zh": "zh-cn",
	"ar": "ar-sa",
	"ru": "ru-ru",
	"ko": "ko-kr",
}

// VoiceRSSSynthesizer calls the VoiceRSS text-to-speech API.
type VoiceRSSSynthesizer struct {
	apiKey string
	client *resty.Client
}

func NewVoiceRSSSynthesizer(cfg config.VoiceRSSConfig, timeout time.Duration) *VoiceRSSSynthesizer {
	return &VoiceRSSSynthesizer{
		apiKey: cfg.APIKey,
		client: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(timeout),
	}
}

func (s *VoiceRSSSynthesizer) Name() string {
	return config.TTSProviderVoiceRSS
}

func (s *VoiceRSSSynthesizer) Synthesize(ctx context.Context, text, language string, settings models.VoiceSettings) ([]byte, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("voicerss: %w", ErrMissingAPIKey)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": s.apiKey,
			"src": text,
			"hl":  voiceRSSLanguage(language),
			"c":   "MP3",
			"f":   "44khz_16bit_stereo",
			"r":   strconv.Itoa(voiceRSSRate(settings.Speed)),
		}).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("voicerss request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("voicerss returned %s: %s", resp.Status(), abbreviate(resp.String(), 200))
	}

	body := resp.Body()
	// Failures come back as 200 with a plain text "ERROR: ..." body.
	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("ERROR")) {
		return nil, fmt.Errorf("voicerss: %s", abbreviate(string(body), 200))
	}
	return body, nil
}

func voiceRSSLanguage(code string) string {
	if hl, ok := voiceRSSLanguages[code]; ok {
		return hl
	}
	return "en-us"
}

// voiceRSSRate maps a 0.5..2.0 speed multiplier onto the -10..10 rate scale.
func voiceRSSRate(speed *float64) int {
	if speed == nil {
		return 0
	}
	rate := int(math.Round((*speed - 1) * 10))
	if rate > 10 {
		return 10
	}
	if rate < -10 {
		return -10
	}
	return rate
}
