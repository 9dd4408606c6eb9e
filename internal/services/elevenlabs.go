package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"translator-backend/internal/config"
	"translator-backend/internal/models"

	"github.com/go-resty/resty/v2"
)

var elevenLabsVoices = map[string]string{
	"en_female": "EXAVITQu4vr4xnSDxMaL",
	"en_male":   "TxGEqnHWrfWFTfGW9XjX",
	"female":    "Xb7hH8MSUJpSbSDYk0k2",
	"male":      "pNInz6obpgDQGcFmaJgB",
}

type elevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// ElevenLabsSynthesizer calls the ElevenLabs text-to-speech API.
type ElevenLabsSynthesizer struct {
	apiKey  string
	modelID string
	client  *resty.Client
}

func NewElevenLabsSynthesizer(cfg config.ElevenLabsConfig, timeout time.Duration) *ElevenLabsSynthesizer {
	modelID := cfg.ModelID
	if modelID == "" {
		modelID = "eleven_multilingual_v2"
	}
	return &ElevenLabsSynthesizer{
		apiKey:  cfg.APIKey,
		modelID: modelID,
		client: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(timeout),
	}
}

func (s *ElevenLabsSynthesizer) Name() string {
	return config.TTSProviderElevenLabs
}

func (s *ElevenLabsSynthesizer) Synthesize(ctx context.Context, text, language string, settings models.VoiceSettings) ([]byte, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("elevenlabs: %w", ErrMissingAPIKey)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("xi-api-key", s.apiKey).
		SetHeader("Accept", "audio/mpeg").
		SetHeader("Content-Type", "application/json").
		SetPathParam("voiceID", elevenLabsVoice(language, settings.GenderOrDefault())).
		SetBody(elevenLabsRequest{
			Text:    text,
			ModelID: s.modelID,
			VoiceSettings: elevenLabsVoiceSettings{
				Stability:       0.5,
				SimilarityBoost: 0.75,
			},
		}).
		Post("/v1/text-to-speech/{voiceID}")
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("elevenlabs returned %s: %s", resp.Status(), abbreviate(resp.String(), 200))
	}
	return resp.Body(), nil
}

// elevenLabsVoice prefers a language specific voice, then the multilingual
// voice for the gender, then the female voice.
func elevenLabsVoice(language, gender string) string {
	if voice, ok := elevenLabsVoices[language+"_"+gender]; ok {
		return voice
	}
	if voice, ok := elevenLabsVoices[gender]; ok {
		return voice
	}
	return elevenLabsVoices[models.GenderFemale]
}
