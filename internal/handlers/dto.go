package handlers

import (
	"unicode/utf8"

	"translator-backend/internal/models"
	"translator-backend/internal/services"
	"translator-backend/internal/utils"
)

const historyTimeFormat = "2006-01-02 15:04:05"

// TranslateRequest documents the POST /translate body.
type TranslateRequest struct {
	Text          string                `json:"text" example:"Good morning"`
	Languages     []string              `json:"languages" example:"es,fr"`
	VoiceSettings *models.VoiceSettings `json:"voice_settings,omitempty"`
}

type DetectRequest struct {
	Text string `json:"text" example:"Bonjour tout le monde"`
}

type TranslateResponse struct {
	Success      bool                         `json:"success" example:"true"`
	Message      string                       `json:"message" example:"Translation completed successfully"`
	Translations []services.TranslationResult `json:"translations"`
}

type DetectResponse struct {
	Success  bool    `json:"success" example:"true"`
	Language *string `json:"language" example:"fr"`
}

type LanguagesResponse struct {
	Success   bool              `json:"success" example:"true"`
	Languages []models.Language `json:"languages"`
}

// TranslationItem is a history record as shown to clients.
type TranslationItem struct {
	ID             uint                 `json:"id" example:"1"`
	OriginalText   string               `json:"original_text" example:"Good morning"`
	TranslatedText string               `json:"translated_text" example:"Buenos días"`
	Language       models.LanguageInfo  `json:"language"`
	AudioURL       *string              `json:"audio_url" example:"/storage/audio/5f0c1b8e-3a51-4c33-9a43-0d9ad8a4a4d1.mp3"`
	VoiceSettings  models.VoiceSettings `json:"voice_settings"`
	CreatedAt      string               `json:"created_at" example:"2026-01-02 15:04:05"`
}

type TranslationItemResponse struct {
	Success     bool            `json:"success" example:"true"`
	Translation TranslationItem `json:"translation"`
}

type HistoryResponse struct {
	Success      bool                 `json:"success" example:"true"`
	Translations []TranslationItem    `json:"translations"`
	Meta         utils.PaginationMeta `json:"meta"`
}

func newTranslationItem(translation *models.Translation, audioURL *string) TranslationItem {
	return TranslationItem{
		ID:             translation.ID,
		OriginalText:   translation.OriginalText,
		TranslatedText: translation.TranslatedText,
		Language:       models.DisplayInfo(translation.TargetLanguage, translation.Language),
		AudioURL:       audioURL,
		VoiceSettings:  translation.VoiceSettings,
		CreatedAt:      translation.CreatedAt.Format(historyTimeFormat),
	}
}

func newTranslationItems(translations []models.Translation, history services.HistoryService) []TranslationItem {
	items := make([]TranslationItem, 0, len(translations))
	for i := range translations {
		items = append(items, newTranslationItem(&translations[i], history.AudioURL(&translations[i])))
	}
	return items
}

// truncate shortens s to at most limit runes.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
