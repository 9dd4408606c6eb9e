package models

import (
	"time"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// VoiceSettings is stored as JSON on the translation row.
type VoiceSettings struct {
	Gender string   `json:"gender,omitempty" example:"female"`
	Speed  *float64 `json:"speed,omitempty" example:"1"`
	Pitch  *float64 `json:"pitch,omitempty" example:"1"`
}

// GenderOrDefault returns the requested gender, female when unset.
func (v VoiceSettings) GenderOrDefault() string {
	if v.Gender == GenderMale {
		return GenderMale
	}
	return GenderFemale
}

type Translation struct {
	ID             uint          `gorm:"primaryKey" json:"id" example:"1"`
	OriginalText   string        `gorm:"type:text;not null" json:"original_text" example:"Good morning"`
	TranslatedText string        `gorm:"type:text;not null" json:"translated_text" example:"Buenos días"`
	SourceLanguage string        `gorm:"size:10;not null" json:"source_language" example:"en"`
	TargetLanguage string        `gorm:"size:10;not null;index" json:"target_language" example:"es"`
	AudioFilePath  *string       `gorm:"size:255" json:"audio_file_path,omitempty" example:"audio/5f0c1b8e-3a51-4c33-9a43-0d9ad8a4a4d1.mp3"`
	VoiceSettings  VoiceSettings `gorm:"type:json;serializer:json" json:"voice_settings"`
	IPAddress      string        `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent      string        `gorm:"size:255" json:"user_agent,omitempty"`
	Language       *Language     `gorm:"foreignKey:TargetLanguage;references:Code" json:"language,omitempty"`
	CreatedAt      time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (Translation) TableName() string {
	return "translations"
}

// HasAudio reports whether a server-generated audio file is referenced.
func (t *Translation) HasAudio() bool {
	return t.AudioFilePath != nil && *t.AudioFilePath != ""
}

// AudioRef returns the stored audio reference or an empty string.
func (t *Translation) AudioRef() string {
	if !t.HasAudio() {
		return ""
	}
	return *t.AudioFilePath
}

// TranslationCacheEntry backs the database translation cache.
type TranslationCacheEntry struct {
	CacheKey  string    `gorm:"primaryKey;size:80" json:"cache_key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (TranslationCacheEntry) TableName() string {
	return "translation_cache"
}
