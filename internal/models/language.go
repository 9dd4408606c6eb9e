package models

import "time"

type Language struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Code       string    `gorm:"uniqueIndex;not null;size:10" json:"code" yaml:"code"` // ISO 639-1 code (e.g., 'es', 'ja')
	Name       string    `gorm:"not null;size:100" json:"name" yaml:"name"`            // English name (e.g., 'Spanish')
	NativeName string    `gorm:"size:100" json:"native_name" yaml:"native_name"`       // Name in its own script (e.g., 'Español')
	IsActive   bool      `gorm:"not null;index" json:"is_active" yaml:"is_active"`
	SortOrder  int       `gorm:"not null" json:"sort_order" yaml:"sort_order"`
	CreatedAt  time.Time `json:"created_at" yaml:"-"`
	UpdatedAt  time.Time `json:"updated_at" yaml:"-"`
}

func (Language) TableName() string {
	return "languages"
}

// LanguageInfo is the display form of a language attached to translation results.
type LanguageInfo struct {
	Code       string `json:"code" example:"es"`
	Name       string `json:"name" example:"Spanish"`
	NativeName string `json:"native_name" example:"Español"`
}

// DisplayInfo resolves the display names for code, falling back to the raw code
// when the catalog has no row for it.
func DisplayInfo(code string, language *Language) LanguageInfo {
	if language == nil {
		return LanguageInfo{Code: code, Name: code, NativeName: code}
	}
	info := LanguageInfo{Code: code, Name: language.Name, NativeName: language.NativeName}
	if info.Name == "" {
		info.Name = code
	}
	if info.NativeName == "" {
		info.NativeName = info.Name
	}
	return info
}
