package services

import (
	"strings"
	"sync"
	"unicode"

	"translator-backend/internal/database"

	lingua "github.com/pemistahl/lingua-go"
)

// minDetectLetters is the shortest sample the detector is asked about.
const minDetectLetters = 6

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// DetectISO6391 returns the catalog code of the language text is written in,
// or "" when the sample is too short or the detector is unsure.
func DetectISO6391(text string) string {
	sample := strings.TrimSpace(text)
	if countLetters(sample) < minDetectLetters {
		return ""
	}

	language, ok := catalogDetector().DetectLanguageOf(sample)
	if !ok {
		return ""
	}
	return isoCode(language)
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

func isoCode(language lingua.Language) string {
	code := strings.ToLower(language.IsoCode639_1().String())
	if len(code) != 2 {
		return ""
	}
	return code
}

// catalogDetector only loads models for languages in the embedded catalog.
func catalogDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		languages := catalogLinguaLanguages()
		builder := lingua.NewLanguageDetectorBuilder()
		// FromLanguages needs at least two languages.
		if len(languages) < 2 {
			detector = builder.FromAllLanguages().Build()
			return
		}
		detector = builder.FromLanguages(languages...).Build()
	})
	return detector
}

func catalogLinguaLanguages() []lingua.Language {
	catalog, err := database.CatalogLanguages()
	if err != nil {
		return nil
	}

	codes := make(map[string]struct{}, len(catalog))
	for _, language := range catalog {
		codes[language.Code] = struct{}{}
	}

	var languages []lingua.Language
	for _, language := range lingua.AllLanguages() {
		if _, ok := codes[isoCode(language)]; ok {
			languages = append(languages, language)
		}
	}
	return languages
}
