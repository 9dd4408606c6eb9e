package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"translator-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed languages.yaml
var languagesYAML []byte

// CatalogLanguages parses the embedded language catalog.
func CatalogLanguages() ([]models.Language, error) {
	var languages []models.Language
	if err := yaml.Unmarshal(languagesYAML, &languages); err != nil {
		return nil, fmt.Errorf("failed to parse language catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(languages))
	for i := range languages {
		code := strings.ToLower(strings.TrimSpace(languages[i].Code))
		if code == "" {
			return nil, fmt.Errorf("language catalog entry %d has no code", i)
		}
		if _, dup := seen[code]; dup {
			return nil, fmt.Errorf("language catalog has duplicate code %q", code)
		}
		seen[code] = struct{}{}
		languages[i].Code = code
	}
	return languages, nil
}

// SeedLanguages upserts the embedded catalog by code. Display names follow the
// catalog; is_active and sort_order are only written when a code is first inserted.
func SeedLanguages(ctx context.Context, db *gorm.DB) error {
	languages, err := CatalogLanguages()
	if err != nil {
		return err
	}
	if len(languages) == 0 {
		return nil
	}

	err = db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "native_name", "updated_at"}),
	}).Create(&languages).Error
	if err != nil {
		return err
	}

	logrus.WithField("languages", len(languages)).Info("Language catalog seeded")
	return nil
}
