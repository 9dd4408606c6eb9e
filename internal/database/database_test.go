package database

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"translator-backend/internal/config"
	"translator-backend/internal/models"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Connect(config.DatabaseConfig{
		Driver:       config.DatabaseDriverSQLite,
		Path:         fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("connect sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCatalogLanguages(t *testing.T) {
	t.Parallel()

	languages, err := CatalogLanguages()
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	if len(languages) != 11 {
		t.Fatalf("expected 11 catalog languages, got %d", len(languages))
	}
	if languages[0].Code != "en" || languages[0].SortOrder != 0 {
		t.Fatalf("expected english first, got %+v", languages[0])
	}
	for _, lang := range languages {
		if !lang.IsActive {
			t.Fatalf("expected %s to be active", lang.Code)
		}
		if lang.NativeName == "" {
			t.Fatalf("expected native name for %s", lang.Code)
		}
	}
}

func TestConnectSeedsLanguages(t *testing.T) {
	db := newTestDatabase(t)

	var count int64
	if err := db.Model(&models.Language{}).Count(&count).Error; err != nil {
		t.Fatalf("count languages: %v", err)
	}
	if count != 11 {
		t.Fatalf("expected 11 seeded languages, got %d", count)
	}

	// Re-seeding restores catalog values without duplicating rows.
	if err := db.Model(&models.Language{}).Where("code = ?", "es").Update("name", "Castilian").Error; err != nil {
		t.Fatalf("update language: %v", err)
	}
	if err := SeedLanguages(context.Background(), db.DB); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if err := db.Model(&models.Language{}).Count(&count).Error; err != nil {
		t.Fatalf("count languages: %v", err)
	}
	if count != 11 {
		t.Fatalf("expected reseed to keep 11 rows, got %d", count)
	}

	var spanish models.Language
	if err := db.Where("code = ?", "es").First(&spanish).Error; err != nil {
		t.Fatalf("load spanish: %v", err)
	}
	if spanish.Name != "Spanish" {
		t.Fatalf("expected seed to restore name, got %q", spanish.Name)
	}
}

func TestSeedKeepsOperatorActivationAndOrder(t *testing.T) {
	db := newTestDatabase(t)

	err := db.Model(&models.Language{}).Where("code = ?", "ko").
		Updates(map[string]interface{}{"is_active": false, "sort_order": 99}).Error
	if err != nil {
		t.Fatalf("update korean: %v", err)
	}

	if err := SeedLanguages(context.Background(), db.DB); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	var korean models.Language
	if err := db.Where("code = ?", "ko").First(&korean).Error; err != nil {
		t.Fatalf("load korean: %v", err)
	}
	if korean.IsActive {
		t.Fatalf("expected deactivation to survive reseed")
	}
	if korean.SortOrder != 99 {
		t.Fatalf("expected sort order 99 to survive reseed, got %d", korean.SortOrder)
	}
}

func TestHealthCheck(t *testing.T) {
	db := newTestDatabase(t)
	if err := db.HealthCheck(); err != nil {
		t.Fatalf("expected healthy database, got %v", err)
	}
}
