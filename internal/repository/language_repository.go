package repository

import (
	"context"
	"time"

	"translator-backend/internal/database"
	"translator-backend/internal/models"
)

type LanguageRepository interface {
	FindByCodes(ctx context.Context, codes []string) (map[string]*models.Language, error)
	FindActive(ctx context.Context) ([]models.Language, error)
	FindAll(ctx context.Context) ([]models.Language, error)
}

type languageRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewLanguageRepository(db *database.Database) LanguageRepository {
	return &languageRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *languageRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// FindByCodes returns the catalog rows for codes keyed by code. Unknown codes are absent.
func (r *languageRepository) FindByCodes(ctx context.Context, codes []string) (map[string]*models.Language, error) {
	result := make(map[string]*models.Language, len(codes))
	if len(codes) == 0 {
		return result, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var languages []models.Language
	if err := r.db.WithContext(ctx).Where("code IN ?", codes).Find(&languages).Error; err != nil {
		return nil, err
	}
	for i := range languages {
		result[languages[i].Code] = &languages[i]
	}
	return result, nil
}

func (r *languageRepository) FindActive(ctx context.Context) ([]models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var languages []models.Language
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&languages).Error
	return languages, err
}

func (r *languageRepository) FindAll(ctx context.Context) ([]models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var languages []models.Language
	err := r.db.WithContext(ctx).Order("sort_order ASC").Order("name ASC").Find(&languages).Error
	return languages, err
}
