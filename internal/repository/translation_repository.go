package repository

import (
	"context"
	"errors"
	"time"

	"translator-backend/internal/database"
	"translator-backend/internal/models"

	"gorm.io/gorm"
)

var ErrTranslationNotFound = errors.New("translation not found")

type TranslationRepository interface {
	Create(ctx context.Context, translation *models.Translation) error
	FindByID(ctx context.Context, id uint) (*models.Translation, error)
	FindAll(ctx context.Context, page, limit int, language string) ([]models.Translation, int64, error)
	FindRecent(ctx context.Context, limit int) ([]models.Translation, error)
	FindWithAudio(ctx context.Context) ([]models.Translation, error)
	Delete(ctx context.Context, id uint) error
	DeleteAllExcept(ctx context.Context, keep []uint) (int64, error)
}

type translationRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewTranslationRepository(db *database.Database) TranslationRepository {
	return &translationRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *translationRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *translationRepository) Create(ctx context.Context, translation *models.Translation) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Language").Create(translation).Error
}

func (r *translationRepository) FindByID(ctx context.Context, id uint) (*models.Translation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translation models.Translation
	err := r.db.WithContext(ctx).Preload("Language").First(&translation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTranslationNotFound
		}
		return nil, err
	}
	return &translation, nil
}

// FindAll returns one page of history, newest first, optionally limited to one target language.
func (r *translationRepository) FindAll(ctx context.Context, page, limit int, language string) ([]models.Translation, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translations []models.Translation
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Translation{})
	if language != "" {
		query = query.Where("target_language = ?", language)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	// Past the last page. Checked before the offset is computed so huge page
	// numbers cannot overflow it.
	if page > 1 && int64(page-1) >= (total+int64(limit)-1)/int64(limit) {
		return []models.Translation{}, total, nil
	}

	offset := (page - 1) * limit
	err := query.Preload("Language").
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&translations).Error
	if err != nil {
		return nil, 0, err
	}

	return translations, total, nil
}

func (r *translationRepository) FindRecent(ctx context.Context, limit int) ([]models.Translation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translations []models.Translation
	err := r.db.WithContext(ctx).
		Preload("Language").
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&translations).Error
	return translations, err
}

// FindWithAudio returns the id and audio reference of every record that has audio.
func (r *translationRepository) FindWithAudio(ctx context.Context) ([]models.Translation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translations []models.Translation
	err := r.db.WithContext(ctx).
		Select("id", "audio_file_path").
		Where("audio_file_path IS NOT NULL AND audio_file_path <> ''").
		Order("id ASC").
		Find(&translations).Error
	return translations, err
}

func (r *translationRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Translation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTranslationNotFound
	}
	return nil
}

// DeleteAllExcept removes every record whose id is not in keep.
func (r *translationRepository) DeleteAllExcept(ctx context.Context, keep []uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Where("1 = 1")
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}
	result := query.Delete(&models.Translation{})
	return result.RowsAffected, result.Error
}
