package repository

import (
	"context"
	"errors"
	"time"

	"translator-backend/internal/database"
	"translator-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CacheRepository is a translation cache stored in the translation_cache table.
type CacheRepository struct {
	db      *database.Database
	timeout time.Duration
	now     func() time.Time
}

func NewCacheRepository(db *database.Database) *CacheRepository {
	return &CacheRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *CacheRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Get returns the cached value for key if it has not expired.
func (r *CacheRepository) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entry models.TranslationCacheEntry
	err := r.db.WithContext(ctx).
		Where("cache_key = ? AND expires_at > ?", key, r.now()).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (r *CacheRepository) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	entry := models.TranslationCacheEntry{
		CacheKey:  key,
		Value:     value,
		ExpiresAt: r.now().Add(ttl),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at"}),
	}).Create(&entry).Error
}

// EvictExpired deletes expired entries and reports how many were removed.
func (r *CacheRepository) EvictExpired(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Where("expires_at <= ?", r.now()).Delete(&models.TranslationCacheEntry{})
	return result.RowsAffected, result.Error
}

func (r *CacheRepository) Flush(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.TranslationCacheEntry{}).Error
}
