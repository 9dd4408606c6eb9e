package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type MaintenanceReport struct {
	AudioDeleted int
	CacheEvicted int64
}

// Maintenance removes expired audio files and cache entries.
type Maintenance struct {
	speech    SpeechService
	cache     TranslationCache
	retention time.Duration
	logger    *logrus.Logger
}

func NewMaintenance(speech SpeechService, cache TranslationCache, retention time.Duration, logger *logrus.Logger) *Maintenance {
	return &Maintenance{
		speech:    speech,
		cache:     cache,
		retention: retention,
		logger:    logger,
	}
}

func (m *Maintenance) RunOnce(ctx context.Context) MaintenanceReport {
	var report MaintenanceReport

	if m.retention > 0 {
		report.AudioDeleted = m.speech.CleanupOldAudio(ctx, m.retention)
	}

	if m.cache != nil {
		evicted, err := m.cache.EvictExpired(ctx)
		if err != nil {
			m.logger.WithError(err).Warn("Failed to evict expired cache entries")
		}
		report.CacheEvicted = evicted
	}

	m.logger.WithFields(logrus.Fields{
		"audio_deleted": report.AudioDeleted,
		"cache_evicted": report.CacheEvicted,
	}).Debug("Maintenance run completed")

	return report
}

// Run calls RunOnce immediately and then every interval until ctx is done.
func (m *Maintenance) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	m.RunOnce(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.RunOnce(ctx)
		}
	}
}
