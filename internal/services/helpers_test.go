package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"translator-backend/internal/config"
	"translator-backend/internal/database"
	"translator-backend/internal/models"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(config.DatabaseConfig{
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

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()

	storage, err := NewLocalStorage(t.TempDir(), "/storage", newTestLogger())
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}
	return storage
}

type fakeTranslationService struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error
}

func (f *fakeTranslationService) Translate(_ context.Context, text, target, _ string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, target)
	f.mu.Unlock()

	if err, ok := f.fail[target]; ok {
		return "", err
	}
	return "[" + target + "] " + text, nil
}

func (f *fakeTranslationService) DetectLanguage(string) string { return "" }

func (f *fakeTranslationService) ClearCache(context.Context) error { return nil }

func (f *fakeTranslationService) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeSynthesizer struct {
	mu    sync.Mutex
	calls int
	audio []byte
	err   error
}

func (f *fakeSynthesizer) Name() string { return "fake" }

func (f *fakeSynthesizer) Synthesize(context.Context, string, string, models.VoiceSettings) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

var errVendorDown = errors.New("vendor unavailable")
