package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// unsetenv clears keys for the test. envconfig only applies defaults to
// variables that are absent, not to ones set to "".
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "GO_ENV", "SERVER_PORT", "TTS_PROVIDER", "DB_DRIVER", "DB_PATH",
		"TRANSLATION_CACHE_TTL", "TRANSLATION_CACHE_ENABLED", "AUDIO_RETENTION")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.Server.Port)
	}
	if cfg.TTS.Provider != TTSProviderWeb {
		t.Fatalf("expected web provider by default, got %q", cfg.TTS.Provider)
	}
	if cfg.Translation.CacheTTL != 24*time.Hour {
		t.Fatalf("expected 24h cache ttl, got %s", cfg.Translation.CacheTTL)
	}
	if !cfg.Translation.CacheEnabled {
		t.Fatalf("expected translation cache enabled by default")
	}
	if cfg.Audio.Retention != 7*24*time.Hour {
		t.Fatalf("expected 7 day audio retention, got %s", cfg.Audio.Retention)
	}
	if cfg.Database.Path != "storage/translator.db" {
		t.Fatalf("expected sqlite path default, got %q", cfg.Database.Path)
	}
	if cfg.RequiresServerSpeech() {
		t.Fatalf("web provider must not require server speech")
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected dev environment by default")
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5433", User: "app", Password: "secret", Name: "translator", SSLMode: "require"}

	want := "host=db port=5433 user=app password=secret dbname=translator sslmode=require TimeZone=UTC connect_timeout=10"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/translator.db")
	t.Setenv("TTS_PROVIDER", " ElevenLabs ")
	t.Setenv("ELEVENLABS_API_KEY", "xi-key")
	t.Setenv("TRANSLATION_CACHE_TTL", "90m")
	t.Setenv("TRANSLATION_CACHE_ENABLED", "false")
	t.Setenv("AWS_ACCESS_KEY_ID", "minio")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != DatabaseDriverSQLite {
		t.Fatalf("expected normalized sqlite driver, got %q", cfg.Database.Driver)
	}
	if cfg.Database.Path != "/tmp/translator.db" {
		t.Fatalf("expected DB_PATH to be honored, got %q", cfg.Database.Path)
	}
	if cfg.TTS.Provider != TTSProviderElevenLabs {
		t.Fatalf("expected normalized elevenlabs provider, got %q", cfg.TTS.Provider)
	}
	if cfg.ElevenLabs.APIKey != "xi-key" {
		t.Fatalf("expected elevenlabs key, got %q", cfg.ElevenLabs.APIKey)
	}
	if cfg.Translation.CacheTTL != 90*time.Minute {
		t.Fatalf("expected 90m ttl, got %s", cfg.Translation.CacheTTL)
	}
	if cfg.Translation.CacheEnabled {
		t.Fatalf("expected cache to be disabled")
	}
	if cfg.MinIO.AccessKeyID != "minio" {
		t.Fatalf("expected AWS_ACCESS_KEY_ID to be honored, got %q", cfg.MinIO.AccessKeyID)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() *Config {
		return &Config{
			Database:    DatabaseConfig{Driver: DatabaseDriverPostgres, Host: "localhost"},
			Storage:     StorageConfig{Driver: StorageDriverLocal, LocalDir: "storage"},
			Translation: TranslationConfig{SourceLanguage: "en", Concurrency: 1, CacheDriver: CacheDriverMemory},
			TTS:         TTSConfig{Provider: TTSProviderWeb},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "voicerss without key", mutate: func(c *Config) { c.TTS.Provider = TTSProviderVoiceRSS }, wantErr: "VOICERSS_API_KEY"},
		{name: "unknown provider", mutate: func(c *Config) { c.TTS.Provider = "polly" }, wantErr: "TTS_PROVIDER"},
		{name: "minio without credentials", mutate: func(c *Config) { c.Storage.Driver = StorageDriverMinIO }, wantErr: "AWS_ACCESS_KEY_ID"},
		{name: "unknown database driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "DB_DRIVER"},
		{name: "zero concurrency", mutate: func(c *Config) { c.Translation.Concurrency = 0 }, wantErr: "TRANSLATION_CONCURRENCY"},
		{name: "unknown cache driver", mutate: func(c *Config) { c.Translation.CacheDriver = "redis" }, wantErr: "TRANSLATION_CACHE_DRIVER"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}
