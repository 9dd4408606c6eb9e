package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	TTSProviderWeb        = "web"
	TTSProviderVoiceRSS   = "voicerss"
	TTSProviderElevenLabs = "elevenlabs"

	StorageDriverLocal = "local"
	StorageDriverMinIO = "minio"

	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"

	CacheDriverDatabase = "database"
	CacheDriverMemory   = "memory"
)

type Config struct {
	Environment string `envconfig:"GO_ENV" default:"dev"`
	Debug       bool   `envconfig:"APP_DEBUG" default:"false"`

	Server      ServerConfig
	Database    DatabaseConfig `envconfig:"DB"`
	Storage     StorageConfig
	MinIO       MinIOConfig `envconfig:"AWS"`
	Translation TranslationConfig
	TTS         TTSConfig
	VoiceRSS    VoiceRSSConfig   `envconfig:"VOICERSS"`
	ElevenLabs  ElevenLabsConfig `envconfig:"ELEVENLABS"`
	Audio       AudioConfig
}

type ServerConfig struct {
	Port         string        `split_words:"true" default:"8000"`
	ReadTimeout  time.Duration `split_words:"true" default:"30s"`
	WriteTimeout time.Duration `split_words:"true" default:"60s"`
}

// DatabaseConfig is read from DB_* variables. DB_PATH is only used by the sqlite driver.
type DatabaseConfig struct {
	Driver          string        `split_words:"true" default:"postgres"`
	Host            string        `split_words:"true" default:"localhost"`
	Port            string        `split_words:"true" default:"5432"`
	User            string        `split_words:"true" default:"postgres"`
	Password        string        `split_words:"true" default:"postgres"`
	Name            string        `split_words:"true" default:"translator_db"`
	SSLMode         string        `split_words:"true" default:"disable"`
	Path            string        `split_words:"true" default:"storage/translator.db"`
	MaxOpenConns    int           `split_words:"true" default:"25"`
	MaxIdleConns    int           `split_words:"true" default:"5"`
	ConnMaxLifetime time.Duration `split_words:"true" default:"5m"`
	QueryTimeout    time.Duration `split_words:"true" default:"10s"`
}

// StorageConfig selects where generated audio files live.
type StorageConfig struct {
	Driver     string `split_words:"true" default:"local"`
	LocalDir   string `split_words:"true" default:"storage/app/public"`
	PublicPath string `split_words:"true" default:"/storage"`
}

type MinIOConfig struct {
	Endpoint        string `split_words:"true" default:"localhost:9000"`
	AccessKeyID     string `split_words:"true"`
	SecretAccessKey string `split_words:"true"`
	Bucket          string `split_words:"true" default:"translations"`
	Region          string `split_words:"true" default:"us-east-1"`
	UseSSL          bool   `split_words:"true" default:"false"`
	PublicURL       string `split_words:"true" default:"http://localhost:9000"`
}

type TranslationConfig struct {
	BaseURL           string        `split_words:"true" default:"https://translate.googleapis.com"`
	SourceLanguage    string        `split_words:"true" default:"en"`
	HTTPTimeout       time.Duration `split_words:"true" default:"15s"`
	Concurrency       int           `split_words:"true" default:"4"`
	CacheEnabled      bool          `split_words:"true" default:"true"`
	CacheTTL          time.Duration `split_words:"true" default:"24h"`
	CacheDriver       string        `split_words:"true" default:"database"`
	CacheFlushOnStart bool          `split_words:"true" default:"false"`
}

type TTSConfig struct {
	Provider    string        `split_words:"true" default:"web"`
	HTTPTimeout time.Duration `split_words:"true" default:"30s"`
}

type VoiceRSSConfig struct {
	APIKey  string `split_words:"true"`
	BaseURL string `split_words:"true" default:"https://api.voicerss.org"`
}

type ElevenLabsConfig struct {
	APIKey  string `split_words:"true"`
	BaseURL string `split_words:"true" default:"https://api.elevenlabs.io"`
	ModelID string `split_words:"true" default:"eleven_multilingual_v2"`
}

type AudioConfig struct {
	Retention       time.Duration `split_words:"true" default:"168h"`
	CleanupInterval time.Duration `split_words:"true" default:"24h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.TTS.Provider = strings.ToLower(strings.TrimSpace(cfg.TTS.Provider))
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	cfg.Translation.CacheDriver = strings.ToLower(strings.TrimSpace(cfg.Translation.CacheDriver))

	return &cfg, nil
}

// DSN returns PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
		c.SSLMode,
	)
}

// IsDevelopment reports whether GO_ENV names a development environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// RequiresServerSpeech reports whether audio is generated on the server.
func (c *Config) RequiresServerSpeech() bool {
	return c.TTS.Provider != TTSProviderWeb
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DatabaseDriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
	case DatabaseDriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Storage.Driver {
	case StorageDriverLocal:
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("STORAGE_LOCAL_DIR is required for local storage")
		}
	case StorageDriverMinIO:
		if c.MinIO.AccessKeyID == "" {
			return fmt.Errorf("AWS_ACCESS_KEY_ID is required for MinIO")
		}
		if c.MinIO.SecretAccessKey == "" {
			return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required for MinIO")
		}
		if c.MinIO.Endpoint == "" {
			return fmt.Errorf("AWS_ENDPOINT is required for MinIO")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	switch c.TTS.Provider {
	case TTSProviderWeb:
	case TTSProviderVoiceRSS:
		if c.VoiceRSS.APIKey == "" {
			return fmt.Errorf("VOICERSS_API_KEY is required when TTS_PROVIDER=voicerss")
		}
	case TTSProviderElevenLabs:
		if c.ElevenLabs.APIKey == "" {
			return fmt.Errorf("ELEVENLABS_API_KEY is required when TTS_PROVIDER=elevenlabs")
		}
	default:
		return fmt.Errorf("unsupported TTS_PROVIDER %q", c.TTS.Provider)
	}

	switch c.Translation.CacheDriver {
	case CacheDriverDatabase, CacheDriverMemory:
	default:
		return fmt.Errorf("unsupported TRANSLATION_CACHE_DRIVER %q", c.Translation.CacheDriver)
	}

	if c.Translation.Concurrency < 1 {
		return fmt.Errorf("TRANSLATION_CONCURRENCY must be >= 1")
	}
	if c.Translation.SourceLanguage == "" {
		return fmt.Errorf("TRANSLATION_SOURCE_LANGUAGE is required")
	}

	return nil
}
