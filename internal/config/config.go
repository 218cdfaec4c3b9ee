package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Sync     SyncConfig     `json:"sync"`
	Notify   NotifyConfig   `json:"notify"`
	APIKey   string         `json:"api_key,omitempty"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// SyncConfig is the reconciliation window of the live synchronization
// layer. Kept as configuration so tests can run it at compressed scale.
type SyncConfig struct {
	// StaggerDelays are the extra refetches scheduled after each change
	// notification, on top of the immediate one, to converge past the
	// store's read-after-write lag.
	StaggerDelays []time.Duration `json:"stagger_delays"`
	// FallbackInterval is the polling cadence used while the push channel
	// is not confirmed healthy.
	FallbackInterval time.Duration `json:"fallback_interval"`
	// SubscribeGrace is how long after start the feed may stay silent
	// before fallback polling kicks in.
	SubscribeGrace time.Duration `json:"subscribe_grace"`
	// ReconnectDelay paces feed re-subscription attempts.
	ReconnectDelay time.Duration `json:"reconnect_delay"`
	// StatsCacheTTL bounds staleness of the cached stats snapshot.
	StatsCacheTTL time.Duration `json:"stats_cache_ttl"`
}

type NotifyConfig struct {
	WebhookURL string `json:"webhook_url"`
	Disabled   bool   `json:"disabled"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "drewbert_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Sync: SyncConfig{
			StaggerDelays: []time.Duration{
				getEnvDuration("SYNC_STAGGER_1", 1 * time.Second),
				getEnvDuration("SYNC_STAGGER_2", 3 * time.Second),
			},
			FallbackInterval: getEnvDuration("SYNC_FALLBACK_INTERVAL", 15*time.Second),
			SubscribeGrace:   getEnvDuration("SYNC_SUBSCRIBE_GRACE", 5*time.Second),
			ReconnectDelay:   getEnvDuration("SYNC_RECONNECT_DELAY", 2*time.Second),
			StatsCacheTTL:    getEnvDuration("SYNC_STATS_CACHE_TTL", 30*time.Second),
		},
		Notify: NotifyConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
			Disabled:   getEnvBool("NOTIFY_DISABLED", false),
		},
		APIKey: getEnv("API_KEY", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if len(c.Sync.StaggerDelays) == 0 {
		return errors.New("SYNC_STAGGER delays required")
	}
	if c.Sync.FallbackInterval <= 0 || c.Sync.SubscribeGrace <= 0 {
		return errors.New("SYNC_FALLBACK_INTERVAL and SYNC_SUBSCRIBE_GRACE must be positive")
	}

	if !c.Notify.Disabled && c.Notify.WebhookURL == "" {
		c.Notify.Disabled = true
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
