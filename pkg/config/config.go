package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Auth    AuthConfig
	Session SessionConfig
	Redis   RedisConfig
	Media   MediaConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Session.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SCRAPDASH_APP_ENV" default:"development"`
	LogLevel     string `envconfig:"SCRAPDASH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SCRAPDASH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type APIConfig struct {
	BaseURL   string        `envconfig:"SCRAPDASH_API_BASE_URL" required:"true"`
	Timeout   time.Duration `envconfig:"SCRAPDASH_API_TIMEOUT" default:"30s"`
	UserAgent string        `envconfig:"SCRAPDASH_API_USER_AGENT" default:"scrapdash-cli"`
}

func (a APIConfig) validate() error {
	parsed, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", EnvAPIBaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL", EnvAPIBaseURL)
	}
	return nil
}

type AuthConfig struct {
	// LogoutOn403 clears the stored session when the backend answers 403.
	// The backend treats 403 as "authenticated but not allowed", so the
	// default keeps the session.
	LogoutOn403   bool          `envconfig:"SCRAPDASH_AUTH_LOGOUT_ON_403" default:"false"`
	RefreshLeeway time.Duration `envconfig:"SCRAPDASH_AUTH_REFRESH_LEEWAY" default:"30s"`
}

type SessionConfig struct {
	Backend    string `envconfig:"SCRAPDASH_SESSION_BACKEND" default:"file"`
	Path       string `envconfig:"SCRAPDASH_SESSION_PATH"`
	Passphrase string `envconfig:"SCRAPDASH_SESSION_PASSPHRASE"`
	// Name namespaces the Redis-held session so several operators can share
	// one Redis instance.
	Name string `envconfig:"SCRAPDASH_SESSION_NAME" default:"default"`
}

func (s SessionConfig) validate() error {
	switch s.Backend {
	case SessionBackendFile, SessionBackendRedis, SessionBackendMemory:
		return nil
	}
	return fmt.Errorf("unknown session backend %q", s.Backend)
}

type RedisConfig struct {
	URL          string        `envconfig:"SCRAPDASH_REDIS_URL"`
	Address      string        `envconfig:"SCRAPDASH_REDIS_ADDR"`
	Password     string        `envconfig:"SCRAPDASH_REDIS_PASSWORD"`
	DB           int           `envconfig:"SCRAPDASH_REDIS_DB" default:"0"`
	DialTimeout  time.Duration `envconfig:"SCRAPDASH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SCRAPDASH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SCRAPDASH_REDIS_WRITE_TIMEOUT" default:"5s"`
	SessionTTL   time.Duration `envconfig:"SCRAPDASH_REDIS_SESSION_TTL" default:"720h"`
}

type MediaConfig struct {
	MaxUploadMB int `envconfig:"SCRAPDASH_MAX_UPLOAD_MB" default:"10"`
}

// MaxUploadBytes converts the configured megabyte cap to bytes.
func (m MediaConfig) MaxUploadBytes() int64 {
	if m.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return int64(m.MaxUploadMB) << 20
}
