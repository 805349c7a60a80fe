// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 服務啟動所需的所有環境變數
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	// MigrateDown 為 true 時只退回所有 migration 後結束，不啟動服務
	MigrateDown bool `env:"MIGRATE_DOWN" envDefault:"false"`

	RedisAddr     string `env:"REDIS_ADDR,required,notEmpty"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret    string        `env:"JWT_SECRET,required,notEmpty"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`

	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load 從環境變數讀取設定
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("parse env: SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	return &cfg, nil
}
