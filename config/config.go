package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Infrastructure
	Postgres PostgresConfig
	JWT      JWTConfig
	Upload   UploadConfig

	// Tuning
	RateLimit  RateLimitConfig
	StatsCache StatsCacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret        string
	ExpiryMinutes int
}

type UploadConfig struct {
	Dir     string
	BaseURL string
}

type RateLimitConfig struct {
	AuthPerMinute int
}

// StatsCacheConfig tunes the per-owner stats snapshot cache.
// Size or TTL of zero disables it.
type StatsCacheConfig struct {
	Size int
	TTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres.dsn is required (or set DATABASE_URL)")
	}

	// JWT
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.ExpiryMinutes = viper.GetInt("jwt.expiry_minutes")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required (or set JWT_SECRET)")
	}

	// Uploads
	cfg.Upload.Dir = viper.GetString("upload.dir")
	cfg.Upload.BaseURL = viper.GetString("upload.base_url")

	// Tuning
	cfg.RateLimit.AuthPerMinute = viper.GetInt("rate_limit.auth_per_minute")
	cfg.StatsCache.Size = viper.GetInt("stats_cache.size")
	cfg.StatsCache.TTL = viper.GetDuration("stats_cache.ttl")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("postgres.max_open_conns", 25)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("jwt.expiry_minutes", 60*24)
	viper.SetDefault("upload.dir", "./uploads")
	viper.SetDefault("upload.base_url", "/uploads")
	viper.SetDefault("rate_limit.auth_per_minute", 10)
	viper.SetDefault("stats_cache.size", 1024)
	viper.SetDefault("stats_cache.ttl", "30s")
}
