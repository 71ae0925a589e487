// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server settings
type Config struct {
	Port     string
	LogLevel string

	DatabaseURL     string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnLifetime  time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	PageCacheTTL    time.Duration
	AnalyticsFlush  string
	CORSAllowOrigin string

	AWSRegion      string
	AWSBucket      string
	AssetPrefix    string
	AssetPublicURL string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
}

// UsesS3 reports whether uploads go to S3. Without a bucket uploads stay in memory.
func (c *Config) UsesS3() bool {
	return c.AWSBucket != ""
}

// Load reads an optional .env file, then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from getenv. DATABASE_URL and JWT_SECRET are required.
func FromEnv(getenv func(string) string) (*Config, error) {
	e := env{getenv: getenv}

	cfg := &Config{
		Port:     e.str("PORT", "8080"),
		LogLevel: e.str("LOG_LEVEL", "info"),

		DatabaseURL:     e.required("DATABASE_URL"),
		DBMaxOpenConns:  e.int("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:  e.int("DB_MAX_IDLE_CONNS", 5),
		DBConnLifetime:  e.duration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		RedisAddr:       e.str("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   e.str("REDIS_PASS", ""),
		RedisDB:         e.int("REDIS_DB", 0),
		PageCacheTTL:    e.duration("PAGE_CACHE_TTL", 10*time.Minute),
		AnalyticsFlush:  e.str("ANALYTICS_FLUSH_SPEC", "@every 15m"),
		CORSAllowOrigin: e.str("CORS_ALLOW_ORIGINS", "*"),

		AWSRegion:      e.str("AWS_REGION", "us-east-1"),
		AWSBucket:      e.str("AWS_BUCKET", ""),
		AssetPrefix:    e.str("ASSET_PREFIX", "uploads"),
		AssetPublicURL: e.str("ASSET_PUBLIC_URL", ""),

		JWTSecret:   e.required("JWT_SECRET"),
		JWTIssuer:   e.str("JWT_ISSUER", ""),
		JWTAudience: e.str("JWT_AUDIENCE", "authenticated"),
	}

	if len(e.errs) > 0 {
		return nil, errors.Join(e.errs...)
	}
	return cfg, nil
}

type env struct {
	getenv func(string) string
	errs   []error
}

func (e *env) str(key, def string) string {
	if v := strings.TrimSpace(e.getenv(key)); v != "" {
		return v
	}
	return def
}

func (e *env) required(key string) string {
	v := e.str(key, "")
	if v == "" {
		e.errs = append(e.errs, fmt.Errorf("%s is required", key))
	}
	return v
}

func (e *env) int(key string, def int) int {
	raw := e.str(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: invalid integer %q", key, raw))
		return def
	}
	return n
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	raw := e.str(key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: invalid duration %q", key, raw))
		return def
	}
	return d
}
