package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultPort        = "8080"
	defaultDatabaseURL = "pictgram.db"
	defaultJWTTTL      = "24h"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultImageLocal  = "false"
	defaultBestEffort  = "false"
	defaultUploadDir   = "./uploads"
)

// ImageConfig controls how topic images are stored and rendered.
type ImageConfig struct {
	// Local enables saving uploads to disk and inlining them as data URIs.
	Local bool
	// BestEffort renders a topic without image data instead of failing the feed
	// when its image cannot be read.
	BestEffort bool
	UploadDir  string
}

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	Image       ImageConfig
	// CORSAllowedOrigins extends the built-in dev origins.
	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.Image = ImageConfig{
		Local:      ParseFlag(getEnv("IMAGE_LOCAL", defaultImageLocal)),
		BestEffort: ParseFlag(getEnv("IMAGE_BEST_EFFORT", defaultBestEffort)),
		UploadDir:  strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir)),
	}

	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config: env=%s port=%s image_local=%t image_best_effort=%t upload_dir=%s",
		cfg.AppEnv, cfg.Port, cfg.Image.Local, cfg.Image.BestEffort, cfg.Image.UploadDir)

	return cfg, nil
}

// ParseFlag reports whether v spells "true", ignoring case. Every other value,
// padded or malformed ones included, is false.
func ParseFlag(v string) bool {
	return strings.EqualFold(v, "true")
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.Image.Local && cfg.Image.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR must not be empty when IMAGE_LOCAL=true")
	}
	if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

// IsProduction reports whether the service runs with release settings.
func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
