package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingPort = errors.New("missing PORT environment variable (set it in the environment or in .env)")

type Config struct {
	Port string

	// DatabaseURL vacío => modo dev in-memory.
	DatabaseURL string
	// Local desactiva SSL hacia la DB (sslmode=disable).
	Local        bool
	EnsureSchema bool

	LogLevel  string
	LogFormat string
	AppName   string

	ShutdownTimeout time.Duration
}

// Load lee .env (si existe) y después el entorno.
// Variables:
// - PORT (obligatoria)
// - DATABASE_URL o DB_DSN
// - LOCAL=1 para conectar sin SSL
// - DB_ENSURE_SCHEMA=true|false (default true)
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
// - SHUTDOWN_TIMEOUT=10s
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv no pisa variables ya definidas
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	return FromEnv(os.Getenv)
}

// FromEnv arma la config desde un lookup (os.Getenv en prod, map en tests).
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:            strings.TrimSpace(getenv("PORT")),
		DatabaseURL:     strings.TrimSpace(getenv("DATABASE_URL")),
		Local:           strings.TrimSpace(getenv("LOCAL")) != "",
		EnsureSchema:    true,
		LogLevel:        getenv("LOG_LEVEL"),
		LogFormat:       getenv("LOG_FORMAT"),
		AppName:         strings.TrimSpace(getenv("APP_NAME")),
		ShutdownTimeout: 10 * time.Second,
	}

	if cfg.Port == "" {
		return Config{}, ErrMissingPort
	}
	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = strings.TrimSpace(getenv("DB_DSN"))
	}

	if v := strings.TrimSpace(getenv("DB_ENSURE_SCHEMA")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DB_ENSURE_SCHEMA %q: %w", v, err)
		}
		cfg.EnsureSchema = b
	}

	if v := strings.TrimSpace(getenv("SHUTDOWN_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	if cfg.AppName == "" {
		cfg.AppName = "breed-registry"
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
