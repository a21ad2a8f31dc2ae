package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings, loaded from the environment with
// an optional .env file
type Config struct {
	Addr     string
	METARURL string
	AppEnv   string
	LogLevel slog.Level
}

// LoadConfig reads configuration from the environment. A missing .env
// file is fine in production.
func LoadConfig() (Config, error) {
	godotenv.Load()

	appEnv := getEnv("APP_ENV", "dev")
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Addr:     getEnv("ADDR", ":8080"),
		METARURL: getEnv("METAR_API_URL", DefaultMETARURL),
		AppEnv:   appEnv,
		LogLevel: level,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
