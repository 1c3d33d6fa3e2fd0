package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	InputPath  string
	OutputPath string
	DBPath     string

	FDCAPIBaseURL   string
	FDCAPIKey       string
	FDCRateLimitRPS int
	FDCTimeoutMs    int

	LogLevel  string
	LogFormat string
}

// Load builds the configuration. Every field has a compiled-in default, so
// the program runs with an empty environment; env vars only override.
func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		InputPath:  getEnv("FDC_INPUT_PATH", filepath.Join(cwd, "data", "fdc_ids.txt")),
		OutputPath: getEnv("FDC_OUTPUT_PATH", filepath.Join(cwd, "out", "report.csv")),
		DBPath:     getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),

		FDCAPIBaseURL:   getEnv("FDC_API_BASE_URL", "https://api.nal.usda.gov/fdc/v1"),
		FDCAPIKey:       getEnv("FDC_API_KEY", "DEMO_KEY"),
		FDCRateLimitRPS: getEnvInt("FDC_RATE_LIMIT_RPS", 2),
		FDCTimeoutMs:    getEnvInt("FDC_TIMEOUT_MS", 30000),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
