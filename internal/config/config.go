package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	AppEnv     string
	APITimeout time.Duration
	RateLimit  float64
	RateBurst  int

	StorageDriver string
	StoragePath   string
	StorageSecret string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	MetricsAddr string
}

const (
	defaultTimeout       = 15 * time.Second
	defaultRateLimit     = 5
	defaultRateBurst     = 10
	defaultStorageDriver = "file"
	defaultStoragePath   = ".marketplace/session.json"
)

func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load reads .env (if any) and the process environment. Only API_BASE_URL is
// mandatory; everything else falls back to a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		AppEnv:        os.Getenv("APP_ENV"),
		APITimeout:    durationEnv("API_TIMEOUT", defaultTimeout),
		RateLimit:     floatEnv("API_RATE_LIMIT", defaultRateLimit),
		RateBurst:     intEnv("API_RATE_BURST", defaultRateBurst),
		StorageDriver: stringEnv("STORAGE_DRIVER", defaultStorageDriver),
		StoragePath:   stringEnv("STORAGE_PATH", defaultStoragePath),
		StorageSecret: os.Getenv("STORAGE_SECRET"),
		MetricsAddr:   os.Getenv("METRICS_ADDR"),
	}
	databaseFromEnv(cfg)

	if cfg.APIBaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	return cfg, nil
}

// LoadDatabase reads only the DB_* settings. The migrate command uses it, so
// API_BASE_URL is not required there.
func LoadDatabase() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{AppEnv: os.Getenv("APP_ENV")}
	databaseFromEnv(cfg)

	if cfg.DBHost == "" {
		return nil, ErrMissingDBHost
	}
	return cfg, nil
}

func databaseFromEnv(cfg *Config) {
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBPort = stringEnv("DB_PORT", "5432")
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func floatEnv(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Printf("invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
