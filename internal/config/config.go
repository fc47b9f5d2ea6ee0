package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	GroupMode   bool
	HTTPTimeout time.Duration
	HealthAddr  string
	Storage     string
	TMDB        TMDBConfig
	Redis       RedisConfig
	Streaming   StreamingConfig
}

// TMDBConfig holds movie database settings
type TMDBConfig struct {
	APIKey   string
	BaseURL  string
	Language string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// StreamingConfig holds "watch on" link settings
type StreamingConfig struct {
	Enabled   bool
	Name      string
	SearchURL string
	Selector  string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:   os.Getenv("BOT_TOKEN"),
		HealthAddr: os.Getenv("HEALTH_ADDR"),
		Storage:    getEnv("STORAGE", StorageMemory),
		TMDB: TMDBConfig{
			APIKey:   os.Getenv("TMDB_API_KEY"),
			BaseURL:  getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			Language: getEnv("TMDB_LANGUAGE", "ru"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Streaming: StreamingConfig{
			Name:      getEnv("STREAMING_NAME", "Кинопоиск"),
			SearchURL: getEnv("STREAMING_SEARCH_URL", "https://www.kinopoisk.ru/index.php?kp_query="),
			Selector:  getEnv("STREAMING_RESULT_SELECTOR", `a[href*="/film/"]`),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.TMDB.APIKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is required")
	}

	var err error
	if cfg.GroupMode, err = getBool("GROUP_MODE", false); err != nil {
		return nil, err
	}
	if cfg.Streaming.Enabled, err = getBool("STREAMING_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Redis.TTL, err = getDuration("REDIS_TTL", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	if cfg.Storage != StorageMemory && cfg.Storage != StorageRedis {
		return nil, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageMemory, StorageRedis, cfg.Storage)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return parsed, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}
