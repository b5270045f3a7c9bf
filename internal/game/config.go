package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/samdwyer/dungeoncrawl/internal/level"
)

// LevelSourceKind selects where levels are read from.
type LevelSourceKind string

const (
	// SourceEmbedded reads the levels bundled with the binary.
	SourceEmbedded LevelSourceKind = "embedded"
	// SourceDir reads level<n>.txt files from a directory.
	SourceDir LevelSourceKind = "dir"
	// SourceRedis reads levels stored in Redis.
	SourceRedis LevelSourceKind = "redis"
)

// Config holds game configuration options.
type Config struct {
	LevelSource LevelSourceKind
	LevelDir    string // Used with SourceDir
	FirstLevel  int    // Level number to start on, 1-based
	Redis       RedisConfig
	LogFile     string // Optional file for diagnostic logging while the screen is active
}

// RedisConfig holds Redis connection settings for SourceRedis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		LevelSource: LevelSourceKind(getEnvOrDefault("DUNGEONCRAWL_LEVEL_SOURCE", string(SourceEmbedded))),
		LevelDir:    getEnvOrDefault("DUNGEONCRAWL_LEVEL_DIR", "levels"),
		FirstLevel:  getEnvAsIntOrDefault("DUNGEONCRAWL_FIRST_LEVEL", 1),
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("DUNGEONCRAWL_REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("DUNGEONCRAWL_REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("DUNGEONCRAWL_REDIS_DB", 0),
		},
		LogFile: os.Getenv("DUNGEONCRAWL_LOG_FILE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	switch c.LevelSource {
	case SourceEmbedded, SourceRedis:
	case SourceDir:
		if c.LevelDir == "" {
			return fmt.Errorf("DUNGEONCRAWL_LEVEL_DIR is required for level source %q", c.LevelSource)
		}
	default:
		return fmt.Errorf("unknown level source %q", c.LevelSource)
	}
	if c.FirstLevel < 1 {
		return fmt.Errorf("DUNGEONCRAWL_FIRST_LEVEL must be at least 1, got %d", c.FirstLevel)
	}
	return nil
}

// OpenSource creates the configured level source. The returned close function
// releases any connection the source holds.
func (c *Config) OpenSource() (level.Source, func() error, error) {
	noop := func() error { return nil }

	switch c.LevelSource {
	case SourceEmbedded:
		return level.NewEmbeddedSource(), noop, nil
	case SourceDir:
		return level.NewDirSource(c.LevelDir), noop, nil
	case SourceRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
		return level.NewRedisSource(client), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown level source %q", c.LevelSource)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
