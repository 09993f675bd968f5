// Package config loads server settings from the environment.
// A .env file in the working directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverJSONFile = "jsonfile"
	DriverMongo    = "mongo"
)

type Config struct {
	Port  int
	Store StoreConfig
	Lock  LockConfig
	Auth  AuthConfig
	Log   LogConfig

	// SeedFile overrides the built-in seed categories when set.
	SeedFile string
}

type StoreConfig struct {
	Driver        string
	SQLitePath    string
	JSONPath      string
	MongoURI      string
	MongoDatabase string
}

// LockConfig enables the cross-process store lock when RedisURL is set.
type LockConfig struct {
	RedisURL string
	Key      string
	TTL      time.Duration
	Timeout  time.Duration
}

type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration

	// TrustUserHeader accepts X-User-ID without a token.
	TrustUserHeader bool
}

type LogConfig struct {
	Level  slog.Level
	Format string
}

// Load reads .env, if any, and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	lockTTL, err := getEnvDuration("LOCK_TTL", 10*time.Second)
	if err != nil {
		return nil, err
	}
	lockTimeout, err := getEnvDuration("LOCK_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	tokenDuration, err := getEnvDuration("TOKEN_DURATION", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnvString("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Store: StoreConfig{
			Driver:        strings.ToLower(getEnvString("STORE_DRIVER", DriverSQLite)),
			SQLitePath:    getEnvString("DB_PATH", "./data/fintrack.db"),
			JSONPath:      getEnvString("JSON_DB_PATH", "./data/db.json"),
			MongoURI:      getEnvString("MONGO_URI", ""),
			MongoDatabase: getEnvString("MONGO_DATABASE", "fintrack"),
		},
		Lock: LockConfig{
			RedisURL: getEnvString("REDIS_URL", ""),
			Key:      getEnvString("LOCK_KEY", "fintrack:store"),
			TTL:      lockTTL,
			Timeout:  lockTimeout,
		},
		Auth: AuthConfig{
			JWTSecret:       getEnvString("JWT_SECRET", ""),
			TokenDuration:   tokenDuration,
			TrustUserHeader: getEnvBool("AUTH_TRUST_USER_HEADER", false),
		},
		Log: LogConfig{
			Level:  level,
			Format: strings.ToLower(getEnvString("LOG_FORMAT", "text")),
		},
		SeedFile: getEnvString("SEED_FILE", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverJSONFile:
	case DriverMongo:
		if c.Store.MongoURI == "" {
			return errors.New("MONGO_URI is required when STORE_DRIVER=mongo")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
