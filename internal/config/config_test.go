package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/fintrack/internal/models"
)

var envKeys = []string{
	"PORT", "STORE_DRIVER", "DB_PATH", "JSON_DB_PATH", "MONGO_URI", "MONGO_DATABASE",
	"REDIS_URL", "LOCK_KEY", "LOCK_TTL", "LOCK_TIMEOUT", "JWT_SECRET", "TOKEN_DURATION",
	"AUTH_TRUST_USER_HEADER", "LOG_LEVEL", "LOG_FORMAT", "SEED_FILE",
}

func TestLoad(t *testing.T) {
	// Run from an empty directory so no stray .env is picked up.
	t.Chdir(t.TempDir())
	for _, key := range envKeys {
		t.Setenv(key, "")
	}

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Port != 8080 {
			t.Errorf("Port: expected 8080, got %d", cfg.Port)
		}
		if cfg.Store.Driver != DriverSQLite {
			t.Errorf("Driver: expected sqlite, got %s", cfg.Store.Driver)
		}
		if cfg.Auth.TokenDuration != 24*time.Hour {
			t.Errorf("TokenDuration: expected 24h, got %s", cfg.Auth.TokenDuration)
		}
		if cfg.Auth.TrustUserHeader {
			t.Error("TrustUserHeader: expected false by default")
		}
		if cfg.Log.Level != slog.LevelInfo {
			t.Errorf("Level: expected info, got %s", cfg.Log.Level)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PORT", "9090")
		t.Setenv("STORE_DRIVER", "JSONFILE")
		t.Setenv("LOCK_TIMEOUT", "250ms")
		t.Setenv("AUTH_TRUST_USER_HEADER", "true")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Port != 9090 || cfg.Store.Driver != DriverJSONFile || cfg.Lock.Timeout != 250*time.Millisecond {
			t.Errorf("Unexpected config: %+v", cfg)
		}
		if !cfg.Auth.TrustUserHeader || cfg.Log.Level != slog.LevelDebug || cfg.Log.Format != "json" {
			t.Errorf("Unexpected auth/log config: %+v %+v", cfg.Auth, cfg.Log)
		}
	})

	t.Run("dotenv", func(t *testing.T) {
		if err := os.WriteFile(".env", []byte("JWT_SECRET=from-dotenv\nPORT=7070\n"), 0600); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}
		defer os.Remove(".env")
		// godotenv never overrides variables that are already set.
		t.Setenv("JWT_SECRET", "")
		os.Unsetenv("JWT_SECRET")
		t.Setenv("PORT", "")
		os.Unsetenv("PORT")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Auth.JWTSecret != "from-dotenv" || cfg.Port != 7070 {
			t.Errorf("expected values from .env, got secret=%q port=%d", cfg.Auth.JWTSecret, cfg.Port)
		}
	})

	errorCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{"JWT_SECRET": ""}},
		{name: "unknown driver", env: map[string]string{"JWT_SECRET": "s", "STORE_DRIVER": "postgres"}},
		{name: "mongo without uri", env: map[string]string{"JWT_SECRET": "s", "STORE_DRIVER": "mongo"}},
		{name: "bad duration", env: map[string]string{"JWT_SECRET": "s", "LOCK_TTL": "soon"}},
		{name: "bad level", env: map[string]string{"JWT_SECRET": "s", "LOG_LEVEL": "loud"}},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSeedCategories(t *testing.T) {
	t.Run("built-in", func(t *testing.T) {
		seeds, err := (&Config{}).SeedCategories()
		if err != nil {
			t.Fatalf("SeedCategories failed: %v", err)
		}
		if len(seeds) != 5 {
			t.Fatalf("expected 5 seeds, got %d", len(seeds))
		}
		if seeds[0].Name != "seedCategories.salary" || seeds[0].Type != models.Income {
			t.Errorf("unexpected first seed: %+v", seeds[0])
		}
		for _, s := range seeds[1:] {
			if s.Type != models.Expense {
				t.Errorf("expected expense seed, got %+v", s)
			}
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seeds.yaml")
		data := "categories:\n  - name: Wages\n    type: income\n    icon: briefcase\n    color: \"#000000\"\n"
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatalf("failed to write seeds: %v", err)
		}

		seeds, err := (&Config{SeedFile: path}).SeedCategories()
		if err != nil {
			t.Fatalf("SeedCategories failed: %v", err)
		}
		if len(seeds) != 1 || seeds[0].Name != "Wages" || seeds[0].Icon != "briefcase" {
			t.Errorf("unexpected seeds: %+v", seeds)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		if _, err := parseSeeds([]byte("categories:\n  - name: X\n    type: transfer\n"), "test"); err == nil {
			t.Error("expected error for invalid type")
		}
	})
}
