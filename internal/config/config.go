// Package config loads application configuration from environment variables.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr       string
	DBPath           string
	NotificationPath string
	// SecretKey is the 32-byte AES-256 key for sealing credentials; nil when unset.
	SecretKey   []byte
	CSRFEnabled bool
}

// HasSecretKey returns true when DEPLOYDROP_SECRET_KEY was provided. The
// server refuses to start without it.
func (c *Config) HasSecretKey() bool {
	return c.SecretKey != nil
}

// Load reads configuration from environment variables and returns a validated Config.
// Before reading, the file named by DEPLOYDROP_ENV_FILE (default ".env") is loaded
// when it exists; variables already set in the environment take precedence.
// Optional variables with defaults: DEPLOYDROP_LISTEN_ADDR (127.0.0.1:8080),
// DEPLOYDROP_DB_PATH (deploydrop.db), DEPLOYDROP_NOTIFICATION_PATH (notification.txt),
// DEPLOYDROP_CSRF (false). DEPLOYDROP_SECRET_KEY must be 64 hex characters when set.
func Load() (*Config, error) {
	envFile := ".env"
	if v, ok := os.LookupEnv("DEPLOYDROP_ENV_FILE"); ok {
		envFile = v
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("DEPLOYDROP_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "deploydrop.db"
	if v, ok := os.LookupEnv("DEPLOYDROP_DB_PATH"); ok {
		dbPath = v
	}

	notificationPath := "notification.txt"
	if v, ok := os.LookupEnv("DEPLOYDROP_NOTIFICATION_PATH"); ok {
		notificationPath = v
	}

	var secretKey []byte
	if v, ok := os.LookupEnv("DEPLOYDROP_SECRET_KEY"); ok && v != "" {
		key, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("DEPLOYDROP_SECRET_KEY must be hex-encoded: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("DEPLOYDROP_SECRET_KEY must decode to 32 bytes, got %d", len(key))
		}
		secretKey = key
	}

	csrf := false
	if v, ok := os.LookupEnv("DEPLOYDROP_CSRF"); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("DEPLOYDROP_CSRF has invalid boolean %q: %w", v, err)
		}
		csrf = parsed
	}

	return &Config{
		ListenAddr:       listenAddr,
		DBPath:           dbPath,
		NotificationPath: notificationPath,
		SecretKey:        secretKey,
		CSRFEnabled:      csrf,
	}, nil
}
