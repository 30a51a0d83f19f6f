// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	DataDir  string // base directory for the databases, always absolute
	Port     int
	LogLevel string
	DevMode  bool

	RetentionDays   int // run history kept this many days
	CacheTTLMinutes int // result cache entry lifetime
	HistoryLimit    int // default page size for run listings

	Backup *BackupConfig
}

// BackupConfig holds the optional S3 backup settings.
type BackupConfig struct {
	Enabled         bool
	Bucket          string
	Region          string
	Endpoint        string // custom endpoint for S3-compatible stores, empty for AWS
	AccessKeyID     string
	SecretAccessKey string
	Schedule        string // cron expression
	KeepCount       int    // backups retained after rotation
}

// Load reads configuration from environment variables, with an optional
// .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dataDir := getEnv("ANALYSER_DATA_DIR", "./data")
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:         absDataDir,
		Port:            getEnvAsInt("PORT", 8080),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		RetentionDays:   getEnvAsInt("RUN_RETENTION_DAYS", 90),
		CacheTTLMinutes: getEnvAsInt("CACHE_TTL_MINUTES", 60),
		HistoryLimit:    getEnvAsInt("HISTORY_LIMIT", 50),
		Backup:          loadBackupConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for unusable combinations.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RetentionDays < 1 {
		return fmt.Errorf("run retention must be at least one day, got %d", c.RetentionDays)
	}
	if c.Backup.Enabled && c.Backup.Bucket == "" {
		return fmt.Errorf("backup enabled but BACKUP_S3_BUCKET is empty")
	}
	return nil
}

// AnalysisDBPath is the run-history database location.
func (c *Config) AnalysisDBPath() string {
	return filepath.Join(c.DataDir, "analysis.db")
}

// CacheDBPath is the result-cache database location.
func (c *Config) CacheDBPath() string {
	return filepath.Join(c.DataDir, "cache.db")
}

func loadBackupConfig() *BackupConfig {
	return &BackupConfig{
		Enabled:         getEnvAsBool("BACKUP_ENABLED", false),
		Bucket:          getEnv("BACKUP_S3_BUCKET", ""),
		Region:          getEnv("BACKUP_S3_REGION", "auto"),
		Endpoint:        getEnv("BACKUP_S3_ENDPOINT", ""),
		AccessKeyID:     getEnv("BACKUP_S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("BACKUP_S3_SECRET_ACCESS_KEY", ""),
		Schedule:        getEnv("BACKUP_SCHEDULE", "0 3 * * *"),
		KeepCount:       getEnvAsInt("BACKUP_KEEP_COUNT", 7),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
