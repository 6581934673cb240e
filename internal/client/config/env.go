package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvAPIBase  = "MOODJOURNAL_API_BASE"
	EnvDatabase = "MOODJOURNAL_DB"
	EnvLogLevel = "MOODJOURNAL_LOG_LEVEL"
)

// parseEnv overlays cfg with values from envFile and the process
// environment. Process variables win over the file, as with godotenv.Load,
// but the process environment itself is left untouched. A missing file is
// not an error.
func parseEnv(cfg *Config, envFile string) error {
	fileVars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", envFile, err)
		}
		fileVars = map[string]string{}
	}

	getEnv := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		if v, ok := fileVars[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	cfg.APIBaseURL = getEnv(EnvAPIBase, cfg.APIBaseURL)
	cfg.DatabasePath = getEnv(EnvDatabase, cfg.DatabasePath)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	return nil
}
