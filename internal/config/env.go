// Package config reads settings from the environment and an optional .env file.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// DatabaseURLKeys are checked in order for a default source
var DatabaseURLKeys = []string{"FDNORM_DATABASE_URL", "DATABASE_URL"}

// LoadEnv loads the given .env files (".env" when none are given) into the
// process environment. Variables that are already set win. Missing files are
// not an error.
func LoadEnv(logger *zap.Logger, filenames ...string) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("no env file found, continuing", zap.String("file", name))
				continue
			}
			return err
		}
		logger.Debug("loaded env file", zap.String("file", name))
	}
	return nil
}

// DatabaseURL returns the first non-empty database URL variable, or ""
func DatabaseURL() string {
	for _, key := range DatabaseURLKeys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
