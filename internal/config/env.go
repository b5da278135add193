package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// AccessKeyEnv names the environment variable holding the relay access key.
const AccessKeyEnv = "TERMFOLIO_ACCESS_KEY"

// LoadDotEnv loads .env files from each dir. Variables already set in the
// environment are not overridden, and missing files are skipped.
func LoadDotEnv(dirs ...string) error {
	for _, dir := range dirs {
		path := filepath.Join(dir, ".env")
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ResolveAccessKey returns the access key from the environment, falling back
// to the config file value. An empty result is allowed; it surfaces when a
// message is sent.
func ResolveAccessKey(fileValue *string) string {
	if v := strings.TrimSpace(os.Getenv(AccessKeyEnv)); v != "" {
		return v
	}
	if fileValue != nil {
		return strings.TrimSpace(*fileValue)
	}
	return ""
}
