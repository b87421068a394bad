package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultPath = "./config.yaml"

// Load reads the YAML file named by CONFIG_PATH (fallback ./config.yaml) and
// overlays environment variables; env-default tags fill the rest. A missing
// fallback file is fine, a missing explicit one is an error.
func Load() (*Config, error) {
	return loadFrom(os.Getenv("CONFIG_PATH"))
}

func loadFrom(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadDotEnv exports variables from the given files (default ./.env) into the
// process environment without overriding values that are already set.
// Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}
	return nil
}

// Usage lists every environment variable the service reads, with defaults.
func Usage() (string, error) {
	header := "Environment variables (override values from CONFIG_PATH):"
	return cleanenv.GetDescription(&Config{}, &header)
}
