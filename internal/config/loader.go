package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
)

// envFiles are loaded into the process environment before config is read.
// Variables already present in the environment are never overridden.
var envFiles = []string{".env", ".env.local"}

// Load builds the configuration. Precedence, highest first: process env,
// .env files, the YAML file, env-default tags.
//
// The YAML path comes from CONFIG_PATH. Without it ./config.yaml is used if
// present, otherwise only env and defaults apply. An explicit CONFIG_PATH
// that does not exist is an error.
func Load() (*Config, error) {
	return load((*Config).Validate)
}

// LoadStore reads configuration like Load but validates only the store
// settings, so auth secrets may be absent.
func LoadStore() (*Config, error) {
	return load((*Config).ValidateStore)
}

func load(validate func(*Config) error) (*Config, error) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	path, explicit := os.LookupEnv(configPathEnv)
	if !explicit || path == "" {
		path, explicit = defaultConfigPath, false
	}

	var cfg Config
	if err := read(path, explicit, &cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, explicit bool, cfg *Config) error {
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
