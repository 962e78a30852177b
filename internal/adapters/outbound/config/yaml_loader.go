package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/repohealth/internal/domain"
)

const fileName = ".repohealth.yaml"

// Environment variables consulted for the API token, in order.
var tokenEnvVars = []string{"GITHUB_TOKEN", "GH_TOKEN"}

// YAMLLoader implements domain.ConfigLoader by reading .repohealth.yaml and
// an optional .env file from the same directory.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .repohealth.yaml from dir and fills unset fields with defaults.
// A missing file is not an error. The token always comes from the
// environment, never from the YAML file.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	cfg, err := readFile(dir)
	if err != nil {
		return domain.Config{}, err
	}
	cfg = cfg.WithDefaults()
	cfg.Token = TokenFromEnv(dir)
	return cfg, nil
}

func readFile(dir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate the raw input so typos are reported instead of defaulted away.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// TokenFromEnv loads dir/.env if present (without overriding variables that
// are already set) and returns the first non-empty token variable.
func TokenFromEnv(dir string) string {
	_ = godotenv.Load(filepath.Join(dir, ".env"))
	for _, name := range tokenEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
