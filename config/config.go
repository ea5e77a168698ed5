// Package config loads application settings from the environment and an
// optional YAML file. Precedence: environment > file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultModel     = "gemini-2.5-flash"
	defaultMaxTokens = 1000
	defaultOutputDir = "output"
)

// ErrAPIKeyMissing is returned when no Gemini API key can be found.
var ErrAPIKeyMissing = errors.New(
	"GEMINI_API_KEY not set: export it or put it in a .env file")

// Config holds all settings for one process invocation. It is constructed
// once at startup and passed by reference to collaborators.
type Config struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	OutputDir string `yaml:"output_dir"`
}

// Load builds a Config from a .env file (if present) and the environment.
// A missing API key is a fatal configuration error.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile is Load with an additional YAML config file layered below
// the environment. An empty path skips the file layer; a named file that
// does not exist is an error.
func LoadWithFile(path string) (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Model:     defaultModel,
		MaxTokens: defaultMaxTokens,
		OutputDir: defaultOutputDir,
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_TOKENS %q: %w", v, err)
		}
		cfg.MaxTokens = n
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	if cfg.APIKey == "" {
		return nil, ErrAPIKeyMissing
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if file.APIKey != "" {
		c.APIKey = file.APIKey
	}
	if file.Model != "" {
		c.Model = file.Model
	}
	if file.MaxTokens != 0 {
		c.MaxTokens = file.MaxTokens
	}
	if file.OutputDir != "" {
		c.OutputDir = file.OutputDir
	}
	return nil
}
