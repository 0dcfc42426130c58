package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nicholas-gates/book-recommendations/internal/recommender"
)

// Config holds the tunable settings for the recommenders. The Gemini API
// key is deliberately not part of the file; it always comes from the
// GEMINI_API_KEY environment variable.
type Config struct {
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
	ArtifactDir     string  `yaml:"artifact_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:           recommender.DefaultModel,
		Temperature:     recommender.DefaultTemperature,
		MaxOutputTokens: recommender.DefaultMaxOutputTokens,
		ArtifactDir:     ".",
	}
}

// Params returns the generation parameters described by the config
func (c *Config) Params() recommender.Params {
	return recommender.Params{
		Temperature:     c.Temperature,
		MaxOutputTokens: c.MaxOutputTokens,
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "bookrec"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file. A missing file is not an error; it returns
// (nil, nil) so callers can fall back to DefaultConfig.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
