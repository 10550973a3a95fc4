package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config stores runtime configuration for the CLI, assembled from an optional
// YAML file and environment variables. Environment values win over the file.
type Config struct {
	APIKey    string `yaml:"apiKey"`
	Endpoint  string `yaml:"endpoint"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"maxTokens"`
	Detail    string `yaml:"detail"`
}

// Load reads configuration from the environment, providing sensible defaults.
// A .env file in the working directory is honored for development. When path
// is empty the OCR_EXTRACTOR_CONFIG env var may name the YAML file; a file
// named explicitly must exist, one picked up from the env may be absent.
func Load(path string) (Config, error) {
	// Load .env file if it exists (useful for development)
	_ = godotenv.Load()

	var cfg Config

	explicit := path != ""
	if path == "" {
		path = os.Getenv("OCR_EXTRACTOR_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if explicit || !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else {
			// Expand ${VAR} references so secrets can stay out of the file.
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	cfg.Endpoint = getEnv("OPENAI_API_ENDPOINT", orDefault(cfg.Endpoint, "https://api.openai.com/v1"))
	cfg.Model = getEnv("OPENAI_MODEL", orDefault(cfg.Model, "gpt-4o"))
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1000
	}
	if cfg.Detail == "" {
		cfg.Detail = "high"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func orDefault(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}
