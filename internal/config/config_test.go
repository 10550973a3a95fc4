package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"OPENAI_API_KEY", "OPENAI_API_ENDPOINT", "OPENAI_MODEL", "OCR_EXTRACTOR_CONFIG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "" {
		t.Errorf("expected empty api key, got %q", cfg.APIKey)
	}
	if cfg.Endpoint != "https://api.openai.com/v1" {
		t.Errorf("unexpected endpoint: %q", cfg.Endpoint)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("unexpected model: %q", cfg.Model)
	}
	if cfg.MaxTokens != 1000 {
		t.Errorf("unexpected max tokens: %d", cfg.MaxTokens)
	}
	if cfg.Detail != "high" {
		t.Errorf("unexpected detail: %q", cfg.Detail)
	}
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "sk-env" {
		t.Errorf("api key not read from env: %q", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model not read from env: %q", cfg.Model)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OCR_TEST_SECRET", "sk-from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "apiKey: ${OCR_TEST_SECRET}\nmodel: gpt-4o-mini\nmaxTokens: 2000\ndetail: low\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "sk-from-env" {
		t.Errorf("env expansion failed: %q", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model not read from file: %q", cfg.Model)
	}
	if cfg.MaxTokens != 2000 {
		t.Errorf("max tokens not read from file: %d", cfg.MaxTokens)
	}
	if cfg.Detail != "low" {
		t.Errorf("detail not read from file: %q", cfg.Detail)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: gpt-4o-mini\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("env should win over file, got %q", cfg.Model)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for explicitly named missing config file")
	}
}

func TestLoad_EnvNamedFileMayBeAbsent(t *testing.T) {
	clearEnv(t)
	t.Setenv("OCR_EXTRACTOR_CONFIG", filepath.Join(t.TempDir(), "maybe.yaml"))

	if _, err := Load(""); err != nil {
		t.Fatalf("env-named missing file should not fail Load: %v", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for malformed yaml")
	}
}
