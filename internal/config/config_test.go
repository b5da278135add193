package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.UI.Theme != nil || cfg.Contact.Endpoint != nil {
		t.Fatalf("expected empty config")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[contact]
endpoint = "http://localhost:9999/submit"
timeout-ms = 2500

[animation]
char-delay-ms = 20

[ui]
theme = "light"
intro = false
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Contact.Endpoint == nil || *cfg.Contact.Endpoint != "http://localhost:9999/submit" {
		t.Fatalf("unexpected endpoint")
	}
	if cfg.Contact.TimeoutMs == nil || *cfg.Contact.TimeoutMs != 2500 {
		t.Fatalf("unexpected timeout")
	}
	if cfg.Animation.CharDelayMs == nil || *cfg.Animation.CharDelayMs != 20 {
		t.Fatalf("unexpected char delay")
	}
	if cfg.Animation.LinePauseMs != nil {
		t.Fatalf("unset values must stay nil")
	}
	if cfg.UI.Intro == nil || *cfg.UI.Intro {
		t.Fatalf("expected intro=false")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ncolour = \"red\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(AccessKeyEnv+"=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv(AccessKeyEnv, "from-env")
	if err := LoadDotEnv(dir, filepath.Join(dir, "missing")); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := ResolveAccessKey(nil); got != "from-env" {
		t.Fatalf("expected environment to win, got %q", got)
	}
}

func TestLoadDotEnvSetsKey(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(AccessKeyEnv+"=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv(AccessKeyEnv, "")
	if err := os.Unsetenv(AccessKeyEnv); err != nil {
		t.Fatalf("unset: %v", err)
	}
	if err := LoadDotEnv(dir); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := ResolveAccessKey(nil); got != "from-file" {
		t.Fatalf("expected key from .env, got %q", got)
	}
}

func TestResolveAccessKeyFallsBackToFile(t *testing.T) {
	t.Setenv(AccessKeyEnv, "")
	v := " file-key "
	if got := ResolveAccessKey(&v); got != "file-key" {
		t.Fatalf("expected file key, got %q", got)
	}
	if got := ResolveAccessKey(nil); got != "" {
		t.Fatalf("expected empty key, got %q", got)
	}
}
