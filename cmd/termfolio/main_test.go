package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/termfolio/internal/config"
)

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template must decode: %v", err)
	}
	if cfg.UI.Theme != nil || cfg.Contact.Endpoint != nil {
		t.Fatalf("template values must be commented out")
	}
}

func TestApplyStringConfigFlagWins(t *testing.T) {
	var target string
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().StringVar(&target, "theme", "dark", "")
	fileValue := "light"

	applyStringConfig(cmd, "theme", &target, &fileValue)
	if target != "light" {
		t.Fatalf("expected config value, got %q", target)
	}

	if err := cmd.Flags().Set("theme", "dark"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	applyStringConfig(cmd, "theme", &target, &fileValue)
	if target != "dark" {
		t.Fatalf("expected flag to win, got %q", target)
	}
}

func TestValidateCategory(t *testing.T) {
	cats := []string{"All", "Web Dev"}
	if err := validateCategory("Web Dev", cats); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateCategory("Games", cats); err == nil {
		t.Fatalf("expected unknown category error")
	}
}

func TestValidateUIConfig(t *testing.T) {
	if err := validateUIConfig("dark", 50, 800, 4000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateUIConfig("neon", 50, 800, 4000); err == nil {
		t.Fatalf("expected theme error")
	}
	if err := validateUIConfig("light", 0, 800, 4000); err == nil {
		t.Fatalf("expected char delay error")
	}
	if err := validateUIConfig("dark", 50, 0, 4000); err == nil {
		t.Fatalf("expected line pause error")
	}
}
