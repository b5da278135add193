// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Contact   ContactConfig   `toml:"contact"`
	Animation AnimationConfig `toml:"animation"`
	UI        UIConfig        `toml:"ui"`
	Server    ServerConfig    `toml:"server"`
}

// ContactConfig maps contact relay settings.
type ContactConfig struct {
	Endpoint  *string `toml:"endpoint"`
	AccessKey *string `toml:"access-key"`
	TimeoutMs *int    `toml:"timeout-ms"`
}

// AnimationConfig maps typewriter cadence.
type AnimationConfig struct {
	CharDelayMs *int `toml:"char-delay-ms"`
	LinePauseMs *int `toml:"line-pause-ms"`
}

// UIConfig maps terminal UI settings.
type UIConfig struct {
	Theme            *string `toml:"theme"`
	Content          *string `toml:"content"`
	Intro            *bool   `toml:"intro"`
	NoticeMs         *int    `toml:"notice-ms"`
	SectionThreshold *int    `toml:"section-threshold"`
	TopThreshold     *int    `toml:"top-threshold"`
}

// ServerConfig maps HTTP mode settings.
type ServerConfig struct {
	Addr          *string `toml:"addr"`
	RatePerMinute *int    `toml:"rate-per-minute"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
