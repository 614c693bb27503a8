package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type uiConfig struct {
	Mvn      string   `yaml:"mvn,omitempty"`      // build binary, default "mvn"
	Profiles []string `yaml:"profiles,omitempty"` // -P values applied to every run
	Flags    []string `yaml:"flags,omitempty"`    // extra arguments applied to every run
	Pinned   []string `yaml:"pinned,omitempty"`   // module ids shown first in the tab row
	UsePTY   bool     `yaml:"use_pty,omitempty"`  // run every goal through a pseudo-terminal
	Theme    string   `yaml:"theme,omitempty"`    // help overlay theme: auto, light, dark
}

func loadUIConfig() (*uiConfig, string) {
	configDir := resolveConfigDir()
	path := filepath.Join(configDir, "ui.yaml")
	cfg := &uiConfig{Mvn: "mvn"}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return cfg, path
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, path
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &uiConfig{Mvn: "mvn"}, path
	}
	if cfg.Mvn == "" {
		cfg.Mvn = "mvn"
	}
	return cfg, path
}

func saveUIConfig(cfg *uiConfig, path string) error {
	if cfg == nil {
		cfg = &uiConfig{}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func resolveConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "mvndash")
}
