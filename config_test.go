package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSaveUIConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	cfg := &uiConfig{
		Mvn:      "mvnd",
		Profiles: []string{"ci"},
		Flags:    []string{"-DskipTests"},
		Pinned:   []string{"core"},
		UsePTY:   true,
		Theme:    "dark",
	}
	if err := saveUIConfig(cfg, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var loaded uiConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(&loaded, cfg) {
		t.Errorf("expected %+v, got %+v", cfg, &loaded)
	}
}

func TestSaveUIConfigNilWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	if err := saveUIConfig(nil, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected the file to exist: %v", err)
	}
}
