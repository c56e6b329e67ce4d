package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loading missing config: %v", err)
	}
	if cfg.IndexPath == "" {
		t.Error("default config should have an index path")
	}
	if len(cfg.Roots) != 0 {
		t.Errorf("default config should have no roots, got %v", cfg.Roots)
	}
}

func TestLoadConfigParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
index_path = "/var/lib/everfind/index.db"
roots = ["/home/user", "/srv/data"]
exclude = [".git", "*.tmp"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.IndexPath != "/var/lib/everfind/index.db" {
		t.Errorf("index path: got %q", cfg.IndexPath)
	}
	if len(cfg.Roots) != 2 || cfg.Roots[0] != "/home/user" {
		t.Errorf("roots: got %v", cfg.Roots)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[1] != "*.tmp" {
		t.Errorf("exclude: got %v", cfg.Exclude)
	}
}

func TestSaveAndReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := &Config{
		IndexPath: "/tmp/index.db",
		Roots:     []string{"/tmp"},
		Exclude:   []string{"*.bak"},
	}

	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("saving config: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if loaded.IndexPath != cfg.IndexPath || len(loaded.Roots) != 1 || len(loaded.Exclude) != 1 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestSaveTemplateConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := &Config{IndexPath: "/custom/index.db"}

	if err := cfg.SaveTemplateConfig(path); err != nil {
		t.Fatalf("saving template: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading template: %v", err)
	}
	if !strings.Contains(string(data), `index_path = "/custom/index.db"`) {
		t.Errorf("template should use the configured index path:\n%s", data)
	}
}
