package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
pacing:
  force_timer: true
  refresh_hz: 144
scale:
  override: 2.0
log:
  enabled: true
  level: debug
  file: /tmp/picoview.log
  max_size_mb: 5
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if !cfg.Pacing.ForceTimer {
		t.Error("pacing.force_timer not parsed")
	}
	if cfg.Pacing.RefreshHz != 144 {
		t.Errorf("pacing.refresh_hz = %v, want 144", cfg.Pacing.RefreshHz)
	}
	if cfg.Scale.Override != 2.0 {
		t.Errorf("scale.override = %v, want 2.0", cfg.Scale.Override)
	}
	if !cfg.Log.Enabled || cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/picoview.log" {
		t.Errorf("log section parsed wrong: %+v", cfg.Log)
	}
}

func TestMissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error, got: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("missing file yielded %+v, want zero config", cfg)
	}
}

func TestMalformedFile(t *testing.T) {
	path := writeConfig(t, "pacing: [not a map\n")
	if _, err := LoadFromPath(path); err == nil {
		t.Error("malformed yaml should error")
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"negative refresh",
			"pacing:\n  refresh_hz: -1\n",
			"refresh_hz",
		},
		{
			"absurd refresh",
			"pacing:\n  refresh_hz: 5000\n",
			"exceeds",
		},
		{
			"negative scale",
			"scale:\n  override: -2\n",
			"scale.override",
		},
		{
			"log without file",
			"log:\n  enabled: true\n",
			"log.file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadFromPath(path)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/custom/config", "picoview", "config.yaml")
	if path != want {
		t.Errorf("DefaultPath = %q, want %q", path, want)
	}
}

func TestLoadUsesDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "picoview"), 0755); err != nil {
		t.Fatal(err)
	}
	content := "pacing:\n  refresh_hz: 75\n"
	if err := os.WriteFile(filepath.Join(dir, "picoview", "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Pacing.RefreshHz != 75 {
		t.Errorf("refresh_hz = %v, want 75", cfg.Pacing.RefreshHz)
	}
}
