package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"CONFIG_FILE", "PORT", "GIN_MODE", "APP_MODE", "CORS_ALLOW_ORIGIN", "SESSION_IDLE_TIMEOUT", "SESSION_SWEEP_EVERY"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff(defaults(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte(`
server:
  port: "9000"
  gin_mode: release
app:
  mode: tui
sessions:
  idle_timeout: 5m
  sweep_every: 10s
`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")
	t.Setenv("GIN_MODE", "")
	t.Setenv("APP_MODE", "")
	t.Setenv("CORS_ALLOW_ORIGIN", "https://example.com")
	t.Setenv("SESSION_IDLE_TIMEOUT", "")
	t.Setenv("SESSION_SWEEP_EVERY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := &Config{
		Port:               "9100",
		GinMode:            "release",
		AppMode:            ModeTUI,
		SessionIdleTimeout: 5 * time.Minute,
		SessionSweepEvery:  10 * time.Second,
		CORSAllowOrigin:    "https://example.com",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestApplyEnvInvalidDuration(t *testing.T) {
	cfg := defaults()
	env := map[string]string{"SESSION_IDLE_TIMEOUT": "soon"}
	if err := cfg.applyEnv(func(k string) string { return env[k] }); err == nil {
		t.Fatalf("expected invalid duration error")
	}
}

func TestApplyFileInvalidYAML(t *testing.T) {
	cfg := defaults()
	if err := cfg.applyFile([]byte("server: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	cfg.AppMode = "gui"
	if err := cfg.validate(); err == nil {
		t.Fatalf("expected invalid mode error")
	}

	cfg = defaults()
	cfg.GinMode = "verbose"
	if err := cfg.validate(); err == nil {
		t.Fatalf("expected invalid gin mode error")
	}

	cfg = defaults()
	cfg.SessionSweepEvery = 0
	if err := cfg.validate(); err == nil {
		t.Fatalf("expected invalid sweep interval error")
	}
}
