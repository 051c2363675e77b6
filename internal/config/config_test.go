package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Content != "" {
		t.Fatalf("Content = %q, want empty", cfg.Content)
	}
	if cfg.SSH.Port != defaultSSHPort {
		t.Fatalf("SSH.Port = %d, want %d", cfg.SSH.Port, defaultSSHPort)
	}
	if cfg.SSH.IdleTimeout != defaultIdleTimeout {
		t.Fatalf("SSH.IdleTimeout = %v, want %v", cfg.SSH.IdleTimeout, defaultIdleTimeout)
	}
	wantPrefs := filepath.Join(home, ".config/folio/prefs.toml")
	if cfg.Prefs != wantPrefs {
		t.Fatalf("Prefs = %q, want %q", cfg.Prefs, wantPrefs)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if got := cfg.SSH.Address(); got != "0.0.0.0:2222" {
		t.Fatalf("Address() = %q, want 0.0.0.0:2222", got)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
content = "  ~/site/portfolio.yaml  "
log_level = " DEBUG "

[ssh]
host = "127.0.0.1"
port = 2323
idle_timeout = "45s"
rate_limit_per_minute = 5
burst = 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Content != filepath.Join(home, "site/portfolio.yaml") {
		t.Fatalf("Content = %q, want it under HOME %q", cfg.Content, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.SSH.Address() != "127.0.0.1:2323" {
		t.Fatalf("Address() = %q, want 127.0.0.1:2323", cfg.SSH.Address())
	}
	if cfg.SSH.IdleTimeout != 45*time.Second {
		t.Fatalf("IdleTimeout = %v, want 45s", cfg.SSH.IdleTimeout)
	}
	if cfg.SSH.RateLimitPerMinute != 5 || cfg.SSH.Burst != 2 {
		t.Fatalf("rate limit = %d/%d, want 5/2", cfg.SSH.RateLimitPerMinute, cfg.SSH.Burst)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FOLIO_SSH_PORT", "4000")
	t.Setenv("FOLIO_SSH_IDLE_TIMEOUT", "10s")
	t.Setenv("FOLIO_LOG_LEVEL", "warn")

	path := writeConfig(t, `
log_level = "debug"
[ssh]
port = 2323
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SSH.Port != 4000 {
		t.Fatalf("SSH.Port = %d, want 4000", cfg.SSH.Port)
	}
	if cfg.SSH.IdleTimeout != 10*time.Second {
		t.Fatalf("IdleTimeout = %v, want 10s", cfg.SSH.IdleTimeout)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
prefs = "   "
log_file = ""
[ssh]
host = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Defaults()
	if cfg.Prefs != want.Prefs || cfg.LogFile != want.LogFile || cfg.SSH.Host != want.SSH.Host {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `log_level = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
		want string
	}{
		{"bad duration", "[ssh]\nidle_timeout = \"soon\"\n", nil, "parse config"},
		{"port too large", "[ssh]\nport = 70000\n", nil, "ssh.port"},
		{"negative burst", "[ssh]\nburst = -1\n", nil, "ssh.burst"},
		{"unknown level", "log_level = \"loud\"\n", nil, "log_level"},
		{"bad env port", "", map[string]string{"FOLIO_SSH_PORT": "abc"}, "parse environment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
