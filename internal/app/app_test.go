package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/five82/folio/internal/content"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/theme"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// isolate points HOME and every path setting at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FOLIO_LOG_FILE", filepath.Join(home, "folio.log"))
	t.Setenv("FOLIO_PREFS", filepath.Join(home, "prefs.toml"))
	return home
}

func TestPrintPage(t *testing.T) {
	var buf bytes.Buffer
	if err := printPage(&buf, content.Default(), theme.Dark); err != nil {
		t.Fatalf("printPage: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, content.Default().Profile.Name) {
		t.Fatalf("page missing profile name:\n%s", out)
	}
	if !strings.Contains(out, "Showing 4 projects") {
		t.Fatalf("page missing projects section")
	}
}

func TestRunHeadlessPrintsPage(t *testing.T) {
	home := isolate(t)

	path := filepath.Join(home, "portfolio.yaml")
	writePortfolio(t, path, "Headless Person")

	var buf bytes.Buffer
	err := Run(context.Background(), Options{
		ConfigPath:  filepath.Join(home, "missing.toml"),
		ContentPath: path,
		Stdout:      &buf,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(buf.String(), "Headless Person") {
		t.Fatalf("headless output missing content from %s", path)
	}
}

func TestRunRejectsInvalidContent(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "portfolio.yaml")
	if err := os.WriteFile(path, []byte("nope: true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := Run(context.Background(), Options{ContentPath: path, Stdout: &bytes.Buffer{}})
	if err == nil || !strings.Contains(err.Error(), "load content") {
		t.Fatalf("Run error = %v, want load content error", err)
	}
}

func TestTheme(t *testing.T) {
	home := isolate(t)
	prefsPath := filepath.Join(home, "prefs.toml")

	var buf bytes.Buffer
	opts := Options{Stdout: &buf}

	if err := Theme(opts, false); err != nil {
		t.Fatalf("Theme: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "light" {
		t.Fatalf("Theme = %q, want light", got)
	}

	buf.Reset()
	if err := Theme(opts, true); err != nil {
		t.Fatalf("Theme toggle: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "dark" {
		t.Fatalf("Theme toggle = %q, want dark", got)
	}

	saved, err := prefs.Load(prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != "dark" {
		t.Fatalf("saved theme = %q, want dark", saved.Theme)
	}

	// The flag beats the environment.
	other := filepath.Join(home, "other.toml")
	buf.Reset()
	if err := Theme(Options{PrefsPath: other, Stdout: &buf}, false); err != nil {
		t.Fatalf("Theme: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "light" {
		t.Fatalf("Theme with --prefs = %q, want light", got)
	}
}

func TestThemeToggleFailsWhenNotSaved(t *testing.T) {
	home := isolate(t)
	blocker := filepath.Join(home, "blocker")
	if err := os.WriteFile(blocker, []byte("file"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	var buf bytes.Buffer
	opts := Options{PrefsPath: filepath.Join(blocker, "prefs.toml"), Stdout: &buf}
	err := Theme(opts, true)
	if !errors.Is(err, prefs.ErrUnavailable) {
		t.Fatalf("Theme toggle error = %v, want ErrUnavailable", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("Theme toggle printed %q after a failed save", buf.String())
	}

	logs, err := os.ReadFile(filepath.Join(home, "folio.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(logs), "theme preference not saved") {
		t.Fatalf("log missing save failure:\n%s", logs)
	}
}

func TestLogsFormatsLogFile(t *testing.T) {
	home := isolate(t)
	logPath := filepath.Join(home, "folio.log")

	logger, err := newLogger(logPath, "info", false, false)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("first")
	logger.Warn("second", zap.String("path", "/tmp/x y"))
	_ = logger.Sync()

	var buf bytes.Buffer
	if err := Logs(Options{Stdout: &buf}, 10); err != nil {
		t.Fatalf("Logs: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry written at info level:\n%s", out)
	}
	for _, want := range []string{"INFO  [folio] first", "WARN  [folio] second", `path="/tmp/x y"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("Logs output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := Logs(Options{Stdout: &buf}, 1); err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if strings.Contains(buf.String(), "first") {
		t.Fatalf("Logs -n 1 printed more than one line:\n%s", buf.String())
	}
}

func TestLogsEmpty(t *testing.T) {
	isolate(t)
	var buf bytes.Buffer
	if err := Logs(Options{Stdout: &buf}, 10); err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if !strings.Contains(buf.String(), "no log entries") {
		t.Fatalf("Logs output = %q", buf.String())
	}
}

func TestNewLogger(t *testing.T) {
	dir := t.TempDir()
	if _, err := newLogger(filepath.Join(dir, "x.log"), "loud", false, false); err == nil {
		t.Fatalf("newLogger accepted an invalid level")
	}

	logger, err := newLogger(filepath.Join(dir, "nested", "x.log"), "error", true, false)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Fatalf("verbose logger does not log debug")
	}
	if _, err := os.Stat(filepath.Join(dir, "nested")); err != nil {
		t.Fatalf("log dir not created: %v", err)
	}

	nop, err := newLogger("", "info", false, false)
	if err != nil || nop.Core().Enabled(zap.ErrorLevel) {
		t.Fatalf("logger without outputs should be a no-op")
	}
}
