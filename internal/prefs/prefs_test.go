package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "folio")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"dark\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "dark" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "dark")
	}
}

func TestLoad_NormalizesCase(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"  Dark \"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "dark" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "dark")
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "dark"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != "dark" {
		t.Fatalf("Theme = %q, want %q", loaded.Theme, "dark")
	}
}

func TestLoad_EmptyThemeFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_DirectoryReportsUnavailable(t *testing.T) {
	dir := t.TempDir()

	p, err := Load(dir)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Load(dir) error = %v, want ErrUnavailable", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestSave_UnwritableReportsUnavailable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := filepath.Join(t.TempDir(), "ro")
	if err := os.MkdirAll(dir, 0o555); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	err := Save(filepath.Join(dir, "prefs.toml"), Prefs{Theme: "dark"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Save error = %v, want ErrUnavailable", err)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := File{Path: filepath.Join(t.TempDir(), "prefs.toml")}

	if err := store.Save(Prefs{Theme: "dark"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	p, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "dark" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "dark")
	}
}

func TestMemoryStore(t *testing.T) {
	var zero Memory
	p, err := zero.Load()
	if err != nil || p.Theme != defaultTheme {
		t.Fatalf("zero Memory Load = %+v, %v; want defaults", p, err)
	}

	m := NewMemory(Prefs{Theme: "dark"})
	p, _ = m.Load()
	if p.Theme != "dark" {
		t.Fatalf("Theme = %q, want dark", p.Theme)
	}
	if err := m.Save(Prefs{Theme: "light"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	p, _ = m.Load()
	if p.Theme != "light" {
		t.Fatalf("Theme = %q, want light", p.Theme)
	}
}

func TestExpandPath_ExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "a/b"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
	if _, err := ExpandPath("  "); err == nil {
		t.Fatalf("ExpandPath blank returned nil error")
	}
}
