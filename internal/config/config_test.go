package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"todaysthought/internal/prompts"
)

// isolate points HOME and the config path at a temp dir and clears env overrides.
func isolate(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TODAYSTHOUGHT_CONFIG", "")
	t.Setenv("TODAYSTHOUGHT_VAULT", "")
	t.Setenv("TODAYSTHOUGHT_FOLDER", "")
	t.Setenv("TODAYSTHOUGHT_FORMAT", "")
	return home
}

func writeConfig(t *testing.T, home, content string) {
	dir := filepath.Join(home, ".config", "todaysthought")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Default(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Vault != filepath.Join(home, "vault") {
		t.Errorf("expected default vault, got %q", cfg.Vault)
	}
	if cfg.DailyNoteFolder != "/Journal" {
		t.Errorf("expected folder '/Journal', got %q", cfg.DailyNoteFolder)
	}
	if cfg.DailyNoteFormat != "YYYY-MM-DD" {
		t.Errorf("expected format 'YYYY-MM-DD', got %q", cfg.DailyNoteFormat)
	}
	if len(cfg.Prompts) != len(prompts.Defaults()) {
		t.Errorf("expected %d default prompts, got %d", len(prompts.Defaults()), len(cfg.Prompts))
	}
}

func TestLoad_FileMergesOverDefaults(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `{"dailyNoteFolder": "/Daily"}`)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DailyNoteFolder != "/Daily" {
		t.Errorf("expected folder from file, got %q", cfg.DailyNoteFolder)
	}
	if cfg.DailyNoteFormat != "YYYY-MM-DD" {
		t.Errorf("expected default format, got %q", cfg.DailyNoteFormat)
	}
	if len(cfg.Prompts) != len(prompts.Defaults()) {
		t.Errorf("expected default prompts when file has none, got %v", cfg.Prompts)
	}
}

func TestLoad_EmptyPromptListIsKept(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `{"prompts": []}`)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Prompts) != 0 {
		t.Errorf("expected saved empty list to be kept, got %v", cfg.Prompts)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `{not json`)

	if _, err := Load(CLIFlags{}); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestLoad_EnvVar(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `{"dailyNoteFolder": "/Daily"}`)
	t.Setenv("TODAYSTHOUGHT_FOLDER", "/FromEnv")
	t.Setenv("TODAYSTHOUGHT_VAULT", "/tmp/env-vault")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DailyNoteFolder != "/FromEnv" {
		t.Errorf("expected env folder, got %q", cfg.DailyNoteFolder)
	}
	if cfg.Vault != "/tmp/env-vault" {
		t.Errorf("expected env vault, got %q", cfg.Vault)
	}
}

func TestLoad_CLIFlags(t *testing.T) {
	isolate(t)
	t.Setenv("TODAYSTHOUGHT_FORMAT", "DD-MM-YYYY")

	cfg, err := Load(CLIFlags{Format: "YYYY/MM/DD", Vault: "/tmp/cli-vault"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// CLI flags should override env vars
	if cfg.DailyNoteFormat != "YYYY/MM/DD" {
		t.Errorf("expected flag format, got %q", cfg.DailyNoteFormat)
	}
	if cfg.Vault != "/tmp/cli-vault" {
		t.Errorf("expected flag vault, got %q", cfg.Vault)
	}
}

func TestLoad_PathExpansion(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{Vault: "~/notes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := filepath.Join(home, "notes")
	if cfg.Vault != expected {
		t.Errorf("expected %q, got %q", expected, cfg.Vault)
	}
}

func TestLoad_ConfigPathOverride(t *testing.T) {
	isolate(t)
	custom := filepath.Join(t.TempDir(), "custom.json")
	os.WriteFile(custom, []byte(`{"dailyNoteFormat": "YYYYMMDD"}`), 0644)
	t.Setenv("TODAYSTHOUGHT_CONFIG", custom)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DailyNoteFormat != "YYYYMMDD" {
		t.Errorf("expected format from custom config, got %q", cfg.DailyNoteFormat)
	}
	if cfg.Path() != custom {
		t.Errorf("expected path %q, got %q", custom, cfg.Path())
	}
}

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.DailyNoteFolder = "/"
	cfg.Prompts = []string{"Only prompt"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.DailyNoteFolder != "/" {
		t.Errorf("expected folder '/', got %q", reloaded.DailyNoteFolder)
	}
	if len(reloaded.Prompts) != 1 || reloaded.Prompts[0] != "Only prompt" {
		t.Errorf("expected saved prompts, got %v", reloaded.Prompts)
	}
}

func TestSave_EmptyPrompts(t *testing.T) {
	isolate(t)

	cfg, _ := Load(CLIFlags{})
	cfg.Prompts = nil
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, _ := Load(CLIFlags{})
	if len(reloaded.Prompts) != 0 {
		t.Errorf("expected empty prompt list to persist, got %v", reloaded.Prompts)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := isolate(t)

	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	path := filepath.Join(home, ".config", "todaysthought", "config.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	// Existing files are left alone
	os.WriteFile(path, []byte(`{"dailyNoteFolder": "/Mine"}`), 0644)
	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != `{"dailyNoteFolder": "/Mine"}` {
		t.Errorf("expected existing config to be untouched, got %s", data)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Vault: "/v", DailyNoteFormat: " "}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	cfg = &Config{Vault: "/v", DailyNoteFormat: "YYYY"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLayout(t *testing.T) {
	cfg := &Config{DailyNoteFolder: "/Journal", DailyNoteFormat: "YYYY-MM-DD"}
	layout := cfg.Layout()
	if layout.Folder != "/Journal" || layout.Format != "YYYY-MM-DD" {
		t.Errorf("unexpected layout %+v", layout)
	}
}
