package config

import (
	"os"
	"path/filepath"
	"testing"

	"wealthdesk/pkg/wealthdesk"
)

func TestRuntimePort(t *testing.T) {
	orig := GetRuntimePort()
	defer SetRuntimePort(orig)

	SetRuntimePort(9000)
	if got := GetRuntimePort(); got != 9000 {
		t.Fatalf("expected 9000, got %d", got)
	}
	SetRuntimePort(0)
	if got := GetRuntimePort(); got != 9000 {
		t.Fatalf("expected port unchanged for non-positive value, got %d", got)
	}
}

func TestGetDataDirPrecedence(t *testing.T) {
	tmpRuntime := t.TempDir()
	tmpEnv := t.TempDir()

	SetRuntimeDataDir(tmpRuntime)
	defer SetRuntimeDataDir("")
	t.Setenv("WEALTHDESK_DATA_DIR", tmpEnv)

	dir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir: %v", err)
	}
	if dir != tmpRuntime {
		t.Fatalf("expected runtime dir %q, got %q", tmpRuntime, dir)
	}

	SetRuntimeDataDir("")
	dir, err = GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir: %v", err)
	}
	if dir != tmpEnv {
		t.Fatalf("expected env dir %q, got %q", tmpEnv, dir)
	}
}

func TestGetDBPathEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv("WEALTHDESK_DB_PATH", path)

	got, err := GetDBPath()
	if err != nil {
		t.Fatalf("GetDBPath: %v", err)
	}
	if got != path {
		t.Fatalf("expected %q, got %q", path, got)
	}
}

func TestGetDBPathDefaultName(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("WEALTHDESK_DB_PATH", "")
	t.Setenv("WEALTHDESK_DATA_DIR", tmp)
	t.Setenv("HOME", t.TempDir())

	got, err := GetDBPath()
	if err != nil {
		t.Fatalf("GetDBPath: %v", err)
	}
	if got != filepath.Join(tmp, "wealthdesk.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}

func TestLoadSaveUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	cfg := LoadUserConfig()
	if cfg.DBName != "wealthdesk.db" {
		t.Fatalf("expected default db name, got %q", cfg.DBName)
	}

	cfg.DBName = "other.db"
	cfg.DataDir = filepath.Join(home, "data")
	if err := SaveUserConfig(cfg); err != nil {
		t.Fatalf("SaveUserConfig: %v", err)
	}

	loaded := LoadUserConfig()
	if loaded.DBName != "other.db" {
		t.Fatalf("expected other.db, got %q", loaded.DBName)
	}
	if loaded.DataDir != cfg.DataDir {
		t.Fatalf("expected data dir %q, got %q", cfg.DataDir, loaded.DataDir)
	}
}

func TestLoadUserConfigCorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	configHome := filepath.Join(home, ".config")
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "wealthdesk")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := LoadUserConfig()
	if cfg.DBName != "wealthdesk.db" {
		t.Fatalf("expected defaults on corrupt config, got %q", cfg.DBName)
	}
}

func TestCompletionConfigFromSettings(t *testing.T) {
	t.Setenv("WEALTHDESK_AI_PROVIDER", "")
	t.Setenv("WEALTHDESK_AI_MODEL", "")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("OPENAI_API_KEY", "oa-key")

	cfg := CompletionConfig(wealthdesk.AISettings{Provider: "gemini", Model: "gemini-2.0-flash"})
	if cfg.Provider != "gemini" || cfg.APIKey != "gm-key" || cfg.Model != "gemini-2.0-flash" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestCompletionConfigEnvOverrides(t *testing.T) {
	t.Setenv("WEALTHDESK_AI_PROVIDER", "openai")
	t.Setenv("WEALTHDESK_AI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg := CompletionConfig(wealthdesk.AISettings{Provider: "gemini", Model: "gemini-2.0-flash"})
	if cfg.Provider != "openai" {
		t.Fatalf("expected env provider override, got %q", cfg.Provider)
	}
	if cfg.Model != "gpt-4o" {
		t.Fatalf("expected env model override, got %q", cfg.Model)
	}
	if cfg.APIKey != "oa-key" {
		t.Fatalf("expected openai key, got %q", cfg.APIKey)
	}
}

func TestCompletionConfigUnknownProviderHasNoKey(t *testing.T) {
	t.Setenv("WEALTHDESK_AI_PROVIDER", "mystery")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg := CompletionConfig(wealthdesk.AISettings{Provider: "gemini"})
	if cfg.APIKey != "" {
		t.Fatalf("expected no key for unknown provider, got %q", cfg.APIKey)
	}
}
