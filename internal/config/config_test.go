package config

import (
	"os"
	"path/filepath"
	"testing"
)

// envKeys are cleared before each test so the host environment cannot leak in.
var envKeys = []string{"ITN_MAX_SPAN", "ITN_RULES_FILE", "ITN_PUNCTUATION", "ITN_LOG_LEVEL", "ITN_LOG_FORMAT", "PORT"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := fromEnv()
	if err != nil {
		t.Fatalf("fromEnv: %v", err)
	}
	want := Cfg{MaxSpan: 16, LogLevel: "info", LogFormat: "json", ListenAddr: ":8080"}
	if *cfg != want {
		t.Errorf("cfg = %+v, want %+v", *cfg, want)
	}
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ITN_MAX_SPAN", "8")
	t.Setenv("ITN_RULES_FILE", " rules.toml ")
	t.Setenv("ITN_PUNCTUATION", "TRUE")
	t.Setenv("ITN_LOG_LEVEL", "debug")
	t.Setenv("ITN_LOG_FORMAT", "text")
	t.Setenv("PORT", "9090")

	cfg, err := fromEnv()
	if err != nil {
		t.Fatalf("fromEnv: %v", err)
	}
	want := Cfg{MaxSpan: 8, RulesFile: "rules.toml", Punctuation: true, LogLevel: "debug", LogFormat: "text", ListenAddr: ":9090"}
	if *cfg != want {
		t.Errorf("cfg = %+v, want %+v", *cfg, want)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"ITN_MAX_SPAN", "zero"},
		{"ITN_MAX_SPAN", "0"},
		{"PORT", "http"},
		{"PORT", "70000"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := fromEnv(); err == nil {
				t.Errorf("fromEnv accepted %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty.
	for _, k := range envKeys {
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), "itn.env")
	if err := os.WriteFile(path, []byte("ITN_MAX_SPAN=4\nPORT=7070\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.MaxSpan != 4 || cfg.ListenAddr != ":7070" {
		t.Errorf("cfg = %+v", *cfg)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("LoadFile of a missing file succeeded")
	}
}
