// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// DEFAULTS AND VALIDATION
// =============================================================================

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("default theme = %q, want auto", cfg.UI.Theme)
	}
	if cfg.Weather.TimeoutSecs != 10 {
		t.Errorf("default timeout = %d, want 10", cfg.Weather.TimeoutSecs)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "bad theme",
			mutate: func(c *Config) { c.UI.Theme = "neon" },
		},
		{
			name:   "negative timeout",
			mutate: func(c *Config) { c.Weather.TimeoutSecs = -1 },
		},
		{
			name:   "negative rate limit",
			mutate: func(c *Config) { c.Weather.RequestsPerMinute = -5 },
		},
		{
			name:   "negative sign-in delay",
			mutate: func(c *Config) { c.Profile.SignInDelayMillis = -100 },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted an invalid config")
			}
		})
	}
}

// =============================================================================
// FILE ROUND TRIP
// =============================================================================

func TestSaveTOMLAndLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Weather.APIKey = "abc123"
	cfg.UI.Theme = "dark"
	cfg.Profile.Name = "Sam"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML() error: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if loaded.Weather.APIKey != "abc123" {
		t.Errorf("APIKey = %q, want abc123", loaded.Weather.APIKey)
	}
	if loaded.UI.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", loaded.UI.Theme)
	}
	if loaded.Profile.Name != "Sam" {
		t.Errorf("Profile.Name = %q, want Sam", loaded.Profile.Name)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data := []byte(`{"weather": {"api_key": "jsonkey"}, "ui": {"theme": "light"}}`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if loaded.Weather.APIKey != "jsonkey" {
		t.Errorf("APIKey = %q, want jsonkey", loaded.Weather.APIKey)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", loaded.UI.Theme)
	}

	// Unset fields keep their defaults.
	if loaded.Weather.TimeoutSecs != 10 {
		t.Errorf("TimeoutSecs = %d, want default 10", loaded.Weather.TimeoutSecs)
	}
}

func TestLoadFromPath_UnsupportedExtension(t *testing.T) {
	if _, err := LoadFromPath("config.yaml"); err == nil {
		t.Error("LoadFromPath() accepted an unsupported format")
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("THIRSTIQ_API_KEY", "env-key")
	t.Setenv("THIRSTIQ_THEME", "light")
	t.Setenv("THIRSTIQ_TIMEOUT_SECS", "25")

	cfg := Default()
	cfg.Weather.APIKey = "file-key"
	cfg.ApplyEnvOverrides()

	if cfg.Weather.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key (env wins over file)", cfg.Weather.APIKey)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.UI.Theme)
	}
	if cfg.Weather.TimeoutSecs != 25 {
		t.Errorf("TimeoutSecs = %d, want 25", cfg.Weather.TimeoutSecs)
	}
}

func TestApplyEnvOverrides_BadNumberIgnored(t *testing.T) {
	t.Setenv("THIRSTIQ_TIMEOUT_SECS", "soon")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if cfg.Weather.TimeoutSecs != 10 {
		t.Errorf("TimeoutSecs = %d, want default 10", cfg.Weather.TimeoutSecs)
	}
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

func TestGlobalAccessors(t *testing.T) {
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	custom := Default()
	custom.Profile.Name = "global-test"
	SetGlobal(custom)

	if got := Global().Profile.Name; got != "global-test" {
		t.Errorf("Global().Profile.Name = %q, want global-test", got)
	}
}
