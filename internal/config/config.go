// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management
// for thirstiq.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete thirstiq configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// Weather provider configuration
	Weather WeatherConfig `toml:"weather" json:"weather"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Profile configuration
	Profile ProfileConfig `toml:"profile" json:"profile"`
}

// WeatherConfig contains weather provider configuration.
type WeatherConfig struct {
	// APIKey is the weather provider API key
	APIKey string `toml:"api_key" json:"api_key"`
	// BaseURL overrides the provider endpoint (empty = provider default)
	BaseURL string `toml:"base_url" json:"base_url"`
	// TimeoutSecs is the per-request timeout in seconds
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// RequestsPerMinute caps outbound provider calls (0 = unlimited)
	RequestsPerMinute int `toml:"requests_per_minute" json:"requests_per_minute"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the color theme: "auto", "dark", or "light"
	Theme string `toml:"theme" json:"theme"`
	// CompactMode reduces padding and hides the task panel by default
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
	// ShowTimestamps shows message timestamps in the transcript
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// DebugLogFile receives Bubble Tea debug output when set (the TUI owns
	// the terminal, so diagnostics go to a file instead of stderr)
	DebugLogFile string `toml:"debug_log_file" json:"debug_log_file"`
}

// ProfileConfig contains the simulated sign-in profile.
type ProfileConfig struct {
	// Name greets the user on the welcome screen (set during sign-in)
	Name string `toml:"name" json:"name"`
	// SignInDelayMillis is how long the simulated sign-in takes
	SignInDelayMillis int `toml:"sign_in_delay_millis" json:"sign_in_delay_millis"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a configuration with all default values.
func Default() *Config {
	return &Config{
		Version: "1",
		Weather: WeatherConfig{
			TimeoutSecs:       10,
			RequestsPerMinute: 30,
		},
		UI: UIConfig{
			Theme:          "auto",
			ShowTimestamps: false,
		},
		Profile: ProfileConfig{
			SignInDelayMillis: 1500,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the thirstiq configuration directory (~/.thirstiq).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".thirstiq"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir creates the configuration directory if it is missing.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration, checking TOML first, then JSON, then
// falling back to defaults. Environment overrides apply last.
func Load() (*Config, error) {
	cfg := Default()

	if path, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, err
			}
			cfg.ApplyEnvOverrides()
			return cfg, cfg.Validate()
		}
	}

	if path, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadJSON(cfg, path); err != nil {
				return nil, err
			}
			cfg.ApplyEnvOverrides()
			return cfg, cfg.Validate()
		}
	}

	cfg.ApplyEnvOverrides()
	return cfg, cfg.Validate()
}

// LoadTOML loads TOML configuration from the given path over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadJSON loads JSON configuration from the given path over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadFromPath loads a config from an explicit path, picking the decoder
// from the file extension.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := LoadTOML(cfg, path); err != nil {
			return nil, err
		}
	case ".json":
		if err := LoadJSON(cfg, path); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
	cfg.ApplyEnvOverrides()
	return cfg, cfg.Validate()
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the TOML path.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration as TOML to the given path.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs []error

	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		errs = append(errs, ValidationError{Field: "ui.theme", Message: "must be auto, dark, or light"})
	}

	if c.Weather.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{Field: "weather.timeout_secs", Message: "must not be negative"})
	}
	if c.Weather.RequestsPerMinute < 0 {
		errs = append(errs, ValidationError{Field: "weather.requests_per_minute", Message: "must not be negative"})
	}
	if c.Profile.SignInDelayMillis < 0 {
		errs = append(errs, ValidationError{Field: "profile.sign_in_delay_millis", Message: "must not be negative"})
	}

	return errors.Join(errs...)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variables over file values.
// Environment always wins so deployments can inject secrets without
// touching the config file.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("THIRSTIQ_API_KEY"); v != "" {
		c.Weather.APIKey = v
	}
	if v := os.Getenv("THIRSTIQ_WEATHER_URL"); v != "" {
		c.Weather.BaseURL = v
	}
	if v := os.Getenv("THIRSTIQ_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("THIRSTIQ_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Weather.TimeoutSecs = n
		}
	}
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// Global returns the global configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// ReloadGlobal re-reads the configuration from disk.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalMu.Lock()
	globalConfig = cfg
	globalMu.Unlock()
	return nil
}

// SetGlobal replaces the global configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	globalConfig = cfg
	globalMu.Unlock()
}

// ResetGlobalForTesting clears the global configuration.
func ResetGlobalForTesting() {
	globalMu.Lock()
	globalConfig = nil
	globalMu.Unlock()
}
