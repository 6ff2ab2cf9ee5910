// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/heyalice/alicelink/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete alicelink configuration.
type Config struct {
	// Version of the config file layout
	Version string `toml:"version" json:"version"`

	// Registry of assistants and skills
	Registry RegistryConfig `toml:"registry" json:"registry"`

	// Launcher behaviour
	Launcher LauncherConfig `toml:"launcher" json:"launcher"`

	// Launch history
	History HistoryConfig `toml:"history" json:"history"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// RegistryConfig says where the assistant/skill registry comes from.
type RegistryConfig struct {
	// File is a JSON, TOML or YAML registry file (format from the extension)
	File string `toml:"file" json:"file"`
	// Inline is registry JSON embedded in the config; when non-empty it wins over File
	Inline string `toml:"inline" json:"inline"`
	// Watch reloads File whenever it changes
	Watch bool `toml:"watch" json:"watch"`
	// WatchDebounceMs coalesces bursts of file events
	WatchDebounceMs int `toml:"watch_debounce_ms" json:"watch_debounce_ms"`
}

// LauncherConfig controls how deep links are opened.
type LauncherConfig struct {
	// DryRun prints URIs instead of opening them
	DryRun bool `toml:"dry_run" json:"dry_run"`
	// RatePerSec is the sustained number of launches allowed per second
	RatePerSec float64 `toml:"rate_per_sec" json:"rate_per_sec"`
	// Burst is the number of launches allowed back to back
	Burst int `toml:"burst" json:"burst"`
}

// HistoryConfig controls the SQLite launch history.
type HistoryConfig struct {
	Enabled bool `toml:"enabled" json:"enabled"`
	// Path is the SQLite database file
	Path string `toml:"path" json:"path"`
	// MaxEntries is how many launches are kept; older ones are pruned
	MaxEntries int `toml:"max_entries" json:"max_entries"`
}

// UIConfig contains terminal UI preferences.
type UIConfig struct {
	// Theme is "auto", "light" or "dark"
	Theme string `toml:"theme" json:"theme"`
	// Width is the maximum width of rendered candidate lines
	Width int `toml:"width" json:"width"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1",

		Registry: RegistryConfig{
			File:            "~/.alicelink/registry.json",
			Inline:          "",
			Watch:           true,
			WatchDebounceMs: 250,
		},

		Launcher: LauncherConfig{
			DryRun:     false,
			RatePerSec: 2,
			Burst:      3,
		},

		History: HistoryConfig{
			Enabled:    true,
			Path:       "~/.alicelink/history.db",
			MaxEntries: 500,
		},

		UI: UIConfig{
			Theme: "auto",
			Width: 72,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the alicelink configuration directory path.
// ALICELINK_HOME overrides the default ~/.alicelink.
func ConfigDir() (string, error) {
	if dir := os.Getenv("ALICELINK_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".alicelink"), nil
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

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ExpandPath resolves a leading "~/" against the config directory's parent
// home, so "~/.alicelink/x" follows ALICELINK_HOME too.
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~/") && path != "~" {
		return path
	}
	rest := strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/")

	if strings.HasPrefix(rest, ".alicelink/") || rest == ".alicelink" {
		if dir, err := ConfigDir(); err == nil {
			return filepath.Join(dir, strings.TrimPrefix(strings.TrimPrefix(rest, ".alicelink"), "/"))
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// RegistryPath returns the expanded registry file path.
func (c *Config) RegistryPath() string {
	return ExpandPath(c.Registry.File)
}

// HistoryPath returns the expanded history database path.
func (c *Config) HistoryPath() string {
	return ExpandPath(c.History.Path)
}

// ensureSecurePermissions checks and fixes permissions on config files.
// Inline registry text may name private assistants, so keep the file 0600.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm()
	if mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}

	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	// Try TOML first
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
				cfg = Default()
			} else {
				return finish(cfg)
			}
		}
	}

	// Try JSON as fallback
	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
				cfg = Default()
			} else {
				return finish(cfg)
			}
		}
	}

	cfg, err = finish(cfg)
	if err != nil {
		return nil, err
	}

	// Return defaults (with any load error for informational purposes)
	return cfg, loadErr
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// finish applies environment overrides, fills gaps and validates.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg. Keys missing from the file keep
// their current values.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// fillDefaults fills in zero values that would make the config unusable.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.Registry.WatchDebounceMs <= 0 {
		cfg.Registry.WatchDebounceMs = defaults.Registry.WatchDebounceMs
	}
	if cfg.Launcher.RatePerSec <= 0 {
		cfg.Launcher.RatePerSec = defaults.Launcher.RatePerSec
	}
	if cfg.Launcher.Burst <= 0 {
		cfg.Launcher.Burst = defaults.Launcher.Burst
	}
	if cfg.History.Path == "" {
		cfg.History.Path = defaults.History.Path
	}
	if cfg.History.MaxEntries <= 0 {
		cfg.History.MaxEntries = defaults.History.MaxEntries
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.Width <= 0 {
		cfg.UI.Width = defaults.UI.Width
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# alicelink configuration file")
	fmt.Fprintln(&buf, "# Generated by alicelink - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file with 0600 permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	validThemes := map[string]bool{"auto": true, "light": true, "dark": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, light, dark", c.UI.Theme),
		})
	}

	if c.UI.Width < 20 || c.UI.Width > 500 {
		errs = append(errs, ValidationError{
			Field:   "ui.width",
			Message: fmt.Sprintf("width %d out of range, must be 20-500", c.UI.Width),
		})
	}

	if c.Launcher.RatePerSec < 0 {
		errs = append(errs, ValidationError{
			Field:   "launcher.rate_per_sec",
			Message: "must not be negative",
		})
	}
	if c.Launcher.Burst < 0 {
		errs = append(errs, ValidationError{
			Field:   "launcher.burst",
			Message: "must not be negative",
		})
	}

	if c.History.MaxEntries < 0 {
		errs = append(errs, ValidationError{
			Field:   "history.max_entries",
			Message: "must not be negative",
		})
	}

	if c.Registry.File != "" {
		switch strings.ToLower(filepath.Ext(c.Registry.File)) {
		case ".json", ".toml", ".yaml", ".yml":
		default:
			errs = append(errs, ValidationError{
				Field:   "registry.file",
				Message: fmt.Sprintf("unsupported extension '%s', use .json, .toml, .yaml or .yml", filepath.Ext(c.Registry.File)),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - ALICELINK_REGISTRY: overrides registry.file
//   - ALICELINK_DRY_RUN: overrides launcher.dry_run
//   - ALICELINK_THEME: overrides ui.theme
//   - ALICELINK_HISTORY: overrides history.enabled
func (c *Config) ApplyEnvOverrides() {
	if path := os.Getenv("ALICELINK_REGISTRY"); path != "" {
		c.Registry.File = path
	}

	if dryRun := os.Getenv("ALICELINK_DRY_RUN"); dryRun != "" {
		c.Launcher.DryRun = parseBool(dryRun)
	}

	if theme := os.Getenv("ALICELINK_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if history := os.Getenv("ALICELINK_HISTORY"); history != "" {
		c.History.Enabled = parseBool(history)
	}
}

func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "1" || s == "true" || s == "yes"
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "launcher.dry_run").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("'%s' is a section, not a value", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			field.SetBool(parseBool(strVal))
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"registry.file",
		"registry.inline",
		"registry.watch",
		"registry.watch_debounce_ms",
		"launcher.dry_run",
		"launcher.rate_per_sec",
		"launcher.burst",
		"history.enabled",
		"history.path",
		"history.max_entries",
		"ui.theme",
		"ui.width",
	}
}

// Clone creates a copy of the configuration. Config holds no maps or
// slices, so a struct copy is deep.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns the config as indented JSON for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
