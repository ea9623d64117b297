/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package config loads the user-editable YAML configuration and applies
// read-only environment overrides at runtime.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Notes display mode selection. "auto" derives the default from the document
// geometry; "on"/"off" force it.
const (
	NotesAuto = "auto"
	NotesOn   = "on"
	NotesOff  = "off"
)

type GeneralConfig struct {
	Notes          string `yaml:"notes"` // "auto" | "on" | "off"
	TelemetryOptIn bool   `yaml:"telemetry_opt_in"`
}

type DisplayConfig struct {
	ContentWidth    int  `yaml:"content_width"`
	ContentHeight   int  `yaml:"content_height"`
	PresenterWidth  int  `yaml:"presenter_width"`
	PresenterHeight int  `yaml:"presenter_height"`
	StartFullscreen bool `yaml:"start_fullscreen"`
	TickMs          int  `yaml:"tick_ms"`
}

type RenderConfig struct {
	// CacheSlots bounds the number of rendered page rasters kept in memory.
	CacheSlots int `yaml:"cache_slots"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Display       DisplayConfig `yaml:"display"`
	Render        RenderConfig  `yaml:"render"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults. The 1024x728 window size and the
// 250ms tick mirror the classic presenter layout.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{Notes: NotesAuto, TelemetryOptIn: false},
		Display: DisplayConfig{
			ContentWidth:    1024,
			ContentHeight:   728,
			PresenterWidth:  1024,
			PresenterHeight: 728,
			StartFullscreen: false,
			TickMs:          250,
		},
		Render:  RenderConfig{CacheSlots: 8},
		Logging: LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvNotes           = "GPR_NOTES"
	EnvTelemetryOptIn  = "GPR_TELEMETRY_OPT_IN"
	EnvStartFullscreen = "GPR_START_FULLSCREEN"
	EnvTickMs          = "GPR_TICK_MS"
	EnvCacheSlots      = "GPR_CACHE_SLOTS"
	EnvLogLevel        = "GPR_LOG_LEVEL"
	EnvLogFormat       = "GPR_LOG_FORMAT"
	EnvLogSource       = "GPR_LOG_SOURCE"
	EnvLogFile         = "GPR_LOG_FILE"
)

// Dir returns the per-user configuration directory.
func Dir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "GoPresent")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoPresent")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "gopresent")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return base, nil
}

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// HistoryPath returns the path of the recent-presentations database.
func HistoryPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.sqlite"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides on top.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if n := normalizeNotes(src.General.Notes); n != "" {
		dst.General.Notes = n
	}
	// booleans: copy directly from the file so user preferences persist
	dst.General.TelemetryOptIn = src.General.TelemetryOptIn
	dst.Display.StartFullscreen = src.Display.StartFullscreen
	if src.Display.ContentWidth > 0 {
		dst.Display.ContentWidth = src.Display.ContentWidth
	}
	if src.Display.ContentHeight > 0 {
		dst.Display.ContentHeight = src.Display.ContentHeight
	}
	if src.Display.PresenterWidth > 0 {
		dst.Display.PresenterWidth = src.Display.PresenterWidth
	}
	if src.Display.PresenterHeight > 0 {
		dst.Display.PresenterHeight = src.Display.PresenterHeight
	}
	if src.Display.TickMs > 0 {
		dst.Display.TickMs = src.Display.TickMs
	}
	if src.Render.CacheSlots > 0 {
		dst.Render.CacheSlots = src.Render.CacheSlots
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if n := normalizeNotes(os.Getenv(EnvNotes)); n != "" {
		cfg.General.Notes = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		cfg.General.TelemetryOptIn = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvStartFullscreen)); v != "" {
		cfg.Display.StartFullscreen = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTickMs)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Display.TickMs = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCacheSlots)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Render.CacheSlots = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func parseBool(v string) bool {
	lv := strings.ToLower(strings.TrimSpace(v))
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func normalizeNotes(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case NotesAuto:
		return NotesAuto
	case NotesOn:
		return NotesOn
	case NotesOff:
		return NotesOff
	}
	return ""
}
