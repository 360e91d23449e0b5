package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings are per-run options read from YAML. Config files describe the
// game; settings describe how this process runs it.
type Settings struct {
	Stage         string  `yaml:"stage"`
	LogLevel      string  `yaml:"log_level"`
	MetricsAddr   string  `yaml:"metrics_addr"`
	RecordPath    string  `yaml:"record_path"`
	AssetManifest string  `yaml:"asset_manifest"`
	WindowScale   float64 `yaml:"window_scale"`
	Seed          int64   `yaml:"seed"`
	Debug         bool    `yaml:"debug"`
}

// ParseSettings decodes YAML settings
func ParseSettings(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

// LoadSettings reads a YAML settings file.
// If path == "", it tries SURVIVOR_SETTINGS and otherwise returns empty
// settings so every getter falls back to env and defaults.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = os.Getenv("SURVIVOR_SETTINGS")
		if path == "" {
			return &Settings{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	return ParseSettings(data)
}

// GetStage returns the stage name (config -> env -> default)
func (s *Settings) GetStage() string {
	return stringWithEnvFallback(s.Stage, "SURVIVOR_STAGE", "demo")
}

// GetMetricsAddr returns the metrics listen address; empty disables it
func (s *Settings) GetMetricsAddr() string {
	return stringWithEnvFallback(s.MetricsAddr, "SURVIVOR_METRICS_ADDR", "")
}

// GetRecordPath returns where replays are written; empty disables recording
func (s *Settings) GetRecordPath() string {
	return stringWithEnvFallback(s.RecordPath, "SURVIVOR_RECORD", "")
}

// GetAssetManifest returns the asset manifest path inside the config FS
func (s *Settings) GetAssetManifest() string {
	return stringWithEnvFallback(s.AssetManifest, "SURVIVOR_ASSETS", "assets.json")
}

// GetWindowScale returns the window size relative to the logical screen
func (s *Settings) GetWindowScale() float64 {
	if s.WindowScale > 0 {
		return s.WindowScale
	}
	if v := os.Getenv("SURVIVOR_WINDOW_SCALE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return 0.5
}

// GetSeed returns the RNG seed; 0 means pick one from the clock
func (s *Settings) GetSeed() int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	if v := os.Getenv("SURVIVOR_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// GetLogLevel maps the configured level name to slog
func (s *Settings) GetLogLevel() slog.Level {
	name := stringWithEnvFallback(s.LogLevel, "SURVIVOR_LOG_LEVEL", "info")
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// stringWithEnvFallback returns a value with priority: config -> env -> default
func stringWithEnvFallback(configVal, envVar, defaultVal string) string {
	if configVal != "" {
		return configVal
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return defaultVal
}
