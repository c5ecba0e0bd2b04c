package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pr0digi/jspass-cli/internal/validation"
	"github.com/spf13/viper"
)

const (
	// DefaultClipTime is the delay in seconds used when PASSWORD_STORE_CLIP_TIME is unset or unusable
	DefaultClipTime = 45
	// DefaultXSelection is the selection used when PASSWORD_STORE_X_SELECTION is unset
	DefaultXSelection = "clipboard"
	// DefaultTool is the clipboard utility run by the command backend
	DefaultTool = "xclip"
	// DefaultSelectionFlag precedes the selection in the tool's arguments
	DefaultSelectionFlag = "-selection"
	// DefaultLogLevel only lets failures through, and only into a log file
	DefaultLogLevel = "error"

	// EnvPrefix is prepended to the supplementary keys (JSPASS_TOOL, JSPASS_LOG_FILE, ...)
	EnvPrefix = "JSPASS"

	clipTimeEnv   = "PASSWORD_STORE_CLIP_TIME"
	xSelectionEnv = "PASSWORD_STORE_X_SELECTION"
)

type Config struct {
	// ClipTime is the delay in seconds, parsed separately so a bad value falls back to the default
	ClipTime float64 `mapstructure:"-"`
	// XSelection names the clipboard selection to overwrite
	XSelection string `mapstructure:"x_selection"`
	// Tool is the external clipboard utility
	Tool string `mapstructure:"tool"`
	// SelectionFlag precedes the selection argument, empty to pass the selection alone
	SelectionFlag string `mapstructure:"selection_flag"`
	// Backend is "command" or "system"
	Backend  string `mapstructure:"backend"`
	LogLevel string `mapstructure:"log_level"`
	// LogFile receives logs; empty discards them
	LogFile string `mapstructure:"log_file"`
}

// Delay converts ClipTime into the wait interval before the clipboard is restored
func (c *Config) Delay() time.Duration {
	return time.Duration(c.ClipTime * float64(time.Second))
}

// Defaults returns the configuration used when nothing is set
func Defaults() *Config {
	return &Config{
		ClipTime:      DefaultClipTime,
		XSelection:    DefaultXSelection,
		Tool:          DefaultTool,
		SelectionFlag: DefaultSelectionFlag,
		Backend:       validation.BackendCommand,
		LogLevel:      DefaultLogLevel,
	}
}

// Dir returns the directory holding the optional config.yaml
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".jspass"), nil
}

// Load reads the environment and the optional ~/.jspass/config.yaml once.
// Environment variables take precedence over the file.
//
// The returned Config is never nil. Problems with the supplementary options
// (a broken config file, an unknown backend) are reported in the error while
// the affected options keep their defaults; PASSWORD_STORE_CLIP_TIME and
// PASSWORD_STORE_X_SELECTION are honoured regardless.
func Load() (*Config, error) {
	var errs []error

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
	}

	// Set defaults
	v.SetDefault("clip_time", DefaultClipTime)
	v.SetDefault("x_selection", DefaultXSelection)
	v.SetDefault("tool", DefaultTool)
	v.SetDefault("selection_flag", DefaultSelectionFlag)
	v.SetDefault("backend", validation.BackendCommand)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", "")

	// pass(1) compatible names, read as-is
	if err := v.BindEnv("clip_time", clipTimeEnv); err != nil {
		errs = append(errs, fmt.Errorf("failed to bind %s: %w", clipTimeEnv, err))
	}
	if err := v.BindEnv("x_selection", xSelectionEnv); err != nil {
		errs = append(errs, fmt.Errorf("failed to bind %s: %w", xSelectionEnv, err))
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	// A missing config file is fine. A broken one is reported, but the
	// environment is still read.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			errs = append(errs, fmt.Errorf("failed to read config: %w", err))
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		errs = append(errs, fmt.Errorf("failed to unmarshal config: %w", err))
		cfg = Defaults()
		cfg.XSelection = v.GetString("x_selection")
	}

	if seconds, err := validation.ParseClipTime(v.GetString("clip_time")); err == nil {
		cfg.ClipTime = seconds
	}
	if cfg.XSelection == "" {
		cfg.XSelection = DefaultXSelection
	}
	if validation.ValidateTool(cfg.Tool) != nil {
		cfg.Tool = DefaultTool
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if err := validation.ValidateBackend(cfg.Backend); err != nil {
		errs = append(errs, fmt.Errorf("invalid config: %w", err))
		cfg.Backend = validation.BackendCommand
	}

	return cfg, errors.Join(errs...)
}
