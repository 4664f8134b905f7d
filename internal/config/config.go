package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys, shared by flags, environment and config file
const (
	KeyServer    = "server"
	KeyUsername  = "username"
	KeyPassword  = "password"
	KeyForce     = "force"
	KeyDaysSince = "days-since"
	KeyLogLevel  = "log-level"
)

// EnvPrefix is prepended to environment variable names,
// e.g. ARTISTFETCH_DAYS_SINCE.
const EnvPrefix = "ARTISTFETCH"

// Config holds application configuration
type Config struct {
	// Base URL of the Navidrome server
	Server string

	// Login credentials; empty values are prompted for
	Username string
	Password string

	// Refresh every artist regardless of age
	Force bool

	// Days before external info is considered stale
	// Default: 7
	DaysSince int

	// Log level (debug, info, warn, error)
	// Default: "info"
	LogLevel string
}

// Load resolves configuration from, in order of precedence, the positional
// server argument, flags, environment variables, the config file and
// defaults. The config file is optional and is never written.
func Load(flags *pflag.FlagSet, args []string) (*Config, error) {
	v := viper.New()

	// Only the per-user directory is searched, never the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(GetConfigDir())

	// Set defaults
	v.SetDefault(KeyDaysSince, 7)
	v.SetDefault(KeyLogLevel, "info")

	// Read config file (optional - don't fail if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Read from environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if len(args) > 0 {
		v.Set(KeyServer, args[0])
	}

	cfg := &Config{
		Server:    strings.TrimRight(strings.TrimSpace(v.GetString(KeyServer)), "/"),
		Username:  v.GetString(KeyUsername),
		Password:  v.GetString(KeyPassword),
		Force:     v.GetBool(KeyForce),
		DaysSince: v.GetInt(KeyDaysSince),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration can be used for a run.
func (c *Config) Validate() error {
	if c.Server == "" {
		return fmt.Errorf("server is required (argument, %s_SERVER or config file)", EnvPrefix)
	}
	if c.DaysSince < 0 {
		return fmt.Errorf("days-since must not be negative (got %d)", c.DaysSince)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".config", "artistfetch")
}
