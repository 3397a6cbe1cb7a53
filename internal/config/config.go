package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvPrefix is prepended to every environment variable, e.g. AUTO_TAG_COMMIT.
	EnvPrefix = "AUTO_TAG"
	// FileName is the optional config file, without extension, looked up in the working directory.
	FileName = ".auto-tag"
)

type Config struct {
	Commit       string        `mapstructure:"commit"`
	GitUserEmail string        `mapstructure:"git_user_email"`
	GitUserName  string        `mapstructure:"git_user_name"`
	DryRun       bool          `mapstructure:"dry_run"`
	SkipExisting bool          `mapstructure:"skip_existing"`
	Recursive    bool          `mapstructure:"recursive"`
	GitBackend   string        `mapstructure:"git_backend"`
	LogLevel     string        `mapstructure:"log_level"`
	TagMessage   string        `mapstructure:"tag_message"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Paths        []string      `mapstructure:"paths"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		GitBackend: "exec",
		LogLevel:   "info",
		Timeout:    5 * time.Minute,
		Paths:      []string{"."},
	}
}

// flagKeys maps command-line flags to their config keys.
var flagKeys = map[string]string{
	"commit":         "commit",
	"git-user-email": "git_user_email",
	"git-user-name":  "git_user_name",
	"dry-run":        "dry_run",
	"skip-existing":  "skip_existing",
	"recursive":      "recursive",
	"git-backend":    "git_backend",
	"log-level":      "log_level",
	"message":        "tag_message",
	"timeout":        "timeout",
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.GitBackend {
	case "exec", "native":
	default:
		return fmt.Errorf("invalid git_backend %q: expected exec or native", c.GitBackend)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	for _, p := range c.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("paths cannot contain empty entries")
		}
	}
	return nil
}

// LoadConfig merges defaults, the config file, AUTO_TAG_* environment
// variables and the given flags, in increasing precedence.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	return load(viper.New(), flags, ".")
}

func load(v *viper.Viper, flags *pflag.FlagSet, configDir string) (*Config, error) {
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	// BindEnv checks the listed variables in order
	if err := v.BindEnv("commit", EnvPrefix+"_COMMIT", "GITHUB_SHA"); err != nil {
		return nil, fmt.Errorf("failed to bind commit env: %w", err)
	}
	defaults := DefaultConfig()
	v.SetDefault("git_backend", defaults.GitBackend)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("paths", defaults.Paths)
	for _, key := range []string{"git_user_email", "git_user_name", "dry_run", "skip_existing", "recursive", "tag_message"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s env: %w", key, err)
		}
	}
	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
