// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Sink kinds accepted in the sink setting.
const (
	SinkStdout = "stdout"
	SinkLogger = "logger"
	SinkNATS   = "nats"
)

// Config holds all configuration values for mathbridge.
type Config struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFile   string `mapstructure:"log_file" yaml:"log_file"`
	Sink      string `mapstructure:"sink" yaml:"sink"`
	DataDir   string `mapstructure:"data_dir" yaml:"data_dir"`
	Channel   string `mapstructure:"channel" yaml:"channel"`
	DefaultA  int64  `mapstructure:"default_a" yaml:"default_a"`
	DefaultB  int64  `mapstructure:"default_b" yaml:"default_b"`
	GreetName string `mapstructure:"greet_name" yaml:"greet_name"`
}

var envKeys = []string{
	"log_level",
	"log_file",
	"sink",
	"data_dir",
	"channel",
	"default_a",
	"default_b",
	"greet_name",
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("mathbridge")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("sink", SinkStdout)
	v.SetDefault("data_dir", ".mathbridge")
	v.SetDefault("channel", "console")
	v.SetDefault("default_a", 10)
	v.SetDefault("default_b", 5)
	v.SetDefault("greet_name", "Web Assembly User!")

	v.SetEnvPrefix("MATHBRIDGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit bindings so Unmarshal sees env-only keys
	for _, key := range envKeys {
		if err := v.BindEnv(key, "MATHBRIDGE_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.Sink {
	case SinkStdout, SinkLogger, SinkNATS:
	default:
		return fmt.Errorf("invalid sink %q (want %s, %s or %s)", c.Sink, SinkStdout, SinkLogger, SinkNATS)
	}
	if c.DefaultA < math.MinInt32 || c.DefaultA > math.MaxInt32 {
		return fmt.Errorf("default_a %d out of int32 range", c.DefaultA)
	}
	if c.DefaultB < math.MinInt32 || c.DefaultB > math.MaxInt32 {
		return fmt.Errorf("default_b %d out of int32 range", c.DefaultB)
	}
	return nil
}

// Operands returns the configured default operand pair.
func (c *Config) Operands() (int32, int32) {
	return int32(c.DefaultA), int32(c.DefaultB)
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/mathbridge/mathbridge.yml or $XDG_CONFIG_HOME/mathbridge/mathbridge.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mathbridge", "mathbridge.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mathbridge", "mathbridge.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "mathbridge.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
