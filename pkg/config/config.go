package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/compozy/tokencase/engine/core"
	"github.com/spf13/viper"
)

const (
	defaultConfigFileName = "tokencase"
	defaultConfigType     = "yaml"
	defaultLogLevel       = "info"
	defaultMCPName        = "tokencase"

	// EnvPrefix prefixes every environment variable read by viper
	EnvPrefix = "TOKENCASE"
)

// defaultMCPVersion is reported when mcp.version is unset. The CLI replaces
// it with the binary version.
var defaultMCPVersion = "dev"

// SetDefaultVersion sets the MCP server version used when none is configured
func SetDefaultVersion(version string) {
	if version != "" {
		defaultMCPVersion = version
	}
}

// Color modes accepted by output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"    yaml:"log"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	MCP    MCPConfig    `mapstructure:"mcp"    yaml:"mcp"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// OutputConfig represents output rendering configuration
type OutputConfig struct {
	Color string `mapstructure:"color" yaml:"color"`
}

// MCPConfig represents the identity the MCP server reports to clients
type MCPConfig struct {
	Name    string `mapstructure:"name"    yaml:"name"`
	Version string `mapstructure:"version" yaml:"version"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: defaultLogLevel,
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
		MCP: MCPConfig{
			Name:    defaultMCPName,
			Version: defaultMCPVersion,
		},
	}
}

// DefaultPath returns the config file path used when none is given
func DefaultPath() string {
	return filepath.Join(".", defaultConfigFileName+"."+defaultConfigType)
}

// SetDefaults registers every default value on v
func SetDefaults(v *viper.Viper) {
	cfg := DefaultConfig()
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("output.color", cfg.Output.Color)
	v.SetDefault("mcp.name", cfg.MCP.Name)
	v.SetDefault("mcp.version", cfg.MCP.Version)
}

// NewViper returns a viper instance bound to the TOKENCASE_ environment
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load loads configuration from a file. Environment variables override file
// values. With an empty path, ./tokencase.yaml is read when present and the
// defaults apply otherwise; a named file must exist.
func Load(configPath string) (*Config, error) {
	v := NewViper()

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultPath()
	}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return nil, core.NewError(
				fmt.Errorf("config file %s not found", configPath),
				core.ErrorCodeConfigNotFound,
				map[string]any{"path": configPath},
			)
		}
		return FromViper(v)
	}

	v.SetConfigFile(configPath)
	v.SetConfigType(defaultConfigType)
	if err := v.ReadInConfig(); err != nil {
		return nil, core.NewError(
			fmt.Errorf("failed to read config file: %w", err),
			core.ErrorCodeConfigInvalid,
			map[string]any{"path": configPath},
		)
	}

	return FromViper(v)
}

// FromViper unmarshals and validates the configuration held by v
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, core.NewError(
			fmt.Errorf("invalid config: %w", err),
			core.ErrorCodeConfigInvalid,
			nil,
		)
	}

	return cfg, nil
}

// Save saves the configuration to a file
func Save(cfg *Config, configPath string) error {
	if configPath == "" {
		configPath = DefaultPath()
	}

	v := viper.New()
	v.SetConfigType(defaultConfigType)
	v.Set("log.level", cfg.Log.Level)
	v.Set("output.color", cfg.Output.Color)
	v.Set("mcp.name", cfg.MCP.Name)
	v.Set("mcp.version", cfg.MCP.Version)

	if err := v.WriteConfigAs(configPath); err != nil {
		return core.NewError(
			fmt.Errorf("failed to write config file: %w", err),
			core.ErrorCodeConfigWrite,
			map[string]any{"path": configPath},
		)
	}

	return nil
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "":
		c.Log.Level = defaultLogLevel
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	switch c.Output.Color {
	case "":
		c.Output.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be one of auto, always, never (got %q)", c.Output.Color)
	}

	if c.MCP.Name == "" {
		return errors.New("mcp.name is required")
	}
	if c.MCP.Version == "" {
		c.MCP.Version = defaultMCPVersion
	}

	return nil
}
