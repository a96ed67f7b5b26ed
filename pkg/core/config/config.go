package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
	mclog "github.com/msto63/mcalc/foundation/core/log"
	"github.com/msto63/mcalc/foundation/mcl/parser"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "MCALC_CONFIG"

// ErrNoConfigFile is returned by LoadFromEnv when no config file exists
var ErrNoConfigFile = errors.New("no config file found")

// OutputFormats lists the accepted values of output.format
var OutputFormats = []string{"table", "plain", "json", "yaml"}

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Language LanguageConfig `toml:"language" yaml:"language"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
	History  HistoryConfig  `toml:"history" yaml:"history"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// LanguageConfig selects the MCL dialect and input limits
type LanguageConfig struct {
	Operators      string `toml:"operators" yaml:"operators"`
	MaxSourceBytes int    `toml:"max_source_bytes" yaml:"max_source_bytes"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format     string `toml:"format" yaml:"format"`
	ShowTokens bool   `toml:"show_tokens" yaml:"show_tokens"`
}

// HistoryConfig holds run history settings
type HistoryConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	Path      string   `toml:"path" yaml:"path"`
	Retention Duration `toml:"retention" yaml:"retention"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a scalar, got %v", node.Tag)
	}
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mcerror.Newf("config file not found: %s", path).
				WithCode(mcerror.CodeConfigError).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mcerror.Wrap(err, "failed to read config").
			WithCode(mcerror.CodeIOError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mcerror.Wrap(err, "failed to parse config").
			WithCode(mcerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in paths
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from the MCALC_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./mcalc.toml",
			"./mcalc.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/mcalc/config.toml"),
			filepath.Join(os.Getenv("HOME"), ".config/mcalc/config.yaml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, fmt.Errorf("%w, set %s or create mcalc.toml", ErrNoConfigFile, EnvConfigPath)
	}

	return Load(path)
}

// LoadOrDefault loads path if given, otherwise searches like LoadFromEnv
// and falls back to Default when no file exists
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	cfg, err := LoadFromEnv()
	if errors.Is(err, ErrNoConfigFile) {
		return Default(), nil
	}
	return cfg, err
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Language
	if c.Language.Operators == "" {
		c.Language.Operators = "arithmetic"
	}
	if c.Language.MaxSourceBytes == 0 {
		c.Language.MaxSourceBytes = 1 << 20
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "table"
	}

	// History
	if c.History.Path == "" {
		c.History.Path = "$HOME/.mcalc/history.db"
	}
	if c.History.Retention.Duration == 0 {
		c.History.Retention.Duration = 30 * 24 * time.Hour
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.History.Path = os.ExpandEnv(c.History.Path)
}

// Validate checks every setting that has a closed set of values
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}, reason string) error {
		return mcerror.Newf("invalid %s %v: %s", key, value, reason).
			WithCode(mcerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key)
	}

	if _, err := mclog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := mclog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}
	if _, err := parser.ParseOperatorSet(c.Language.Operators); err != nil {
		return invalid("language.operators", c.Language.Operators, err.Error())
	}
	if !isOutputFormat(c.Output.Format) {
		return invalid("output.format", c.Output.Format, "expected one of "+strings.Join(OutputFormats, ", "))
	}
	if c.History.Retention.Duration < 0 {
		return invalid("history.retention", c.History.Retention.Duration, "must not be negative")
	}

	return nil
}

// OperatorSet returns the parsed language.operators setting
func (c *Config) OperatorSet() parser.OperatorSet {
	ops, err := parser.ParseOperatorSet(c.Language.Operators)
	if err != nil {
		return parser.ArithmeticOperators
	}
	return ops
}

func isOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}
