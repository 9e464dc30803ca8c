package tagcheck

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultConfigFile is the configuration file looked up when none is given
const DefaultConfigFile = "tagcheck.yaml"

// MarkdownMode controls whether markdown code is masked before checking
type MarkdownMode string

const (
	// MarkdownAuto masks code in files with a markdown extension
	MarkdownAuto MarkdownMode = "auto"
	// MarkdownAlways treats every document as markdown
	MarkdownAlways MarkdownMode = "always"
	// MarkdownNever checks every document as plain text
	MarkdownNever MarkdownMode = "never"
)

// Config represents the tagcheck configuration
type Config struct {
	Dialect  string       `yaml:"dialect"`
	Markdown MarkdownMode `yaml:"markdown"`
	Ignore   []string     `yaml:"ignore"`
	Output   OutputConfig `yaml:"output"`
	Limits   LimitsConfig `yaml:"limits"`
}

// OutputConfig represents report settings
type OutputConfig struct {
	Format string `yaml:"format"`
	Color  *bool  `yaml:"color"` // nil means decide by terminal detection
}

// LimitsConfig represents input limits
type LimitsConfig struct {
	MaxLineBytes int `yaml:"max_line_bytes"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		// Return default configuration if file doesn't exist
		return getDefaultConfig(), nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&config)
	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return &config, nil
}

// Validate validates the configuration for common errors and inconsistencies
func (c *Config) Validate() error {
	validDialects := []string{"xml", "html"}
	if !slices.Contains(validDialects, c.Dialect) {
		return fmt.Errorf("%w: invalid dialect '%s': must be one of xml, html", ErrConfigValidation, c.Dialect)
	}

	validModes := []MarkdownMode{MarkdownAuto, MarkdownAlways, MarkdownNever}
	if !slices.Contains(validModes, c.Markdown) {
		return fmt.Errorf("%w: invalid markdown mode '%s': must be one of auto, always, never", ErrConfigValidation, c.Markdown)
	}

	validFormats := []string{"text", "json", "yaml", "checkstyle"}
	if !slices.Contains(validFormats, c.Output.Format) {
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, json, yaml, checkstyle", ErrConfigValidation, c.Output.Format)
	}

	for i, name := range c.Ignore {
		if name == "" {
			return fmt.Errorf("%w: ignore[%d]: tag name must not be empty", ErrConfigValidation, i)
		}
	}

	if c.Limits.MaxLineBytes <= 0 {
		return fmt.Errorf("%w: limits.max_line_bytes must be a positive integer, got %d", ErrConfigValidation, c.Limits.MaxLineBytes)
	}

	return nil
}

// UseMarkdown reports whether a document with the given name is masked as markdown
func (c *Config) UseMarkdown(isMarkdownFile bool) bool {
	switch c.Markdown {
	case MarkdownAlways:
		return true
	case MarkdownNever:
		return false
	default:
		return isMarkdownFile
	}
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Dialect:  "xml",
		Markdown: MarkdownAuto,
		Ignore:   []string{},
		Output: OutputConfig{
			Format: "text",
		},
		Limits: LimitsConfig{
			MaxLineBytes: 1024 * 1024,
		},
	}
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return getDefaultConfig()
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.Dialect == "" {
		config.Dialect = defaults.Dialect
	}

	if config.Markdown == "" {
		config.Markdown = defaults.Markdown
	}

	if config.Ignore == nil {
		config.Ignore = defaults.Ignore
	}

	if config.Output.Format == "" {
		config.Output.Format = defaults.Output.Format
	}

	if config.Limits.MaxLineBytes == 0 {
		config.Limits.MaxLineBytes = defaults.Limits.MaxLineBytes
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	// Try to load .env file from current directory
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	plainEnvVar  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return plainEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in string settings
func expandConfigEnvVars(config *Config) {
	config.Dialect = expandEnvVars(config.Dialect)
	config.Markdown = MarkdownMode(expandEnvVars(string(config.Markdown)))
	config.Output.Format = expandEnvVars(config.Output.Format)

	for i, name := range config.Ignore {
		config.Ignore[i] = expandEnvVars(name)
	}
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
