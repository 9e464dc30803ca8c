package tagcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadConfig_StrictMode_UnknownKeys(t *testing.T) {
	// Create a temporary config file with unknown keys
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, DefaultConfigFile)

	configContent := `
dialect: xml
unknown_key: "should cause error"
output:
  format: text
  unknown_output_key: true
`

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	assert.NoError(t, err)

	_, err = LoadConfig(configPath)
	assert.Error(t, err, "expected error for unknown keys in strict mode")
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, DefaultConfigFile)

	err := os.WriteFile(configPath, []byte("dialect: sgml\n"), 0644)
	assert.NoError(t, err)

	_, err = LoadConfig(configPath)
	assert.IsError(t, err, ErrConfigValidation)
	assert.Contains(t, err.Error(), "invalid config file")
	assert.Contains(t, err.Error(), "invalid dialect 'sgml'")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		message string
	}{
		{
			name:    "invalid dialect",
			modify:  func(c *Config) { c.Dialect = "sgml" },
			message: "invalid dialect 'sgml'",
		},
		{
			name:    "invalid markdown mode",
			modify:  func(c *Config) { c.Markdown = "sometimes" },
			message: "invalid markdown mode 'sometimes'",
		},
		{
			name:    "invalid output format",
			modify:  func(c *Config) { c.Output.Format = "pdf" },
			message: "output.format 'pdf' is invalid",
		},
		{
			name:    "empty ignore name",
			modify:  func(c *Config) { c.Ignore = []string{"br", ""} },
			message: "ignore[1]: tag name must not be empty",
		},
		{
			name:    "non-positive line limit",
			modify:  func(c *Config) { c.Limits.MaxLineBytes = -1 },
			message: "limits.max_line_bytes must be a positive integer, got -1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := getDefaultConfig()
			tt.modify(config)

			err := config.Validate()
			assert.IsError(t, err, ErrConfigValidation)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	config := getDefaultConfig()
	config.Dialect = "html"
	config.Markdown = MarkdownNever
	config.Output.Format = "checkstyle"
	config.Ignore = []string{"slot"}

	assert.NoError(t, config.Validate())
}
