package config

import (
	"os"

	"github.com/jyang234/todo/internal/tasks"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  "1",
		File:     tasks.DefaultFile,
		LogLevel: "WARN",
	}
}

// WriteDefault writes the default global configuration to a file
func WriteDefault(path string) error {
	content := `# todo global configuration
version: "1"

# Task file, relative to the current directory unless absolute
file: todos.json

# Log level for diagnostics on stderr: DEBUG, INFO, WARN, ERROR
log_level: WARN
`
	return os.WriteFile(path, []byte(content), 0644)
}

// WriteProjectDefault writes the default project configuration to a file
func WriteProjectDefault(path string) error {
	content := `# todo project configuration
version: "1"

# Override global settings as needed
# file: todos.json
# log_level: WARN
`
	return os.WriteFile(path, []byte(content), 0644)
}
