package config

// Config represents the full todo configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Path to the task file, relative to the working directory unless absolute
	File string `yaml:"file" mapstructure:"file"`

	// DEBUG, INFO, WARN or ERROR
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}
