// Package config handles configuration loading and defaults.
package config

import (
	"taskdev/internal/combine"
)

// Default values.
const (
	DefaultTasksDir   = ".tasks"
	DefaultSchemaFile = ".tasks/task.schema.json"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config holds the full configuration for taskdev.
type Config struct {
	// TasksDir is the directory scanned for task files and used to
	// restrict the staged-file query.
	TasksDir string `toml:"tasks_dir"`

	// SchemaFile is the JSON Schema validated against task front matter.
	SchemaFile string `toml:"schema_file"`

	// ExcludeDirs are directory names skipped by combine traversal.
	ExcludeDirs []string `toml:"exclude_dirs"`

	// Logging configuration
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// setDefaults fills a config with the built-in defaults.
func setDefaults(cfg *Config) {
	cfg.TasksDir = DefaultTasksDir
	cfg.SchemaFile = DefaultSchemaFile
	cfg.ExcludeDirs = combine.DefaultExcludeDirs()
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
