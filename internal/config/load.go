package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"taskdev/internal/utils"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (OS config dir)
// 3. Project config file (taskdev.toml or .taskdev.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if userFile := findUserConfigFile(); userFile != "" {
		if err := loadConfigFile(cfg, userFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
		}
	}

	if projectFile := findProjectConfigFile(); projectFile != "" {
		if err := loadConfigFile(cfg, projectFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	return cfg, nil
}

// loadConfigFile decodes a TOML config file over the current values.
func loadConfigFile(cfg *Config, path string) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config keys: %v", undecoded)
	}
	return nil
}

// parseFlags binds global flags to config fields and parses args.
// Flags override every other source.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.TasksDir, "tasks-dir", cfg.TasksDir, "Directory containing task files")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "JSON Schema file for task front matter")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|logfmt|json)")
	return fs.Parse(args)
}

// loadFromEnv overrides config from TASKDEV_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKDEV_TASKS_DIR"); v != "" {
		cfg.TasksDir = v
	}
	if v := os.Getenv("TASKDEV_EXCLUDE_DIRS"); v != "" {
		cfg.ExcludeDirs = utils.SplitAndTrim(v, ",")
	}
	if v := os.Getenv("TASKDEV_SCHEMA"); v != "" {
		cfg.SchemaFile = v
	}
	if v := os.Getenv("TASKDEV_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKDEV_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
