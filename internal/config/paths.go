package config

import (
	"os"
	"path/filepath"
)

// Project config file names, checked in order in the current directory.
var projectConfigNames = []string{"taskdev.toml", ".taskdev.toml"}

// findProjectConfigFile returns the project config file path in the
// current directory, or "" when none exists.
func findProjectConfigFile() string {
	for _, name := range projectConfigNames {
		if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
			return name
		}
	}
	return ""
}

// findUserConfigFile returns the per-user config file path, or "" when
// none exists. It lives under the OS config directory, e.g.
// ~/.config/taskdev/taskdev.toml on Linux.
func findUserConfigFile() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(base, "taskdev", "taskdev.toml")
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return path
	}
	return ""
}
