package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"taskdev/internal/config"
)

// initCommand writes a starter config file and task schema. Existing
// files are left alone.
func initCommand(cfg *config.Config, diag *log.Logger, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	wrote := 0

	if _, err := os.Stat("taskdev.toml"); os.IsNotExist(err) {
		if err := os.WriteFile("taskdev.toml", []byte(config.ExampleConfig()), 0644); err != nil {
			return fmt.Errorf("writing taskdev.toml: %w", err)
		}
		diag.Info("wrote config file", "path", "taskdev.toml")
		wrote++
	} else {
		diag.Info("config file already exists, skipping", "path", "taskdev.toml")
	}

	if _, err := os.Stat(cfg.SchemaFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(cfg.SchemaFile), 0755); err != nil {
			return fmt.Errorf("creating tasks directory: %w", err)
		}
		if err := os.WriteFile(cfg.SchemaFile, []byte(config.ExampleSchema()), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.SchemaFile, err)
		}
		diag.Info("wrote task schema", "path", cfg.SchemaFile)
		wrote++
	} else {
		diag.Info("schema already exists, skipping", "path", cfg.SchemaFile)
	}

	if wrote == 0 {
		fmt.Println("Nothing to do, all files already exist")
	}
	return nil
}
