package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"taskdev/internal/config"
	"taskdev/internal/gitx"
	"taskdev/internal/task"
)

// validateCommand validates the front matter of staged task files
// against the configured JSON schema. It is meant to be invoked from a
// pre-commit hook: a non-nil error makes the process exit non-zero and
// blocks the commit.
func validateCommand(ctx context.Context, cfg *config.Config, diag *log.Logger, args []string) error {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			printValidateUsage()
			return nil
		}
	}
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	validator, err := task.NewValidator(cfg.SchemaFile)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	staged, err := gitx.StagedFiles(ctx, cfg.TasksDir)
	if err != nil {
		return fmt.Errorf("listing staged files: %w", err)
	}

	failed := 0
	for _, path := range staged {
		if !task.IsTaskFile(path, cfg.TasksDir) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				// Staged for deletion, nothing to validate.
				continue
			}
			diag.Error("cannot read staged file", "path", path, "error", err)
			failed++
			continue
		}

		result, err := validator.ValidateDocument(string(data))
		if err == task.ErrNoFrontMatter {
			diag.Info("skipped, no front matter", "path", path)
			continue
		}
		if err != nil {
			diag.Error("validation failed", "path", path, "error", err)
			failed++
			continue
		}

		if result.Valid {
			diag.Info("validated", "path", path)
			continue
		}
		failed++
		for _, e := range result.Errors {
			diag.Error("invalid task front matter", "path", path, "error", e)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d staged task file(s) failed validation", failed)
	}
	return nil
}

func printValidateUsage() {
	fmt.Fprint(os.Stderr, `Usage: taskdev validate

Validates the YAML front matter of staged task files against the
configured JSON schema. Files without front matter are skipped; files
staged for deletion are ignored. Exits 1 when any staged task file
fails parsing or validation.

Meant to be called from a pre-commit hook:

  taskdev validate || exit 1
`)
}
