package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"taskdev/internal/config"
	"taskdev/internal/task"
)

// exportCommand writes every task under the tasks dir to a JSON file.
func exportCommand(cfg *config.Config, diag *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskdev export", flag.ContinueOnError)
	output := fs.String("output", "", "Output file path (required)")
	fs.StringVar(output, "o", "", "Output file path (shorthand)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *output == "" {
		return fmt.Errorf("missing output path, use -o <file>")
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	files, err := task.ScanDir(cfg.TasksDir, diag)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", cfg.TasksDir, err)
	}

	export := task.BuildExport(files, cfg.TasksDir, time.Now())
	if err := task.WriteExport(*output, export); err != nil {
		return err
	}

	fmt.Printf("Exported %d tasks to %s\n", len(export.Tasks), *output)
	return nil
}
