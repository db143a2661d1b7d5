package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"taskdev/internal/combine"
	"taskdev/internal/config"
)

// combineCommand concatenates the given paths into one text artifact.
// Arguments are scanned manually so -o may appear before or after the
// positional paths.
func combineCommand(cfg *config.Config, diag *log.Logger, args []string) error {
	var output string
	var paths []string

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-o", "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", arg)
			}
			i++
			output = args[i]
		case "--help", "-h":
			printCombineUsage()
			return nil
		default:
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		printCombineUsage()
		return fmt.Errorf("missing input paths")
	}

	if output == "" {
		output = combine.DefaultOutputName(paths[0])
	}

	// Sections are buffered so the output artifact never shows up as an
	// input of its own run.
	var buf bytes.Buffer
	c := combine.New(&buf, diag, cfg.ExcludeDirs)
	processed, err := c.Combine(paths)
	if err != nil {
		return fmt.Errorf("combining paths: %w", err)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Printf("Processed %d of %d paths into %s\n", processed, len(paths), output)
	return nil
}

func printCombineUsage() {
	fmt.Fprint(os.Stderr, `Usage: taskdev combine <paths...> [options]

Concatenates files and directory trees into a single text file with
delimiter banners. Missing paths are skipped with a warning.

Options:
  -o, --output <file>   Output file (default: derived from first path)
  -h, --help            Show this help message

Examples:
  taskdev combine README.md
  taskdev combine src docs -o bundle.txt
`)
}
