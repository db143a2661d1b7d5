package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"

	"taskdev/internal/config"
	"taskdev/internal/task"
)

// listCommand renders a filtered, sorted table of task files.
func listCommand(cfg *config.Config, diag *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskdev list", flag.ContinueOnError)
	status := fs.String("status", "", "Filter by status")
	assignee := fs.String("assignee", "", "Filter by assignee")
	priority := fs.String("priority", "", "Filter by priority")
	tag := fs.String("tag", "", "Filter by tag")
	sortBy := fs.String("sort-by", "id", "Sort by field (id, title, status, priority, assignee)")
	reverse := fs.Bool("reverse", false, "Reverse sort order")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	files, err := task.ScanDir(cfg.TasksDir, diag)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", cfg.TasksDir, err)
	}

	files = task.FilterFiles(files, task.Filter{
		Status:   *status,
		Assignee: *assignee,
		Priority: *priority,
		Tag:      *tag,
	})
	if err := task.SortFiles(files, *sortBy, *reverse); err != nil {
		return err
	}

	fmt.Println(renderTaskTable(files))
	return nil
}

// renderTaskTable renders tasks as a bordered table.
func renderTaskTable(files []task.File) string {
	headerStyle := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("ID", "TITLE", "STATUS", "ASSIGNEE", "PRIORITY", "TAGS")

	for _, f := range files {
		t.Row(
			f.Meta.ID,
			f.Meta.Title,
			f.Meta.Status,
			f.Meta.Assignee,
			f.Meta.Priority,
			strings.Join(f.Meta.Tags, ", "),
		)
	}
	return t.Render()
}
