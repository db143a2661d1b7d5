package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ExportedTask is a task flattened for JSON export, including fields
// derived from its location and body.
type ExportedTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Status      string   `json:"status"`
	Assignee    string   `json:"assignee"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
	Whitepaper  string   `json:"whitepaper,omitempty"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Parent      string   `json:"parent,omitempty"`
	File        string   `json:"file"`
}

// Export is the root structure of an exported task set.
type Export struct {
	Tasks       []ExportedTask `json:"tasks"`
	Categories  []string       `json:"categories"`
	GeneratedAt string         `json:"generated_at"`
}

// BuildExport flattens scanned task files into an export document.
// Tasks are sorted by ID with numeric awareness; categories come from
// the immediate parent directory under the tasks dir and are sorted.
func BuildExport(files []File, dir string, now time.Time) Export {
	tasks := make([]ExportedTask, 0, len(files))
	seen := make(map[string]bool)

	for _, f := range files {
		category := categoryOf(f.Path, dir)
		seen[category] = true

		tags := f.Meta.Tags
		if tags == nil {
			tags = []string{}
		}

		tasks = append(tasks, ExportedTask{
			ID:          f.Meta.ID,
			Title:       f.Meta.Title,
			Status:      f.Meta.Status,
			Assignee:    f.Meta.Assignee,
			Priority:    f.Meta.Priority,
			Tags:        tags,
			Whitepaper:  f.Meta.Whitepaper,
			Category:    category,
			Description: ExtractDescription(f.Body),
			Parent:      f.Meta.Parent,
			File:        f.Path,
		})
	}

	sort.SliceStable(tasks, func(i, j int) bool { return CompareIDs(tasks[i].ID, tasks[j].ID) })

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return Export{
		Tasks:       tasks,
		Categories:  categories,
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}
}

// categoryOf derives a task's category from its parent directory under
// the tasks dir. Tasks directly in the tasks dir are uncategorized.
func categoryOf(path, dir string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return "uncategorized"
	}
	parent := filepath.Dir(rel)
	if parent == "." || parent == string(filepath.Separator) {
		return "uncategorized"
	}
	// Only the first path element counts; nested dirs share a category.
	parts := strings.Split(filepath.ToSlash(parent), "/")
	return parts[0]
}

// ExtractDescription returns the content of the "## Description"
// section of a task body, flattened to a single line.
func ExtractDescription(body string) string {
	var b strings.Builder
	inSection := false

	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "## Description") {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if strings.HasPrefix(line, "##") {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && b.Len() == 0 {
			continue
		}
		if trimmed == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(trimmed)
	}

	return b.String()
}

// WriteExport writes an export document as indented JSON, creating
// parent directories of the output path as needed.
func WriteExport(path string, ex Export) error {
	data, err := json.MarshalIndent(ex, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	data = append(data, '\n')

	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
