// Package task provides tests for JSON export of task sets.
package task

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"single paragraph",
			"## Description\n\nDo the thing.\n\n## Notes\n\nOther.\n",
			"Do the thing.",
		},
		{
			"multi-line flattened",
			"## Description\n\nFirst line.\nSecond line.\n",
			"First line. Second line.",
		},
		{
			"stops at next section",
			"## Description\n\nOnly this.\n\n## Acceptance\n\nNot this.\n",
			"Only this.",
		},
		{
			"missing section",
			"## Notes\n\nNothing here.\n",
			"",
		},
		{
			"empty body",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDescription(tt.body); got != tt.want {
				t.Errorf("ExtractDescription = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildExport(t *testing.T) {
	dir := filepath.Join("repo", ".tasks")
	files := []File{
		{
			Path: filepath.Join(dir, "ui", "T-010-theme.md"),
			Meta: FrontMatter{ID: "T10", Title: "Theme", Status: "todo", Assignee: "bob", Priority: "low"},
			Body: "## Description\n\nTheme work.\n",
		},
		{
			Path: filepath.Join(dir, "core", "T-002-cache.md"),
			Meta: FrontMatter{ID: "T2", Title: "Cache", Status: "done", Assignee: "ana", Priority: "high", Tags: []string{"perf"}},
			Body: "## Description\n\nCache layer.\n",
		},
		{
			Path: filepath.Join(dir, "T-005-docs.md"),
			Meta: FrontMatter{ID: "T5", Title: "Docs", Status: "todo", Assignee: "ana", Priority: "medium"},
			Body: "",
		},
	}

	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	ex := BuildExport(files, dir, now)

	if len(ex.Tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(ex.Tasks))
	}
	// Numeric-aware ID order: T2, T5, T10.
	if ex.Tasks[0].ID != "T2" || ex.Tasks[1].ID != "T5" || ex.Tasks[2].ID != "T10" {
		t.Errorf("task order wrong: %s, %s, %s", ex.Tasks[0].ID, ex.Tasks[1].ID, ex.Tasks[2].ID)
	}

	wantCats := []string{"core", "ui", "uncategorized"}
	if len(ex.Categories) != len(wantCats) {
		t.Fatalf("categories = %v, want %v", ex.Categories, wantCats)
	}
	for i, c := range wantCats {
		if ex.Categories[i] != c {
			t.Fatalf("categories = %v, want %v", ex.Categories, wantCats)
		}
	}

	if ex.Tasks[0].Category != "core" {
		t.Errorf("T2 category = %q, want core", ex.Tasks[0].Category)
	}
	if ex.Tasks[1].Category != "uncategorized" {
		t.Errorf("T5 category = %q, want uncategorized", ex.Tasks[1].Category)
	}
	if ex.Tasks[0].Description != "Cache layer." {
		t.Errorf("T2 description = %q", ex.Tasks[0].Description)
	}
	if ex.Tasks[1].Tags == nil || len(ex.Tasks[1].Tags) != 0 {
		t.Errorf("tasks without tags should export an empty array, got %v", ex.Tasks[1].Tags)
	}
	if ex.GeneratedAt != "2026-03-14T09:26:53Z" {
		t.Errorf("GeneratedAt = %q", ex.GeneratedAt)
	}
}

func TestWriteExport(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "export.json")

	ex := BuildExport(nil, ".tasks", time.Now())
	if err := WriteExport(out, ex); err != nil {
		t.Fatalf("WriteExport: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var decoded Export
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if decoded.GeneratedAt == "" {
		t.Error("generated_at missing from export")
	}
}
