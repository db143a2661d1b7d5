// Package gitx provides tests for staged-file queries.
package gitx

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

// chdir switches the working directory for the test and restores it
// on cleanup. (testing.T.Chdir needs Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Chdir back: %v", err)
		}
	})
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty output", "", nil},
		{"single path", ".tasks/T-001.md\n", []string{".tasks/T-001.md"}},
		{"multiple paths", ".tasks/a-1.md\n.tasks/core/b-2.md\n", []string{".tasks/a-1.md", ".tasks/core/b-2.md"}},
		{"blank lines dropped", "\n.tasks/a-1.md\n\n", []string{".tasks/a-1.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines([]byte(tt.in))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// gitHelper runs a git command in dir, failing the test on error.
func gitHelper(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

func TestStagedFiles(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	repo := t.TempDir()
	gitHelper(t, repo, "init", "-q")

	tasks := filepath.Join(repo, ".tasks")
	if err := os.MkdirAll(tasks, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tasks, "T-001-demo.md"), []byte("---\nid: T001\n---\nbody\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(repo, "unrelated.txt"), []byte("x\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	gitHelper(t, repo, "add", ".")

	chdir(t, repo)
	got, err := StagedFiles(context.Background(), ".tasks")
	if err != nil {
		t.Fatalf("StagedFiles: %v", err)
	}

	want := []string{".tasks/T-001-demo.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StagedFiles = %v, want %v", got, want)
	}
}

func TestStagedFilesEmpty(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	repo := t.TempDir()
	gitHelper(t, repo, "init", "-q")

	chdir(t, repo)
	got, err := StagedFiles(context.Background(), ".tasks")
	if err != nil {
		t.Fatalf("StagedFiles: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no staged files, got %v", got)
	}
}
