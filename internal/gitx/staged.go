// Package gitx queries version-control state via the git CLI.
package gitx

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// StagedFiles returns the paths staged for the next commit under dir,
// restricted to added, copied, and modified files. Paths are relative
// to the repository root, in the order git reports them.
func StagedFiles(ctx context.Context, dir string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--name-only", "--diff-filter=ACM", "--", dir)
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("git diff --cached: %s", strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("git diff --cached: %w", err)
	}
	return splitLines(out), nil
}

// splitLines splits command output into non-empty lines.
func splitLines(out []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}
