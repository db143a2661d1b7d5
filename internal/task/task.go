// Package task parses, validates, and exports task files with YAML
// front matter.
package task

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// delimiter marks the start and end of a front-matter block.
const delimiter = "---"

// ErrNoFrontMatter reports a file that does not start with a
// front-matter delimiter. This is a skip condition, not a failure.
var ErrNoFrontMatter = errors.New("no front matter")

// FrontMatter is the metadata block at the top of a task file.
type FrontMatter struct {
	ID         string   `yaml:"id" json:"id"`
	Title      string   `yaml:"title" json:"title"`
	Status     string   `yaml:"status" json:"status"`
	Assignee   string   `yaml:"assignee" json:"assignee"`
	Parent     string   `yaml:"parent,omitempty" json:"parent,omitempty"`
	Priority   string   `yaml:"priority" json:"priority"`
	Tags       []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Whitepaper string   `yaml:"whitepaper,omitempty" json:"whitepaper,omitempty"`
}

// SplitFrontMatter separates a document into its front-matter block and
// body. It returns ErrNoFrontMatter when the document does not begin
// with the delimiter, and a parse error when the block is never closed
// by a second delimiter.
func SplitFrontMatter(content string) (front, body string, err error) {
	if !strings.HasPrefix(content, delimiter) {
		return "", "", ErrNoFrontMatter
	}
	parts := strings.SplitN(content, delimiter, 3)
	if len(parts) < 3 {
		return "", "", fmt.Errorf("front matter not terminated: missing closing %q", delimiter)
	}
	return parts[1], strings.TrimSpace(parts[2]), nil
}

// ParseFrontMatter decodes the front-matter block of a document.
func ParseFrontMatter(content string) (*FrontMatter, string, error) {
	front, body, err := SplitFrontMatter(content)
	if err != nil {
		return nil, "", err
	}
	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(front), &fm); err != nil {
		return nil, "", fmt.Errorf("parse front matter: %w", err)
	}
	return &fm, body, nil
}

// IsTaskFile reports whether path names a task document under dir.
// Task files are markdown files whose name contains a dash; notes like
// Claude.md or README.md are not tasks.
func IsTaskFile(path, dir string) bool {
	if filepath.Ext(path) != ".md" {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	name := filepath.Base(path)
	return strings.Contains(name, "-") && name != "Claude.md"
}

// idSortKey extracts the numeric value from a task ID. For IDs like
// "T001", "T2", "T10" it returns 1, 2, 10. IDs without a number get -1.
func idSortKey(id string) int {
	start := strings.IndexFunc(id, func(r rune) bool { return r >= '0' && r <= '9' })
	if start < 0 {
		return -1
	}
	num, err := strconv.Atoi(id[start:])
	if err != nil {
		return -1
	}
	return num
}

// CompareIDs reports whether id1 orders before id2. IDs with numeric
// parts compare numerically, so "T2" precedes "T10"; everything else
// falls back to lexicographic order.
func CompareIDs(id1, id2 string) bool {
	k1, k2 := idSortKey(id1), idSortKey(id2)
	if k1 >= 0 && k2 >= 0 && k1 != k2 {
		return k1 < k2
	}
	return id1 < id2
}
