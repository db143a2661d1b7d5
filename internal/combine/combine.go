// Package combine concatenates files and directory trees into a single
// delimited text artifact.
package combine

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

const (
	pathBannerWidth = 80
	fileBannerWidth = 60

	binaryMarker = "[Binary file - skipped]"

	// DefaultOutputExt is appended to the derived output name when no
	// explicit output path is given.
	DefaultOutputExt = ".txt"
)

// DefaultExcludeDirs are directory names skipped during traversal, in
// addition to any directory whose name starts with a dot.
func DefaultExcludeDirs() []string {
	return []string{"node_modules", "__pycache__", "target", "dist", "build"}
}

// Combiner writes an ordered list of paths into a single text artifact.
// Missing paths and unreadable files are reported and skipped; a run
// never fails at file granularity.
type Combiner struct {
	out      io.Writer
	diag     *log.Logger
	excludes map[string]bool
}

// New creates a Combiner writing sections to out and warnings to diag.
// excludeDirs replaces the default traversal denylist when non-nil.
func New(out io.Writer, diag *log.Logger, excludeDirs []string) *Combiner {
	if excludeDirs == nil {
		excludeDirs = DefaultExcludeDirs()
	}
	excludes := make(map[string]bool, len(excludeDirs))
	for _, name := range excludeDirs {
		excludes[name] = true
	}
	return &Combiner{out: out, diag: diag, excludes: excludes}
}

// Combine processes paths in order and returns the number of paths that
// produced a section. Only sink write failures are returned as errors;
// per-path problems are logged and skipped.
func (c *Combiner) Combine(paths []string) (int, error) {
	processed := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			c.diag.Warn("path not found, skipping", "path", path)
			continue
		}

		if info.IsDir() {
			if err := c.writeDirectory(path); err != nil {
				return processed, err
			}
		} else {
			if err := c.writeFile(path); err != nil {
				return processed, err
			}
		}
		processed++
	}
	return processed, nil
}

// writeFile emits a top-level section for a single regular file.
func (c *Combiner) writeFile(path string) error {
	if err := c.writeBanner('=', pathBannerWidth, "PATH: "+path); err != nil {
		return err
	}
	return c.writeContent(path)
}

// writeDirectory walks a directory tree and emits one file section per
// included descendant. Traversal order is the lexical order produced by
// filepath.WalkDir, so output is deterministic.
func (c *Combiner) writeDirectory(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.diag.Warn("cannot read directory entry, skipping", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") || c.excludes[name] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if err := c.writeBanner('-', fileBannerWidth, "FILE: "+filepath.ToSlash(rel)); err != nil {
			return err
		}
		return c.writeContent(path)
	})
}

// writeContent writes the file body followed by two newlines. Binary and
// unreadable files produce an inline marker instead of content.
func (c *Combiner) writeContent(path string) error {
	body := readFileText(path)
	_, err := fmt.Fprintf(c.out, "%s\n\n", body)
	return err
}

// writeBanner writes a fixed-width delimiter line, the label line, and a
// blank separator line.
func (c *Combiner) writeBanner(ch byte, width int, label string) error {
	_, err := fmt.Fprintf(c.out, "%s\n%s\n\n", strings.Repeat(string(ch), width), label)
	return err
}

// readFileText reads a file as UTF-8 text, substituting inline markers
// for binary or unreadable files.
func readFileText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("[Error reading file: %v]", err)
	}
	if !utf8.Valid(data) {
		return binaryMarker
	}
	return strings.TrimRight(string(data), "\n")
}

// DefaultOutputName derives the output filename from the first input
// path: the directory name for a directory, the filename stem otherwise.
func DefaultOutputName(first string) string {
	base := filepath.Base(filepath.Clean(first))
	if info, err := os.Stat(first); err == nil && info.IsDir() {
		return base + DefaultOutputExt
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return stem + DefaultOutputExt
}
