package task

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// File pairs a parsed task with its source path and markdown body.
type File struct {
	Path string
	Meta FrontMatter
	Body string
}

// ScanDir walks the tasks directory and parses every task file it
// finds. Files without front matter are ignored; parse failures are
// reported on diag and the file skipped, so one broken task never
// hides the rest.
func ScanDir(dir string, diag *log.Logger) ([]File, error) {
	var files []File

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return err
			}
			diag.Warn("cannot read directory entry, skipping", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || !IsTaskFile(path, dir) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			diag.Warn("cannot read task file, skipping", "path", path, "error", err)
			return nil
		}

		fm, body, err := ParseFrontMatter(string(data))
		if err != nil {
			if err == ErrNoFrontMatter {
				return nil
			}
			diag.Error("invalid task file, skipping", "path", path, "error", err)
			return nil
		}

		files = append(files, File{Path: path, Meta: *fm, Body: body})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
