package task

import (
	"fmt"
	"sort"
	"strings"
)

// Filter selects tasks by front-matter fields. Empty fields match
// everything; comparisons are case-insensitive.
type Filter struct {
	Status   string
	Assignee string
	Priority string
	Tag      string
}

// Match reports whether a task passes the filter.
func (f Filter) Match(m FrontMatter) bool {
	if f.Status != "" && !strings.EqualFold(m.Status, f.Status) {
		return false
	}
	if f.Assignee != "" && !strings.EqualFold(m.Assignee, f.Assignee) {
		return false
	}
	if f.Priority != "" && !strings.EqualFold(m.Priority, f.Priority) {
		return false
	}
	if f.Tag != "" {
		for _, tag := range m.Tags {
			if strings.EqualFold(tag, f.Tag) {
				return true
			}
		}
		return false
	}
	return true
}

// FilterFiles returns the tasks matching f, preserving scan order.
func FilterFiles(files []File, f Filter) []File {
	out := make([]File, 0, len(files))
	for _, file := range files {
		if f.Match(file.Meta) {
			out = append(out, file)
		}
	}
	return out
}

// priorityRank orders priorities critical > high > medium > low.
func priorityRank(p string) int {
	switch strings.ToLower(p) {
	case "critical":
		return 0
	case "high":
		return 1
	case "medium":
		return 2
	case "low":
		return 3
	default:
		return 4
	}
}

// SortFiles sorts tasks in place by the named front-matter field.
// Valid fields are id, title, status, priority, and assignee.
func SortFiles(files []File, field string, reverse bool) error {
	var less func(a, b FrontMatter) bool

	switch strings.ToLower(field) {
	case "", "id":
		less = func(a, b FrontMatter) bool { return CompareIDs(a.ID, b.ID) }
	case "title":
		less = func(a, b FrontMatter) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case "status":
		less = func(a, b FrontMatter) bool {
			return strings.ToLower(a.Status) < strings.ToLower(b.Status)
		}
	case "priority":
		less = func(a, b FrontMatter) bool {
			return priorityRank(a.Priority) < priorityRank(b.Priority)
		}
	case "assignee":
		less = func(a, b FrontMatter) bool {
			return strings.ToLower(a.Assignee) < strings.ToLower(b.Assignee)
		}
	default:
		return fmt.Errorf("invalid sort field %q, valid options: id, title, status, priority, assignee", field)
	}

	sort.SliceStable(files, func(i, j int) bool {
		if reverse {
			return less(files[j].Meta, files[i].Meta)
		}
		return less(files[i].Meta, files[j].Meta)
	})
	return nil
}
