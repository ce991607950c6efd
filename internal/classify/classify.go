// Package classify decides which repository entries take part in analysis
// and assigns human-readable categories to well-known names.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"readmegen/internal/rules"
)

// Classifier applies the ignore rule set to repository paths. The zero
// value uses the default rules; New overrides the size ceiling.
type Classifier struct {
	maxFileSize int64
}

// New returns a Classifier with the given size ceiling. A non-positive
// ceiling keeps the default from the rule set.
func New(maxFileSize int64) Classifier {
	if maxFileSize <= 0 {
		maxFileSize = rules.Ignore.MaxFileSize
	}
	return Classifier{maxFileSize: maxFileSize}
}

// ShouldIgnore reports whether a repo-relative path is excluded from
// analysis. Rules apply in order: hidden segments outside the allow-list,
// ignored directory names in any position, ignored extensions, file glob
// rules, and the size ceiling. Size is only consulted for files; pass 0
// for directories.
func (c Classifier) ShouldIgnore(relPath string, size int64) bool {
	limit := c.maxFileSize
	if limit <= 0 {
		limit = rules.Ignore.MaxFileSize
	}

	for _, part := range strings.Split(filepath.ToSlash(relPath), "/") {
		if part == "" || part == "." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			if _, ok := rules.Ignore.HiddenAllowList[part]; !ok {
				return true
			}
		}
		if _, ok := rules.Ignore.Directories[part]; ok {
			return true
		}
	}

	base := filepath.Base(relPath)
	for _, ext := range rules.Ignore.Extensions {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	for _, pattern := range rules.Ignore.Files {
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}

	return size > limit
}

// CategorizeDir describes a directory by its basename, falling back to a
// generic label for unknown names.
func CategorizeDir(name string) string {
	if desc, ok := rules.DirectoryCategories[strings.ToLower(name)]; ok {
		return desc
	}
	return "Project directory"
}

// CategorizeFile describes a file by its basename.
func CategorizeFile(name string) string {
	if desc, ok := rules.FileCategories[strings.ToLower(name)]; ok {
		return desc
	}
	return "Project file"
}
